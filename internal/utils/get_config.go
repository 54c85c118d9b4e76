package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server
	AppPort      string `yaml:"APP_PORT"`
	AppURL       string `yaml:"APP_URL"`
	AppTimezone  string `yaml:"APP_TIMEZONE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS configuration
	AWSRegion          string `yaml:"AWS_REGION"`
	AWSS3Bucket        string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region        string `yaml:"AWS_S3_REGION"`
	AWSAccessKey       string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey       string `yaml:"AWS_SECRET_KEY"`
	RekognitionEnabled bool   `yaml:"REKOGNITION_ENABLED"`

	// Completion service
	CompletionProvider       string `yaml:"COMPLETION_PROVIDER"`
	CompletionTimeoutSeconds int    `yaml:"COMPLETION_TIMEOUT_SECONDS"`
	OpenAIAPIKey             string `yaml:"OPENAI_API_KEY"`
	OpenAIBaseURL            string `yaml:"OPENAI_BASE_URL"`
	OpenAITextModel          string `yaml:"OPENAI_TEXT_MODEL"`
	OpenAIVisionModel        string `yaml:"OPENAI_VISION_MODEL"`
	GeminiAPIKey             string `yaml:"GEMINI_API_KEY"`
	GeminiModel              string `yaml:"GEMINI_MODEL"`
}

var config Config

var defaults = map[string]string{
	"APP_PORT":                   "8080",
	"APP_TIMEZONE":               "UTC",
	"RATE_LIMIT_MAX":             "10",
	"COMPLETION_PROVIDER":        "openai",
	"COMPLETION_TIMEOUT_SECONDS": "60",
	"OPENAI_BASE_URL":            "https://api.openai.com/v1",
	"OPENAI_TEXT_MODEL":          "gpt-3.5-turbo",
	"OPENAI_VISION_MODEL":        "gpt-4o",
	"GEMINI_MODEL":               "gemini-2.0-flash",
}

// LoadConfig reads .env (if present) and config.yaml. Environment variables
// take precedence over yaml values for every key.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Infof("config.yaml not read, using environment only: %v", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Errorf("Error parsing YAML file: %v", err)
		return
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func intString(i int) string {
	if i == 0 {
		return ""
	}
	return strconv.Itoa(i)
}

func fromYAML(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "APP_TIMEZONE":
		return config.AppTimezone
	case "RATE_LIMIT_MAX":
		return intString(config.RateLimitMax)
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_REGION":
		return config.AWSRegion
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "REKOGNITION_ENABLED":
		if !config.RekognitionEnabled {
			return ""
		}
		return boolString(config.RekognitionEnabled)
	case "COMPLETION_PROVIDER":
		return config.CompletionProvider
	case "COMPLETION_TIMEOUT_SECONDS":
		return intString(config.CompletionTimeoutSeconds)
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_BASE_URL":
		return config.OpenAIBaseURL
	case "OPENAI_TEXT_MODEL":
		return config.OpenAITextModel
	case "OPENAI_VISION_MODEL":
		return config.OpenAIVisionModel
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	default:
		return ""
	}
}

// GetConfig resolves key from the environment, then config.yaml, then the
// built-in defaults.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fromYAML(key); v != "" {
		return v
	}
	return defaults[key]
}

func GetConfigInt(key string) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		fallback, _ := strconv.Atoi(defaults[key])
		return fallback
	}
	return v
}

func GetConfigBool(key string) bool {
	v, err := strconv.ParseBool(GetConfig(key))
	return err == nil && v
}
