package config

import (
	"BulkBlitz-Backend/internal/api/handlers"
	"BulkBlitz-Backend/internal/api/routes"
	"BulkBlitz-Backend/internal/middleware"
	"BulkBlitz-Backend/internal/utils"
	"BulkBlitz-Backend/internal/utils/mailing"
	"BulkBlitz-Backend/internal/utils/storage"
	"BulkBlitz-Backend/pkg/analysis"
	"BulkBlitz-Backend/pkg/completion"
	"BulkBlitz-Backend/pkg/dashboard"
	"BulkBlitz-Backend/pkg/jwt"
	"BulkBlitz-Backend/pkg/meal"
	"BulkBlitz-Backend/pkg/profile"
	"BulkBlitz-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	loc, err := time.LoadLocation(utils.GetConfig("APP_TIMEZONE"))
	if err != nil {
		log.Errorf("invalid APP_TIMEZONE, falling back to UTC: %v", err)
		loc = time.UTC
	}

	// setting up logging and limiter
	err = os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   loc.String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX"),
		Expiration: 1 * time.Second,
	}))

	// utils
	ctx := context.Background()
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		log.Errorf("photo storage disabled: %v", err)
		s3 = nil
	}

	var mailer mailing.Mailer
	if mailConfig := mailing.LoadMailConfig(); mailConfig.Enabled() {
		mailer = mailing.NewMailer(mailConfig)
	} else {
		log.Info("SMTP not configured, verification mails are skipped")
	}

	completionClient, err := completion.NewClient(completion.LoadConfig())
	if err != nil {
		return nil, err
	}

	var labels analysis.LabelDetector
	if utils.GetConfigBool("REKOGNITION_ENABLED") {
		labels, err = analysis.NewRekognitionDetector(ctx)
		if err != nil {
			log.Errorf("rekognition label hints disabled: %v", err)
			labels = nil
		}
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailer, utils.GetConfig("APP_URL"))
	profileService := profile.NewProfileService(profileRepository)
	mealService := meal.NewMealService(mealRepository, s3, loc)
	analysisService := analysis.NewAnalysisService(completionClient, labels)
	dashboardService := dashboard.NewDashboardService(mealRepository, profileService, loc)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		ProfileHandler:   profileHandler,
		MealHandler:      mealHandler,
		AnalysisHandler:  analysisHandler,
		DashboardHandler: dashboardHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
