package handlers_test

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"BulkBlitz-Backend/internal/api/handlers"
	"BulkBlitz-Backend/internal/api/routes"
	"BulkBlitz-Backend/internal/middleware"
	"BulkBlitz-Backend/internal/utils"
	"BulkBlitz-Backend/internal/utils/dateutil"
	"BulkBlitz-Backend/pkg/analysis"
	"BulkBlitz-Backend/pkg/completion"
	"BulkBlitz-Backend/pkg/dashboard"
	"BulkBlitz-Backend/pkg/jwt"
	"BulkBlitz-Backend/pkg/meal"
	"BulkBlitz-Backend/pkg/profile"
	"BulkBlitz-Backend/pkg/user"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type scriptedClient struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedClient) Complete(context.Context, completion.Request) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	reply := s.replies[s.calls%len(s.replies)]
	s.calls++
	return reply, nil
}

type testServer struct {
	app        *fiber.App
	client     *scriptedClient
	jwtService jwt.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Profile{}, &entities.Meal{}))

	utils.InitValidator()
	client := &scriptedClient{}
	jwtService := jwt.NewJWTServiceWithSecret("handler-secret")

	mealRepository := meal.NewMealRepository(db)
	profileService := profile.NewProfileService(profile.NewProfileRepository(db))

	app := fiber.New()
	cfg := routes.Config{
		App:              app,
		UserHandler:      handlers.NewUserHandler(user.NewUserService(user.NewUserRepository(db), jwtService, nil, "http://localhost"), utils.Validate),
		ProfileHandler:   handlers.NewProfileHandler(profileService, utils.Validate),
		MealHandler:      handlers.NewMealHandler(meal.NewMealService(mealRepository, nil, time.UTC), utils.Validate),
		AnalysisHandler:  handlers.NewAnalysisHandler(analysis.NewAnalysisService(client, nil), utils.Validate),
		DashboardHandler: handlers.NewDashboardHandler(dashboard.NewDashboardService(mealRepository, profileService, time.UTC)),
		Middleware:       middleware.NewMiddleware(),
		JWTService:       jwtService,
	}
	cfg.Setup()

	return &testServer{app: app, client: client, jwtService: jwtService}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, _ := s.do(t, http.MethodPost, "/api/v1/users/register", "", domain.RegisterRequest{
		Name:     "Sam",
		Email:    email,
		Password: "hunter22hunter",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := s.do(t, http.MethodPost, "/api/v1/users/login", "", domain.LoginRequest{
		Email:    email,
		Password: "hunter22hunter",
	})
	require.Equal(t, fiber.StatusOK, status)
	return body["data"].(map[string]interface{})["token"].(string)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["message"])
}

func TestUserFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")

	status, body := s.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "sam@example.com", body["data"].(map[string]interface{})["email"])

	status, _ = s.do(t, http.MethodPost, "/api/v1/users/register", "", domain.RegisterRequest{
		Name: "Sam", Email: "sam@example.com", Password: "hunter22hunter",
	})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/users/login", "", domain.LoginRequest{
		Email: "sam@example.com", Password: "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/users/verify?token=bad", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestAnalyzeMeal(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")
	s.client.replies = []string{`{"name":"Oats","description":"Rolled oats","calories":380,"protein":13,"carbs":60,"fats":7}`}

	status, body := s.do(t, http.MethodPost, "/api/analyze-meal", token, fiber.Map{"description": "80g oats"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{
		"name":     "Oats",
		"calories": 380.0,
		"protein":  13.0,
		"carbs":    60.0,
		"fats":     7.0,
	}, body)
}

func TestAnalyzeMeal_Errors(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")

	status, body := s.do(t, http.MethodPost, "/api/analyze-meal", "", fiber.Map{"description": "80g oats"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, map[string]interface{}{"error": domain.MessageUnauthorized}, body)

	status, body = s.do(t, http.MethodPost, "/api/analyze-meal", token, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "error")

	s.client.replies = []string{`{"name":"Oats","calories":"380"}`}
	status, body = s.do(t, http.MethodPost, "/api/analyze-meal", token, fiber.Map{"description": "80g oats"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, map[string]interface{}{"error": domain.MessageFailedAnalyzeMeal}, body)

	s.client.err = domain.ErrMissingCredentials
	status, body = s.do(t, http.MethodPost, "/api/analyze-meal", token, fiber.Map{"description": "80g oats"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.MessageFailedAnalyzeMeal, body["error"])
}

func TestAnalyzeMealImage(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")
	s.client.replies = []string{
		"A plate of grilled chicken with rice",
		`{"name":"Chicken & Rice","description":"Grilled chicken with rice","calories":650,"protein":45,"carbs":70,"fats":15}`,
	}

	status, body := s.do(t, http.MethodPost, "/api/analyze-meal-image", token, fiber.Map{"image": "data:image/jpeg;base64,/9j/4AAQSkZJRg=="})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Chicken & Rice", body["name"])
	assert.Equal(t, "Grilled chicken with rice", body["description"])

	s.client.calls = 0
	s.client.replies = []string{
		"A bowl of white rice",
		`{"name":"Rice","calories":300,"protein":6,"carbs":65,"fats":1}`,
	}
	status, body = s.do(t, http.MethodPost, "/api/analyze-meal-image", token, fiber.Map{"image": "data:image/jpeg;base64,/9j/4AAQSkZJRg=="})
	assert.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "description")
	assert.Equal(t, "", body["description"])
	assert.Len(t, body, 6)

	status, body = s.do(t, http.MethodPost, "/api/analyze-meal-image", token, fiber.Map{"image": "data:image/jpeg;base64,"})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.MessageFailedAnalyzeMealImage, body["error"])
}

func TestMealsAndDashboard(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")
	intruder := s.login(t, "eve@example.com")
	today := time.Now().UTC().Format(dateutil.Layout)

	status, _ := s.do(t, http.MethodPut, "/api/v1/profile", token, fiber.Map{
		"goal":            domain.GoalLeanBulk,
		"target_calories": 3000,
		"target_protein":  180,
		"target_carbs":    300,
		"target_fats":     90,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body := s.do(t, http.MethodPost, "/api/v1/meals", token, fiber.Map{
		"name":     "Chicken & Rice",
		"date":     today,
		"calories": 650,
		"protein":  45,
		"carbs":    70,
		"fats":     15,
	})
	require.Equal(t, fiber.StatusCreated, status)
	mealID := body["data"].(map[string]interface{})["id"].(string)

	status, _ = s.do(t, http.MethodPost, "/api/v1/meals", token, fiber.Map{
		"name": "Future", "date": "2999-01-01", "calories": 100,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/meals", token, fiber.Map{
		"name": "Negative", "date": today, "fats": -1,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = s.do(t, http.MethodGet, "/api/v1/meals", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = s.do(t, http.MethodGet, "/api/v1/dashboard/weekly-overview", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	overview := body["data"].(map[string]interface{})
	assert.Len(t, overview["days"], 7)
	assert.Equal(t, 650.0, overview["today"].(map[string]interface{})["calories"])

	status, body = s.do(t, http.MethodGet, "/api/v1/dashboard/summary", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Lean Bulk", body["data"].(map[string]interface{})["goal"])

	status, _ = s.do(t, http.MethodPatch, "/api/v1/meals/"+mealID+"/archive", intruder, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = s.do(t, http.MethodGet, "/api/v1/meals/"+mealID, intruder, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = s.do(t, http.MethodPatch, "/api/v1/meals/"+mealID+"/archive", token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = s.do(t, http.MethodGet, "/api/v1/meals", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 0)

	status, body = s.do(t, http.MethodGet, "/api/v1/meals?status=all", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)

	status, body = s.do(t, http.MethodGet, "/api/v1/dashboard/weekly-progress", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	totals := body["data"].(map[string]interface{})["totals"].(map[string]interface{})
	assert.Equal(t, 0.0, totals["calories"])
}

func TestProfileValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "sam@example.com")

	status, _ := s.do(t, http.MethodPut, "/api/v1/profile", token, fiber.Map{"goal": "cutting"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := s.do(t, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["status"])
}
