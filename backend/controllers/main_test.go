package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"cerebritos/backend/config"
	"cerebritos/backend/generation"
	"cerebritos/backend/models"
	"cerebritos/backend/routes"
	"cerebritos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config

	// modelStub stands in for the language model. Tests flip its fields
	// to exercise the generated and fallback paths.
	modelStub = &scriptedProvider{err: errors.New("model unavailable")}
)

type scriptedProvider struct {
	response json.RawMessage
	err      error
}

func (p *scriptedProvider) Complete(ctx context.Context, req generation.Request) (json.RawMessage, error) {
	return p.response, p.err
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	teardown()
	os.Exit(code)
}

func setup() {
	cfg = &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	var err error
	db, err = gorm.Open(sqlite.Open("file:controllers?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err := utils.Migrate(db); err != nil {
		panic(err)
	}

	genService := generation.NewService(modelStub, db, log.New(io.Discard, "", 0))

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, genService)
}

func teardown() {
	db.Migrator().DropTable(
		&models.User{},
		&models.ParentChildLink{},
		&models.QuizAttempt{},
		&models.Badge{},
		&models.Topic{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.AdaptiveProfile{},
	)
}

func doJSON(t *testing.T, method, target, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

// registerUser creates an account through the API and returns its token
// and database ID.
func registerUser(t *testing.T, email, role string) (string, uint) {
	t.Helper()

	resp, result := doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":     email,
		"password":  "password123",
		"firstName": "Test",
		"lastName":  "User",
		"role":      role,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	return result["token"].(string), uint(user["id"].(float64))
}
