package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	resp, result := doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":     "padre@example.com",
		"password":  "password123",
		"firstName": "Carlos",
		"lastName":  "Pérez",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "padre@example.com", user["email"])
	// Accounts default to the parent role.
	assert.Equal(t, "parent", user["role"])
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	resp, _ := doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email": "solo-email@example.com",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	registerUser(t, "login@example.com", "parent")

	resp, result := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "password123",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["token"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	registerUser(t, "wrongpass@example.com", "parent")

	resp, _ := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	token, _ := registerUser(t, "perfil@example.com", "parent")

	resp, result := doJSON(t, "GET", "/api/user/profile", token, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "perfil@example.com", result["email"])
}

func TestGetProfileRequiresToken(t *testing.T) {
	resp, _ := doJSON(t, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
