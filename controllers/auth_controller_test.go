package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestEnv(t)

	userID, token := registerUser(t, r, "Jordan", "jordan@school.edu")
	assert.NotEmpty(t, userID)
	assert.NotEmpty(t, token)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jordan@school.edu",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	data := decodeData(t, w)
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	// Password material never leaves the server.
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestEnv(t)

	registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Jordan Two",
		"email":    "Jordan@School.edu",
		"password": "another-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code, "body: %s", w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestEnv(t)

	cases := []gin.H{
		{"email": "a@b.c", "password": "longenough"},       // missing name
		{"name": "A", "password": "longenough"},            // missing email
		{"name": "A", "email": "not-an-email", "password": "longenough"},
		{"name": "A", "email": "a@b.c", "password": "shrt"}, // too short
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestEnv(t)
	registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "jordan@school.edu",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@school.edu",
		"password": "whatever-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, token := registerUser(t, r, "Jordan", "jordan@school.edu")
	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	data := decodeData(t, w)
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "jordan@school.edu", user["email"])
}

func TestLogoutBlacklistsToken(t *testing.T) {
	r, _ := newTestEnv(t)
	_, token := registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
