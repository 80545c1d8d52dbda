package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSessions(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sessions := decodeData(t, w)["sessions"].([]interface{})
	require.Len(t, sessions, 1)
	assert.Equal(t, "Marketing Strategy Workshop", sessions[0].(map[string]interface{})["title"])
}

func TestSignUpFlow(t *testing.T) {
	r, _ := newTestEnv(t)
	userID, token := registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/s1/signup", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	signup := decodeData(t, w)["signup"].(map[string]interface{})
	assert.Equal(t, userID, signup["userId"])
	assert.Equal(t, "s1", signup["sessionId"])
	firstID := signup["id"]

	// Signing up twice returns the same ledger entry.
	w = doJSON(t, r, http.MethodPost, "/api/v1/sessions/s1/signup", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	signup = decodeData(t, w)["signup"].(map[string]interface{})
	assert.Equal(t, firstID, signup["id"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me/signups", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	signups := decodeData(t, w)["signups"].([]interface{})
	assert.Len(t, signups, 1)
}

func TestSignUpMissingSession404(t *testing.T) {
	r, _ := newTestEnv(t)
	_, token := registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/ghost/signup", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelSignupFlow(t *testing.T) {
	r, _ := newTestEnv(t)
	_, token := registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/s1/signup", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/s1/signup", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Nothing left to cancel.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/s1/signup", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me/signups", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	signups := decodeData(t, w)["signups"].([]interface{})
	assert.Empty(t, signups)
}

func TestSignUpRequiresAuth(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/sessions/s1/signup", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/sessions/s1/signup", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
