package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserStatsZeroDefault(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/unknown-user/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeData(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 0, stats["sessionsAttended"])
	assert.EqualValues(t, 0, stats["quizzesCompleted"])
	assert.EqualValues(t, 0, stats["learningStreak"])
}

func TestUpdateMyStatsPartial(t *testing.T) {
	r, _ := newTestEnv(t)
	userID, token := registerUser(t, r, "Jordan", "jordan@school.edu")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/stats", token, gin.H{
		"sessionsAttended": 3,
		"learningStreak":   9,
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	stats := decodeData(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 3, stats["sessionsAttended"])
	assert.EqualValues(t, 0, stats["quizzesCompleted"])
	assert.EqualValues(t, 9, stats["learningStreak"])

	// A second patch only moves the field it names.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/users/me/stats", token, gin.H{
		"quizzesCompleted": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)
	stats = decodeData(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 3, stats["sessionsAttended"])
	assert.EqualValues(t, 4, stats["quizzesCompleted"])
	assert.EqualValues(t, 9, stats["learningStreak"])

	// Readable publicly through the user stats endpoint.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/"+userID+"/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats = decodeData(t, w)["stats"].(map[string]interface{})
	assert.EqualValues(t, 3, stats["sessionsAttended"])
}

func TestUpdateMyStatsRequiresAuth(t *testing.T) {
	r, _ := newTestEnv(t)
	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/stats", "", gin.H{"learningStreak": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlatformStats(t *testing.T) {
	r, _ := newTestEnv(t)
	_, token := registerUser(t, r, "Jordan", "jordan@school.edu")
	createNote(t, r, token, "Pitch deck tips", "Keep slides short.")

	w := doJSON(t, r, http.MethodGet, "/api/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 1, data["user_count"])
	assert.EqualValues(t, 1, data["note_count"])
	assert.EqualValues(t, 0, data["comment_count"])
	assert.Contains(t, data, "daily_active_count")
}

func TestCatalogEndpoints(t *testing.T) {
	r, _ := newTestEnv(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/catalog/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	courses := decodeData(t, w)["courses"].([]interface{})
	assert.NotEmpty(t, courses)

	w = doJSON(t, r, http.MethodGet, "/api/v1/catalog/quizzes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	quizzes := decodeData(t, w)["quizzes"].([]interface{})
	assert.NotEmpty(t, quizzes)

	w = doJSON(t, r, http.MethodGet, "/api/v1/catalog/materials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	materials := decodeData(t, w)["materials"].([]interface{})
	assert.NotEmpty(t, materials)
}

func TestHealth(t *testing.T) {
	r, _ := newTestEnv(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
