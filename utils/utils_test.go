package utils

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("u-123", "Jordan", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UserID)
	assert.Equal(t, "Jordan", claims.Name)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("u-123", "Jordan", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenBlacklist(t *testing.T) {
	assert.False(t, IsTokenBlacklisted("tok-1"))
	BlacklistToken("tok-1", time.Now().Add(time.Minute))
	assert.True(t, IsTokenBlacklisted("tok-1"))

	// Expired entries stop matching.
	BlacklistToken("tok-2", time.Now().Add(-time.Minute))
	assert.False(t, IsTokenBlacklisted("tok-2"))
}

func TestStateStore(t *testing.T) {
	SaveState("state-1", time.Minute)
	assert.True(t, ConsumeState("state-1"))
	// One-shot: a state cannot be consumed twice.
	assert.False(t, ConsumeState("state-1"))

	assert.False(t, ConsumeState("never-saved"))
}

func TestNormalizeHashtags(t *testing.T) {
	got := NormalizeHashtags([]string{" Marketing ", "#tips", "TIPS", "", "#"})
	assert.Equal(t, []string{"#marketing", "#tips"}, got)
}

func TestMakePreview(t *testing.T) {
	assert.Equal(t, "short", MakePreview("short", 10))

	long := MakePreview("abcdefghij", 5)
	assert.Equal(t, "abcde...", long)

	// HTML is stripped before truncation.
	assert.Equal(t, "hello", MakePreview(`<script>x()</script>hello`, 10))
}

func TestSanitizeStripsScripts(t *testing.T) {
	out := Sanitize(`<b>bold</b><script>alert(1)</script>`)
	assert.Contains(t, out, "<b>bold</b>")
	assert.NotContains(t, out, "script")
}
