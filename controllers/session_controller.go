package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

// SessionController serves the session schedule and the signup ledger.
type SessionController struct {
	st store.Store
}

// NewSessionController creates a new SessionController instance.
func NewSessionController(st store.Store) *SessionController {
	return &SessionController{st: st}
}

// ListSessions returns all scheduled tutoring and group-study sessions.
func (s *SessionController) ListSessions(ctx *gin.Context) {
	sessions, err := s.st.ListSessions(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to list sessions")
		return
	}
	utils.Success(ctx, gin.H{"sessions": sessions})
}

// GetSession returns a single session.
func (s *SessionController) GetSession(ctx *gin.Context) {
	session, err := s.st.GetSession(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50031, "failed to load session")
		return
	}
	utils.Success(ctx, gin.H{"session": session})
}

// SignUp registers the caller for a session. Signing up twice returns the
// existing signup unchanged.
func (s *SessionController) SignUp(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40114, "unauthorized")
		return
	}

	signup, err := s.st.SignUp(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50032, "failed to sign up")
		return
	}

	utils.Created(ctx, gin.H{"signup": signup})
}

// CancelSignup removes the caller's signup for a session. There is nothing
// to return on success; cancelling a signup that does not exist is 404.
func (s *SessionController) CancelSignup(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40115, "unauthorized")
		return
	}

	removed, err := s.st.CancelSignup(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50033, "failed to cancel signup")
		return
	}
	if !removed {
		utils.Error(ctx, http.StatusNotFound, 40401, "no signup to cancel")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListMySignups returns the caller's signups across all sessions.
func (s *SessionController) ListMySignups(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40116, "unauthorized")
		return
	}

	signups, err := s.st.ListUserSignups(ctx.Request.Context(), userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50034, "failed to list signups")
		return
	}
	utils.Success(ctx, gin.H{"signups": signups})
}
