package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

// StatsController serves per-user learning stats and platform-wide totals.
type StatsController struct {
	st store.Store
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(st store.Store) *StatsController {
	return &StatsController{st: st}
}

// GetUserStats returns a user's learning stats. Users who never recorded
// anything read back as all zeros rather than 404.
func (s *StatsController) GetUserStats(ctx *gin.Context) {
	stats, err := s.st.GetUserStats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50040, "failed to load stats")
		return
	}
	utils.Success(ctx, gin.H{"stats": stats})
}

// UpdateMyStats applies a partial update to the caller's stats. Absent
// fields keep their current values.
func (s *StatsController) UpdateMyStats(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40117, "unauthorized")
		return
	}

	var patch store.StatsPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	stats, err := s.st.UpdateUserStats(ctx.Request.Context(), userID, patch)
	if err != nil {
		respondStoreError(ctx, err, 50041, "failed to update stats")
		return
	}
	utils.Success(ctx, gin.H{"stats": stats})
}

// GetStats returns aggregate platform statistics.
func (s *StatsController) GetStats(ctx *gin.Context) {
	counts, err := s.st.Counts(ctx.Request.Context())
	if err != nil {
		// Fall back to zeros instead of failing the whole endpoint.
		counts = store.Counts{}
	}

	dailyActive, err := s.st.DailyActiveCount(ctx.Request.Context(), time.Now().In(time.Local))
	if err != nil {
		dailyActive = 0
	}

	utils.Success(ctx, gin.H{
		"user_count":         counts.Users,
		"note_count":         counts.Notes,
		"comment_count":      counts.Comments,
		"daily_active_count": dailyActive,
	})
}
