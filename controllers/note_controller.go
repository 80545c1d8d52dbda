package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/models"
	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

const notePreviewLength = 140

// NoteController manages the social feed: notes, likes and comments.
type NoteController struct {
	st store.Store
}

// NewNoteController creates a new NoteController instance.
func NewNoteController(st store.Store) *NoteController {
	return &NoteController{st: st}
}

// ListNotes returns the whole feed, newest first.
func (n *NoteController) ListNotes(ctx *gin.Context) {
	// The feed is the hottest read path, so it is served from cache when warm.
	if b, ok := utils.CacheGetBytes("cache:notes:list"); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	notes, err := n.st.ListNotes(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to list notes")
		return
	}

	payload := gin.H{"notes": notes}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON("cache:notes:list", wrapper, time.Minute)
	utils.Success(ctx, payload)
}

// GetNote returns a single note.
func (n *NoteController) GetNote(ctx *gin.Context) {
	note, err := n.st.GetNote(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50021, "failed to load note")
		return
	}
	utils.Success(ctx, gin.H{"note": note})
}

// CreateNote allows authenticated users to publish a note to the feed.
func (n *NoteController) CreateNote(ctx *gin.Context) {
	var req struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Hashtags []string `json:"hashtags"`
		Helpful  bool     `json:"helpful"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "title cannot be empty")
		return
	}
	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40022, "content cannot be empty")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	note := models.Note{
		Title:    title,
		Content:  content,
		Preview:  utils.MakePreview(content, notePreviewLength),
		Author:   getUserName(ctx),
		AuthorID: userID,
		Hashtags: models.HashtagList(utils.NormalizeHashtags(req.Hashtags)),
		Helpful:  req.Helpful,
	}

	if err := n.st.CreateNote(ctx.Request.Context(), &note); err != nil {
		respondStoreError(ctx, err, 50022, "failed to create note")
		return
	}

	utils.InvalidateByPrefix("cache:notes:")
	utils.Created(ctx, gin.H{"note": note})
}

// LikeNote records a like and returns the like together with the refreshed
// note. Liking a note twice returns the existing like unchanged.
func (n *NoteController) LikeNote(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40111, "unauthorized")
		return
	}

	like, note, err := n.st.LikeNote(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50023, "failed to like note")
		return
	}

	utils.InvalidateByPrefix("cache:notes:")
	utils.Success(ctx, gin.H{"like": like, "note": note})
}

// UnlikeNote removes the caller's like and returns the refreshed note.
// There is nothing to remove when the caller never liked the note, so that
// case is 404, same as cancelling a signup that does not exist.
func (n *NoteController) UnlikeNote(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "unauthorized")
		return
	}

	note, removed, err := n.st.UnlikeNote(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondStoreError(ctx, err, 50024, "failed to unlike note")
		return
	}
	if !removed {
		utils.Error(ctx, http.StatusNotFound, 40402, "no like to remove")
		return
	}

	utils.InvalidateByPrefix("cache:notes:")
	utils.Success(ctx, gin.H{"note": note})
}

// ListComments returns a note's comment thread, oldest first.
func (n *NoteController) ListComments(ctx *gin.Context) {
	noteID := ctx.Param("id")
	comments, err := n.st.ListComments(ctx.Request.Context(), noteID)
	if err != nil {
		respondStoreError(ctx, err, 50025, "failed to list comments")
		return
	}
	utils.Success(ctx, gin.H{"comments": comments})
}

// CreateComment appends a comment to a note's thread.
func (n *NoteController) CreateComment(ctx *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40023, "invalid request payload")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40024, "content cannot be empty")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40113, "unauthorized")
		return
	}

	comment := models.Comment{
		NoteID:  ctx.Param("id"),
		UserID:  userID,
		Author:  getUserName(ctx),
		Content: content,
	}

	if err := n.st.CreateComment(ctx.Request.Context(), &comment); err != nil {
		respondStoreError(ctx, err, 50026, "failed to create comment")
		return
	}

	utils.InvalidateByPrefix("cache:notes:")
	utils.Created(ctx, gin.H{"comment": comment})
}

// ListUserLikes returns all likes a user has placed, for profile views.
func (n *NoteController) ListUserLikes(ctx *gin.Context) {
	likes, err := n.st.ListUserLikes(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50027, "failed to list likes")
		return
	}
	utils.Success(ctx, gin.H{"likes": likes})
}
