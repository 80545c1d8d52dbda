package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/middleware"
	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

func getUserID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func getUserName(ctx *gin.Context) string {
	value, exists := ctx.Get(middleware.ContextUserNameKey)
	if !exists {
		return ""
	}
	name, _ := value.(string)
	return name
}

// respondStoreError translates store sentinel errors into the HTTP taxonomy.
// fallbackCode is used for unexpected (internal) failures.
func respondStoreError(ctx *gin.Context, err error, fallbackCode int, fallbackMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.Error(ctx, http.StatusNotFound, 40400, err.Error())
	case errors.Is(err, store.ErrConflict):
		utils.Error(ctx, http.StatusConflict, 40900, err.Error())
	case errors.Is(err, store.ErrInvalidInput):
		utils.Error(ctx, http.StatusBadRequest, 40000, err.Error())
	default:
		utils.Error(ctx, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
