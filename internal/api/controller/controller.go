package controller

import (
	"errors"
	"net/http"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

// handleServiceError 业务错误到 HTTP 状态码的统一映射
// ErrNotFound 同时覆盖"不存在"和"不是你的"，对外长一个样
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrDuplicate):
		response.Error(c, http.StatusConflict, "already exists")
	case errors.Is(err, service.ErrInvalidInput):
		response.Error(c, http.StatusUnprocessableEntity, "invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "internal error")
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
