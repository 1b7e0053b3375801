package controller

import (
	"log/slog"
	"net/http"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type SheetController struct {
	service *service.SheetService
}

func NewSheetController(s *service.SheetService) *SheetController {
	return &SheetController{service: s}
}

type SheetConnectRequest struct {
	// URL 可以是完整分享链接也可以直接是表格 ID
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"`
}

// List 已连接的表
// @Tags Sheets
// @Security BearerAuth
// @Router /sheets [get]
func (ctrl *SheetController) List(c *gin.Context) {
	sheets, err := ctrl.service.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, sheets)
}

// Connect 连接一张公开发布的表，立刻做第一次同步
// @Tags Sheets
// @Security BearerAuth
// @Router /sheets [post]
func (ctrl *SheetController) Connect(c *gin.Context) {
	var req SheetConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	sheet, err := ctrl.service.Connect(c.Request.Context(), currentUserID(c), req.URL, req.Name)
	if err != nil {
		slog.Error("sheet connect failed", "url", req.URL, "error", err)
		handleServiceError(c, err)
		return
	}
	response.Created(c, sheet)
}

// Sync 手动重新同步
// @Tags Sheets
// @Security BearerAuth
// @Router /sheets/{sheetId}/sync [post]
func (ctrl *SheetController) Sync(c *gin.Context) {
	sheet, err := ctrl.service.Sync(c.Request.Context(), currentUserID(c), c.Param("sheetId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, sheet)
}

// Disconnect 断开表格，sheetId 走 query 参数（前端约定）
// @Tags Sheets
// @Security BearerAuth
// @Router /sheets [delete]
func (ctrl *SheetController) Disconnect(c *gin.Context) {
	sheetID := c.Query("sheet_id")
	if sheetID == "" {
		response.Error(c, http.StatusBadRequest, "sheet_id required")
		return
	}
	if err := ctrl.service.Disconnect(c.Request.Context(), currentUserID(c), sheetID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// Stats 按来源表聚合的导入统计
// @Tags Sheets
// @Security BearerAuth
// @Router /sheets/stats [get]
func (ctrl *SheetController) Stats(c *gin.Context) {
	stats, err := ctrl.service.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, stats)
}
