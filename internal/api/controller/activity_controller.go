package controller

import (
	"net/http"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	service *service.ActivityService
}

func NewActivityController(s *service.ActivityService) *ActivityController {
	return &ActivityController{service: s}
}

type ActivityRequest struct {
	Type        string `json:"type" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// List 最近 50 条操作，最新在前
// @Tags Activity
// @Security BearerAuth
// @Router /activities [get]
func (ctrl *ActivityController) List(c *gin.Context) {
	response.Success(c, ctrl.service.List(currentUserID(c)))
}

// Record 记一条操作
// @Tags Activity
// @Security BearerAuth
// @Router /activities [post]
func (ctrl *ActivityController) Record(c *gin.Context) {
	var req ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}
	activity := ctrl.service.Record(currentUserID(c), req.Type, req.Category, req.Description)
	response.Created(c, activity)
}

// Clear 清空记录
// @Tags Activity
// @Security BearerAuth
// @Router /activities [delete]
func (ctrl *ActivityController) Clear(c *gin.Context) {
	ctrl.service.Clear(currentUserID(c))
	response.Success(c, nil)
}
