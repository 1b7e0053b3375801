package controller

import (
	"net/http"
	"strconv"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type BattlePlanController struct {
	service *service.BattlePlanService
}

func NewBattlePlanController(s *service.BattlePlanService) *BattlePlanController {
	return &BattlePlanController{service: s}
}

type BattlePlanDayRequest struct {
	Phase   *string   `json:"phase"`
	Weekday *string   `json:"weekday"`
	Title   *string   `json:"title"`
	Mission *string   `json:"mission"`
	KPI     *string   `json:"kpi"`
	Routine *[]string `json:"routine"`
}

// Get 完整 30 天计划，首次访问返回默认计划
// @Tags BattlePlan
// @Security BearerAuth
// @Router /battleplan [get]
func (ctrl *BattlePlanController) Get(c *gin.Context) {
	days, err := ctrl.service.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, days)
}

// UpdateDay 改某一天
// @Tags BattlePlan
// @Security BearerAuth
// @Router /battleplan/{day} [patch]
func (ctrl *BattlePlanController) UpdateDay(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid day")
		return
	}

	var req BattlePlanDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	updated, err := ctrl.service.UpdateDay(c.Request.Context(), currentUserID(c), day, service.BattlePlanUpdate{
		Phase:   req.Phase,
		Weekday: req.Weekday,
		Title:   req.Title,
		Mission: req.Mission,
		KPI:     req.KPI,
		Routine: req.Routine,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, updated)
}
