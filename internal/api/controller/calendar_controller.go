package controller

import (
	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	service *service.CalendarService
}

func NewCalendarController(s *service.CalendarService) *CalendarController {
	return &CalendarController{service: s}
}

// Events 合并日程：带 scheduledDate 的联系人 + 跟进，按时间升序
// @Tags Calendar
// @Security BearerAuth
// @Router /calendar [get]
func (ctrl *CalendarController) Events(c *gin.Context) {
	events, err := ctrl.service.Events(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, events)
}
