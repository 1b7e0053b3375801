package controller

import (
	"net/http"
	"time"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type FollowupController struct {
	service *service.FollowupService
}

func NewFollowupController(s *service.FollowupService) *FollowupController {
	return &FollowupController{service: s}
}

type FollowupCreateRequest struct {
	ContactID      string                `json:"contact_id" binding:"required"`
	ContactName    string                `json:"contact_name" binding:"required"`
	ContactEmail   *string               `json:"contact_email"`
	ContactPhone   *string               `json:"contact_phone"`
	ContactCompany *string               `json:"contact_company"`
	Section        model.FollowupSection `json:"section" binding:"required"`
	Notes          *string               `json:"notes"`
	DueDate        *time.Time            `json:"due_date"`
	SourceSheetID  *string               `json:"source_sheet_id"`
}

type FollowupUpdateRequest struct {
	ContactName    *string                `json:"contact_name"`
	ContactEmail   *string                `json:"contact_email"`
	ContactPhone   *string                `json:"contact_phone"`
	ContactCompany *string                `json:"contact_company"`
	Section        *model.FollowupSection `json:"section"`
	Notes          *string                `json:"notes"`
	DueDate        *string                `json:"due_date"`
	Completed      *bool                  `json:"completed"`
	ScheduledDate  *string                `json:"scheduled_date"`
	ActionType     *string                `json:"action_type"`
}

type ChecklistItemRequest struct {
	Content   string `json:"content" binding:"required"`
	Completed bool   `json:"completed"`
}

type ChecklistItemUpdateRequest struct {
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

// List 获取跟进列表
// @Summary 获取跟进列表，可按区筛选
// @Tags Followup
// @Security BearerAuth
// @Router /followups [get]
func (ctrl *FollowupController) List(c *gin.Context) {
	section := model.FollowupSection(c.Query("section"))
	followups, err := ctrl.service.List(c.Request.Context(), currentUserID(c), section)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, followups)
}

// Create 创建跟进（联系人复制到某个区）
// @Summary 创建跟进，快照联系人字段
// @Tags Followup
// @Security BearerAuth
// @Router /followups [post]
func (ctrl *FollowupController) Create(c *gin.Context) {
	var req FollowupCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	followup, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), service.FollowupInput{
		ContactID:      req.ContactID,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ContactCompany: req.ContactCompany,
		Section:        req.Section,
		Notes:          req.Notes,
		DueDate:        req.DueDate,
		SourceSheetID:  req.SourceSheetID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, followup)
}

// Update 局部更新（换区也走这里）
// @Tags Followup
// @Security BearerAuth
// @Router /followups/{id} [patch]
func (ctrl *FollowupController) Update(c *gin.Context) {
	var req FollowupUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	followup, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), c.Param("id"), service.FollowupUpdate{
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		ContactCompany: req.ContactCompany,
		Section:        req.Section,
		Notes:          req.Notes,
		DueDate:        req.DueDate,
		Completed:      req.Completed,
		ScheduledDate:  req.ScheduledDate,
		ActionType:     req.ActionType,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, followup)
}

// Delete 删除跟进，关系型 checklist 级联删除
// @Tags Followup
// @Security BearerAuth
// @Router /followups/{id} [delete]
func (ctrl *FollowupController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListChecklist 跟进的任务列表
// @Tags Followup
// @Security BearerAuth
// @Router /followups/{id}/checklist [get]
func (ctrl *FollowupController) ListChecklist(c *gin.Context) {
	items, err := ctrl.service.ListChecklist(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, items)
}

// AddChecklistItem 加任务项，附带 checks 区自动建档
// @Tags Followup
// @Security BearerAuth
// @Router /followups/{id}/checklist [post]
func (ctrl *FollowupController) AddChecklistItem(c *gin.Context) {
	var req ChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.AddChecklistItem(c.Request.Context(), currentUserID(c), c.Param("id"), req.Content, req.Completed)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// SyncChecklist 把当前任务项全量搬到 checks 区
// @Tags Followup
// @Security BearerAuth
// @Router /followups/{id}/checklist/sync [post]
func (ctrl *FollowupController) SyncChecklist(c *gin.Context) {
	copied, err := ctrl.service.SyncChecklistToChecks(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"copied": copied})
}

// UpdateChecklistItem 改单个任务项
// @Tags Checklist
// @Security BearerAuth
// @Router /checklist/{itemId} [patch]
func (ctrl *FollowupController) UpdateChecklistItem(c *gin.Context) {
	var req ChecklistItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	item, err := ctrl.service.UpdateChecklistItem(c.Request.Context(), currentUserID(c), c.Param("itemId"), req.Content, req.Completed)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteChecklistItem 删单个任务项
// @Tags Checklist
// @Security BearerAuth
// @Router /checklist/{itemId} [delete]
func (ctrl *FollowupController) DeleteChecklistItem(c *gin.Context) {
	if err := ctrl.service.DeleteChecklistItem(c.Request.Context(), currentUserID(c), c.Param("itemId")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
