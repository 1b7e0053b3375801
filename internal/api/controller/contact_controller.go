package controller

import (
	"net/http"
	"time"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type ContactController struct {
	service *service.ContactService
}

func NewContactController(s *service.ContactService) *ContactController {
	return &ContactController{service: s}
}

type ContactCreateRequest struct {
	Name          string                        `json:"name" binding:"required,max=255"`
	Email         *string                       `json:"email" binding:"omitempty,email"`
	Phone         *string                       `json:"phone"`
	Company       *string                       `json:"company"`
	Type          model.ContactType             `json:"type" binding:"required"`
	Status        model.ContactStatus           `json:"status"`
	Notes         *string                       `json:"notes"`
	LastContact   *time.Time                    `json:"last_contact"`
	SourceSheetID *string                       `json:"source_sheet_id"`
	Checklist     []model.EmbeddedChecklistItem `json:"checklist"`
}

type ContactUpdateRequest struct {
	Name          *string                        `json:"name"`
	Email         *string                        `json:"email"`
	Phone         *string                        `json:"phone"`
	Company       *string                        `json:"company"`
	Type          *model.ContactType             `json:"type"`
	Status        *model.ContactStatus           `json:"status"`
	Notes         *string                        `json:"notes"`
	LastContact   *string                        `json:"last_contact"`
	ScheduledDate *string                        `json:"scheduled_date"`
	ActionType    *string                        `json:"action_type"`
	Checklist     *[]model.EmbeddedChecklistItem `json:"checklist"`
}

// List 获取联系人列表
// @Summary 获取联系人列表，按类型和是否带 checklist 筛选
// @Tags Contact
// @Security BearerAuth
// @Router /contacts [get]
func (ctrl *ContactController) List(c *gin.Context) {
	filter := repository.ContactFilter{
		Type:         model.ContactType(c.Query("type")),
		HasChecklist: c.Query("hasChecklist") == "1",
	}
	if filter.Type != "" && !filter.Type.Valid() {
		response.Error(c, http.StatusBadRequest, "invalid contact type")
		return
	}

	contacts, err := ctrl.service.List(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, contacts)
}

// Create 创建联系人
// @Summary 创建联系人
// @Tags Contact
// @Security BearerAuth
// @Router /contacts [post]
func (ctrl *ContactController) Create(c *gin.Context) {
	var req ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	contact, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), service.ContactInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Type:          req.Type,
		Status:        req.Status,
		Notes:         req.Notes,
		LastContact:   req.LastContact,
		SourceSheetID: req.SourceSheetID,
		Checklist:     req.Checklist,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, contact)
}

// Get 单个联系人
// @Tags Contact
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (ctrl *ContactController) Get(c *gin.Context) {
	contact, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, contact)
}

// Update 局部更新联系人，checklist 整体替换
// @Tags Contact
// @Security BearerAuth
// @Router /contacts/{id} [patch]
func (ctrl *ContactController) Update(c *gin.Context) {
	var req ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	contact, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), c.Param("id"), service.ContactUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Type:          req.Type,
		Status:        req.Status,
		Notes:         req.Notes,
		LastContact:   req.LastContact,
		ScheduledDate: req.ScheduledDate,
		ActionType:    req.ActionType,
		Checklist:     req.Checklist,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, contact)
}

// Delete 删除联系人
// @Tags Contact
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (ctrl *ContactController) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
