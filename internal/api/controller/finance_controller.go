package controller

import (
	"net/http"
	"time"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	service *service.FinanceService
}

func NewFinanceController(s *service.FinanceService) *FinanceController {
	return &FinanceController{service: s}
}

type TransactionCreateRequest struct {
	Type          model.TransactionType `json:"type" binding:"required"`
	Title         *string               `json:"title"`
	InvoiceNumber *string               `json:"invoice_number"`
	Description   *string               `json:"description"`
	BaseAmount    *float64              `json:"base_amount"`
	VatRate       *float64              `json:"vat_rate"`
	Date          *time.Time            `json:"date"`
}

type SubscriptionCreateRequest struct {
	Category    model.SubscriptionCategory   `json:"category" binding:"required"`
	Title       *string                      `json:"title"`
	Description *string                      `json:"description"`
	Price       *float64                     `json:"price"`
	VatRate     *float64                     `json:"vat_rate"`
	Frequency   *model.SubscriptionFrequency `json:"frequency"`
	PaymentDay  *int                         `json:"payment_day" binding:"omitempty,min=1,max=31"`
}

// ListTransactions 收支流水列表
// @Tags Finance
// @Security BearerAuth
// @Router /transactions [get]
func (ctrl *FinanceController) ListTransactions(c *gin.Context) {
	txs, err := ctrl.service.ListTransactions(c.Request.Context(), currentUserID(c), model.TransactionType(c.Query("type")))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, txs)
}

// CreateTransaction 记一笔收支，增值税和总额在这一刻算死
// @Tags Finance
// @Security BearerAuth
// @Router /transactions [post]
func (ctrl *FinanceController) CreateTransaction(c *gin.Context) {
	var req TransactionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "invalid request data", err.Error())
		return
	}

	tx, err := ctrl.service.CreateTransaction(c.Request.Context(), currentUserID(c), service.TransactionInput{
		Type:          req.Type,
		Title:         req.Title,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		BaseAmount:    req.BaseAmount,
		VatRate:       req.VatRate,
		Date:          req.Date,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, tx)
}

// DeleteTransaction 删流水
// @Tags Finance
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (ctrl *FinanceController) DeleteTransaction(c *gin.Context) {
	if err := ctrl.service.DeleteTransaction(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// ListSubscriptions 订阅列表
// @Tags Finance
// @Security BearerAuth
// @Router /subscriptions [get]
func (ctrl *FinanceController) ListSubscriptions(c *gin.Context) {
	subs, err := ctrl.service.ListSubscriptions(c.Request.Context(), currentUserID(c), model.SubscriptionCategory(c.Query("category")))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, subs)
}

// CreateSubscription 记一个订阅，按税率拆 base/vat
// @Tags Finance
// @Security BearerAuth
// @Router /subscriptions [post]
func (ctrl *FinanceController) CreateSubscription(c *gin.Context) {
	var req SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "invalid request data", err.Error())
		return
	}

	sub, err := ctrl.service.CreateSubscription(c.Request.Context(), currentUserID(c), service.SubscriptionInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		VatRate:     req.VatRate,
		Frequency:   req.Frequency,
		PaymentDay:  req.PaymentDay,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, sub)
}

// DeleteSubscription 删订阅
// @Tags Finance
// @Security BearerAuth
// @Router /subscriptions/{id} [delete]
func (ctrl *FinanceController) DeleteSubscription(c *gin.Context) {
	if err := ctrl.service.DeleteSubscription(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
