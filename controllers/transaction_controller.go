package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kadima-pos/middleware"
	"kadima-pos/models"
	"kadima-pos/services"
)

type TransactionController struct {
	transactions *services.TransactionService
}

func NewTransactionController(transactions *services.TransactionService) *TransactionController {
	return &TransactionController{transactions: transactions}
}

// @Summary Get transaction
// @Description Transaction with its items. Polled by the till while waiting for payment.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Response{data=models.Transaction}
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{id} [get]
func (ctrl *TransactionController) GetTransaction(c *gin.Context) {
	tx, err := ctrl.transactions.GetDetails(c.Request.Context(), c.GetString(middleware.CtxMerchantID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Transaction retrieved successfully",
		Data:    tx,
	})
}

// @Summary Update payment status
// @Description PENDING_PAYMENT to PROCESSING or PAID, PROCESSING to PAID. Paying sends the receipt email.
// @Tags Admin - Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body models.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} models.Response{data=models.Transaction}
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/transactions/{id}/status [patch]
func (ctrl *TransactionController) UpdatePaymentStatus(c *gin.Context) {
	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	tx, err := ctrl.transactions.UpdatePaymentStatus(c.Request.Context(), c.GetString(middleware.CtxMerchantID), c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment status updated",
		Data:    tx,
	})
}

// @Summary Transaction history
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param store_id path string true "Store ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by payment status" Enums(PENDING_PAYMENT, PROCESSING, PAID)
// @Success 200 {object} models.PaginationResponse
// @Router /merchants/{merchant_id}/stores/{store_id}/transactions [get]
func (ctrl *TransactionController) GetHistory(c *gin.Context) {
	page, limit := pagination(c)

	txs, meta, err := ctrl.transactions.History(c.Request.Context(), models.HistoryFilter{
		MerchantID: c.Param("merchant_id"),
		StoreID:    c.Param("store_id"),
		Status:     models.PaymentStatus(c.Query("status")),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Transactions retrieved successfully",
		Data:    txs,
		Meta:    meta,
	})
}
