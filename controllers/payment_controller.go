package controllers

import (
	"context"
	"net/http"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type PaymentService interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

type PaymentController struct {
	PaymentSvc PaymentService
	Resp       utils.Responder
}

func NewPaymentController(svc PaymentService, resp utils.Responder) *PaymentController {
	return &PaymentController{PaymentSvc: svc, Resp: resp}
}

type createPaymentRequest struct {
	BookingID     flexUint  `json:"booking_id"`
	AmountPaid    flexFloat `json:"amount_paid"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID string    `json:"transaction_id"`
}

func (ctrl *PaymentController) GetPayments(c *gin.Context) {
	payments, err := ctrl.PaymentSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var payload createPaymentRequest
	if err := bindJSON(c, &payload); err != nil {
		respondInvalidPayload(c, ctrl.Resp, err)
		return
	}

	payment := models.Payment{
		BookingID:     uint(payload.BookingID),
		AmountPaid:    float64(payload.AmountPaid),
		PaymentMethod: payload.PaymentMethod,
		PaymentStatus: payload.PaymentStatus,
		TransactionID: payload.TransactionID,
	}
	if err := ctrl.PaymentSvc.Create(c.Request.Context(), &payment); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}

	ctrl.Resp.JSONSuccess(c, http.StatusCreated, gin.H{"id": payment.ID})
}
