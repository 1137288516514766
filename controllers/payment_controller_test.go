package controllers

import (
	"errors"
	"net/http"
	"testing"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPaymentRouter(svc PaymentService, resp utils.Responder) *gin.Engine {
	ctrl := NewPaymentController(svc, resp)
	r := gin.New()
	r.GET("/api/payments", ctrl.GetPayments)
	r.POST("/api/payments", ctrl.CreatePayment)
	return r
}

func TestPaymentController_GetPayments(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("List", mock.Anything).Return([]models.Payment{
		{ID: 1, BookingID: 2, AmountPaid: 99.5, PaymentMethod: "Card", PaymentStatus: "Paid", TransactionID: "TX"},
	}, nil)

	rec := doRequest(setupPaymentRouter(svc, utils.NewResponder(false)), http.MethodGet, "/api/payments", "")

	assert.JSONEq(t, `[{"payment_id":1,"booking_id":2,"amount_paid":99.5,"payment_method":"Card","payment_status":"Paid","transaction_id":"TX"}]`, rec.Body.String())
}

func TestPaymentController_CreatePayment(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.BookingID == 2 && p.AmountPaid == 99.5 && p.PaymentMethod == "Card"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Payment).ID = 31
	}).Return(nil)

	rec := doRequest(setupPaymentRouter(svc, utils.NewResponder(false)), http.MethodPost, "/api/payments",
		`{"booking_id":2,"amount_paid":99.5,"payment_method":"Card","payment_status":"Paid"}`)

	assert.JSONEq(t, `{"success":true,"id":31}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestPaymentController_CreatePaymentNumericStrings(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.BookingID == 1 && p.AmountPaid == 150
	})).Return(nil)

	rec := doRequest(setupPaymentRouter(svc, utils.NewResponder(false)), http.MethodPost, "/api/payments",
		`{"booking_id":"1","amount_paid":"150.00"}`)

	assert.Equal(t, true, decodeObject(t, rec)["success"])
	svc.AssertExpectations(t)
}

func TestPaymentController_CreatePaymentStoreError(t *testing.T) {
	svc := new(MockPaymentService)
	svc.On("Create", mock.Anything, mock.Anything).Return(errors.New("Data too long for column 'payment_method'"))

	rec := doRequest(setupPaymentRouter(svc, utils.NewResponder(false)), http.MethodPost, "/api/payments", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Data too long for column 'payment_method'", decodeObject(t, rec)["error"])
}

func TestHealthController(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Ping", mock.Anything).Return(nil).Once()
	pinger.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

	r := gin.New()
	r.GET("/health", NewHealthController(pinger).Health)

	rec := doRequest(r, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","error":"connection refused"}`, rec.Body.String())
}
