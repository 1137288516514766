// controllers/booking_controller.go
package controllers

import (
	"context"
	"log"
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Create(ctx context.Context, in services.CreateBookingInput) (*models.Booking, error)
	Cancel(ctx context.Context, id uint) error
	Complete(ctx context.Context, id uint) error
}

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	GuestID         flexUint  `json:"guest_id"`
	RoomID          flexUint  `json:"room_id"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	TotalPrice      flexFloat `json:"total_price"`
	BookingStatus   string    `json:"booking_status"`
	SpecialRequests string    `json:"special_requests"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc BookingService
	Resp       utils.Responder
}

func NewBookingController(svc BookingService, resp utils.Responder) *BookingController {
	return &BookingController{BookingSvc: svc, Resp: resp}
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Request.Context())
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := bindJSON(c, &payload); err != nil {
		respondInvalidPayload(c, ctrl.Resp, err)
		return
	}

	booking, err := ctrl.BookingSvc.Create(c.Request.Context(), services.CreateBookingInput{
		GuestID:         uint(payload.GuestID),
		RoomID:          uint(payload.RoomID),
		CheckInDate:     payload.CheckInDate,
		CheckOutDate:    payload.CheckOutDate,
		TotalPrice:      float64(payload.TotalPrice),
		BookingStatus:   payload.BookingStatus,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		log.Printf("Service error creating booking: %v", err)
		respondServiceError(c, ctrl.Resp, err)
		return
	}

	ctrl.Resp.JSONSuccess(c, http.StatusCreated, gin.H{"id": booking.ID})
}

// PATCH /api/bookings/:id/cancel
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	ctrl.transition(c, ctrl.BookingSvc.Cancel)
}

// PATCH /api/bookings/:id/complete
func (ctrl *BookingController) CompleteBooking(c *gin.Context) {
	ctrl.transition(c, ctrl.BookingSvc.Complete)
}

func (ctrl *BookingController) transition(c *gin.Context, apply func(context.Context, uint) error) {
	id, ok := parseID(c)
	if !ok {
		ctrl.Resp.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if err := apply(c.Request.Context(), id); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	ctrl.Resp.JSONSuccess(c, http.StatusOK, nil)
}
