package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy to a message and status.
// Store errors are forwarded with their raw message.
func respondServiceError(c *gin.Context, resp utils.Responder, err error) {
	var verr *services.ValidationError
	var closed *services.BookingClosedError

	switch {
	case errors.As(err, &verr):
		resp.JSONError(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrBookingNotFound):
		resp.JSONError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, services.ErrRoomNotFound):
		resp.JSONError(c, http.StatusNotFound, "Room not found")
	case errors.Is(err, services.ErrRoomUnavailable):
		resp.JSONError(c, http.StatusConflict, "Room is not available")
	case errors.Is(err, services.ErrDuplicateRoomNumber):
		resp.JSONError(c, http.StatusConflict, "Room number already exists")
	case errors.As(err, &closed):
		resp.JSONError(c, http.StatusConflict, "Booking is already "+closed.Status.String())
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("❌ %s %s timed out: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.JSONError(c, http.StatusGatewayTimeout, "Request timed out")
	default:
		log.Printf("❌ DB ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		resp.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// bindJSON treats an empty body as an empty object.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func respondInvalidPayload(c *gin.Context, resp utils.Responder, err error) {
	log.Printf("❌ JSON BINDING ERROR: %v", err)
	resp.JSONError(c, http.StatusBadRequest, "Invalid request payload")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
