package controllers

import (
	"context"
	"net/http"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type RoomService interface {
	List(ctx context.Context) ([]models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type RoomController struct {
	RoomSvc RoomService
	Resp    utils.Responder
}

func NewRoomController(svc RoomService, resp utils.Responder) *RoomController {
	return &RoomController{RoomSvc: svc, Resp: resp}
}

type createRoomRequest struct {
	RoomNumber         *string   `json:"room_number"`
	RoomType           string    `json:"room_type"`
	PricePerNight      flexFloat `json:"price_per_night"`
	AvailabilityStatus string    `json:"availability_status"`
}

type roomStatusRequest struct {
	Status string `json:"status"`
}

// ----------------------------------------------------
// GET /api/rooms
// ----------------------------------------------------
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// POST /api/rooms
// ----------------------------------------------------
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomRequest
	if err := bindJSON(c, &payload); err != nil {
		respondInvalidPayload(c, ctrl.Resp, err)
		return
	}

	room := models.Room{
		RoomNumber:         payload.RoomNumber,
		RoomType:           payload.RoomType,
		PricePerNight:      float64(payload.PricePerNight),
		AvailabilityStatus: payload.AvailabilityStatus,
	}
	if err := ctrl.RoomSvc.Create(c.Request.Context(), &room); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}

	ctrl.Resp.JSONSuccess(c, http.StatusCreated, gin.H{"id": room.ID})
}

// ----------------------------------------------------
// PATCH /api/rooms/:id/status
// ----------------------------------------------------
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.Resp.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	var payload roomStatusRequest
	if err := bindJSON(c, &payload); err != nil {
		respondInvalidPayload(c, ctrl.Resp, err)
		return
	}

	if err := ctrl.RoomSvc.UpdateStatus(c.Request.Context(), id, payload.Status); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	ctrl.Resp.JSONSuccess(c, http.StatusOK, nil)
}

// ----------------------------------------------------
// DELETE /api/rooms/:id
// ----------------------------------------------------
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.Resp.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	ctrl.Resp.JSONSuccess(c, http.StatusOK, nil)
}
