package controllers

import (
	"context"
	"net/http"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type GuestService interface {
	List(ctx context.Context) ([]models.Guest, error)
	Create(ctx context.Context, guest *models.Guest) error
	Delete(ctx context.Context, id uint) error
}

type GuestController struct {
	GuestSvc GuestService
	Resp     utils.Responder
}

func NewGuestController(svc GuestService, resp utils.Responder) *GuestController {
	return &GuestController{GuestSvc: svc, Resp: resp}
}

type createGuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GET /api/guests
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.GuestSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// POST /api/guests
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var payload createGuestRequest
	if err := bindJSON(c, &payload); err != nil {
		respondInvalidPayload(c, ctrl.Resp, err)
		return
	}

	guest := models.Guest{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	}
	if err := ctrl.GuestSvc.Create(c.Request.Context(), &guest); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}

	ctrl.Resp.JSONSuccess(c, http.StatusCreated, gin.H{"id": guest.ID})
}

// DELETE /api/guests/:id
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.Resp.JSONError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	if err := ctrl.GuestSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, ctrl.Resp, err)
		return
	}
	ctrl.Resp.JSONSuccess(c, http.StatusOK, nil)
}
