package controllers

import (
	"errors"
	"net/http"
	"testing"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupGuestRouter(svc GuestService, resp utils.Responder) *gin.Engine {
	ctrl := NewGuestController(svc, resp)
	r := gin.New()
	r.GET("/api/guests", ctrl.GetGuests)
	r.POST("/api/guests", ctrl.CreateGuest)
	r.DELETE("/api/guests/:id", ctrl.DeleteGuest)
	return r
}

func TestGuestController_GetGuests(t *testing.T) {
	svc := new(MockGuestService)
	svc.On("List", mock.Anything).Return([]models.Guest{
		{ID: 1, Name: "Jane Doe", Email: "jane@x.com"},
	}, nil)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(false)), http.MethodGet, "/api/guests", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"guest_id":1,"name":"Jane Doe","email":"jane@x.com","phone":"","address":""}]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestGuestController_GetGuestsEmptyIsArray(t *testing.T) {
	svc := new(MockGuestService)
	svc.On("List", mock.Anything).Return([]models.Guest{}, nil)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(false)), http.MethodGet, "/api/guests", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGuestController_GetGuestsStoreError(t *testing.T) {
	svc := new(MockGuestService)
	svc.On("List", mock.Anything).Return(nil, errors.New("Table 'hotel_db.Guest' doesn't exist"))

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(false)), http.MethodGet, "/api/guests", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Table 'hotel_db.Guest' doesn't exist", decodeObject(t, rec)["error"])
}

func TestGuestController_CreateGuest(t *testing.T) {
	svc := new(MockGuestService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(g *models.Guest) bool {
		return g.Name == "Jane Doe" && g.Email == "jane@x.com" && g.Phone == "555"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Guest).ID = 5
	}).Return(nil)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(false)), http.MethodPost, "/api/guests",
		`{"name":"Jane Doe","email":"jane@x.com","phone":"555"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":5}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestGuestController_CreateGuestValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		legacy bool
	}{
		{name: "legacy empty object", body: `{}`, status: http.StatusOK, legacy: true},
		{name: "legacy empty body", body: "", status: http.StatusOK, legacy: true},
		{name: "http status", body: `{"name":"Jane"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockGuestService)
			svc.On("Create", mock.Anything, mock.Anything).
				Return(&services.ValidationError{Message: "Name and email required"})

			rec := doRequest(setupGuestRouter(svc, utils.NewResponder(!tt.legacy)), http.MethodPost, "/api/guests", tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"error":"Name and email required"}`, rec.Body.String())
		})
	}
}

func TestGuestController_CreateGuestMalformedJSON(t *testing.T) {
	svc := new(MockGuestService)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(true)), http.MethodPost, "/api/guests", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decodeObject(t, rec)["error"])
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGuestController_DeleteGuest(t *testing.T) {
	svc := new(MockGuestService)
	svc.On("Delete", mock.Anything, uint(9)).Return(nil)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(false)), http.MethodDelete, "/api/guests/9", "")

	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestGuestController_DeleteGuestInvalidID(t *testing.T) {
	svc := new(MockGuestService)

	rec := doRequest(setupGuestRouter(svc, utils.NewResponder(true)), http.MethodDelete, "/api/guests/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid guest id", decodeObject(t, rec)["error"])
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
