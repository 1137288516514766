package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Responder writes the API's JSON envelopes. Existing clients read failures
// from the body of a 200 response, so real status codes are opt-in.
type Responder struct {
	UseHTTPStatus bool
}

func NewResponder(useHTTPStatus bool) Responder {
	return Responder{UseHTTPStatus: useHTTPStatus}
}

func (r Responder) status(code int) int {
	if !r.UseHTTPStatus {
		return http.StatusOK
	}
	return code
}

// JSONSuccess writes {"success": true} merged with extra.
func (r Responder) JSONSuccess(c *gin.Context, code int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(r.status(code), body)
}

func (r Responder) JSONError(c *gin.Context, code int, message string) {
	c.JSON(r.status(code), gin.H{"error": message})
}
