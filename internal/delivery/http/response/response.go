package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SentBody is returned once both form emails were accepted by the provider.
type SentBody struct {
	OK         bool    `json:"ok"`
	InternalID *string `json:"internalId"`
	ClientID   *string `json:"clientId"`
}

// Sent sends the dual-send success response
func Sent(c *gin.Context, code int, internalID, clientID *string) {
	c.JSON(code, SentBody{
		OK:         true,
		InternalID: internalID,
		ClientID:   clientID,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details string) {
	c.JSON(code, ErrorBody{
		Error:   message,
		Details: details,
	})
}
