package common

import "github.com/gin-gonic/gin"

// Envelope is the uniform response shape every handler returns. Expected
// conditions (not found, duplicate, forbidden) travel through it instead of
// being raised.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func NewEnvelope(status int, message string, data ...any) Envelope {
	e := Envelope{Status: status, Message: message}
	if len(data) > 0 {
		e.Data = data[0]
	}
	return e
}

// Respond writes an envelope with its status mirrored onto the HTTP response.
func Respond(c *gin.Context, status int, message string, data ...any) {
	c.JSON(status, NewEnvelope(status, message, data...))
}

// Send writes a pre-built envelope.
func Send(c *gin.Context, e Envelope) {
	c.JSON(e.Status, e)
}
