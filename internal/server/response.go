package server

import "github.com/gin-gonic/gin"

// envelope is the uniform response shape: success responses carry
// data (and optionally meta), error responses carry error (and
// optionally details).
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(200, envelope{Success: true, Data: data})
}

func respondOKMeta(c *gin.Context, data, meta any) {
	c.JSON(200, envelope{Success: true, Data: data, Meta: meta})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Error: msg})
}

func respondErrorDetails(c *gin.Context, status int, msg, details string) {
	c.JSON(status, envelope{Success: false, Error: msg, Details: details})
}
