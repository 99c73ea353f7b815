package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
)

// Every endpoint answers with a top-level status plus data and/or message.

func Respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"status": "success", "data": data})
}

func RespondMessage(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"status": "success", "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Error translates err through the apperr taxonomy. Unexpected failures are
// logged with their cause and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) || e.Code == apperr.CodeInternal {
		Logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"status":  "error",
		"message": apperr.ClientMessage(err),
	})
}
