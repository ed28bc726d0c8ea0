package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
)

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   false,
		Data: nil,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// FromError menjawab request berdasarkan AppError; error lain dianggap internal.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}
	Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred", nil)
}
