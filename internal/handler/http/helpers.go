package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	"github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// StatusForKind maps a failure kind to its HTTP status.
func StatusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindInvalidCredentials, apperror.KindAccountDisabled, apperror.KindAccountLocked:
		return http.StatusUnauthorized
	case apperror.KindDuplicateUsername, apperror.KindDuplicateEmail:
		return http.StatusConflict
	case apperror.KindWeakPassword, apperror.KindInvalidEmail, apperror.KindBlankField, apperror.KindBadAction:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppErrorHandler writes err with the status of its kind. Untyped errors
// never leak their text.
func AppErrorHandler(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, apperror.ErrInternal.Message)
		return
	}
	ErrorHandler(c, StatusForKind(kind), err.Error())
}
