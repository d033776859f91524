package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/profile"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/service"
)

var (
	errNotAuthorized         = errors.New("user is not authorized")
	errUsernameIsNotProvided = errors.New("please provide username")
	errURLIsNotProvided      = errors.New("please provide url")
	errInvalidID             = errors.New("provided an invalid ID")
)

// respondError maps the service error taxonomy onto HTTP statuses. Validation
// failures are reported field-by-field so the editor can highlight exactly
// what to fix.
func respondError(c *gin.Context, err error) {
	var validationErrs profile.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]dto.FieldError, len(validationErrs))
		for i, fieldErr := range validationErrs {
			fields[i] = dto.FieldError{Field: fieldErr.Field, Message: fieldErr.Message}
		}
		c.JSON(http.StatusBadRequest, dto.ValidationResponse{Ok: false, Errors: fields})
		return
	}

	switch {
	case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrProfileNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, err.Error()))
	case errors.Is(err, service.ErrPasswordsDontMatch), errors.Is(err, service.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
	}
}
