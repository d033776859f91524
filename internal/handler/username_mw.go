package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
)

// usernameMiddleware extracts the public page slug; a leading '@' is allowed
// but not required.
func (h *Handler) usernameMiddleware(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	username = strings.TrimPrefix(username, "@")
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errUsernameIsNotProvided.Error()))
		c.Abort()
		return
	}

	c.Set("username", username)

	c.Next()
}
