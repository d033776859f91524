package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/dto"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/service"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/theme"
)

func (h *Handler) profilesMe(c *gin.Context) {
	user := h.getUser(c)

	found, err := h.services.Profile.FindByUserID(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetProfileDtoFromProfile(*found))
}

func (h *Handler) profilesUpdate(c *gin.Context) {
	user := h.getUser(c)

	var patch dto.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	updated, err := h.services.Profile.Update(c.Request.Context(), user.ID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetProfileDtoFromProfile(*updated))
}

func (h *Handler) profilesClear(c *gin.Context) {
	user := h.getUser(c)

	if err := h.services.Profile.Clear(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) profilesGetByUsername(c *gin.Context) {
	username := c.GetString("username")

	found, err := h.services.Profile.FindByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetProfileDtoFromProfile(*found))
}

func (h *Handler) profilesRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.RECENT_PROFILES_LIMIT)))
	if err != nil || limit <= 0 {
		limit = service.RECENT_PROFILES_LIMIT
	}

	recent, err := h.services.Profile.FindRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]*dto.GetProfileDto, len(recent))
	for i, p := range recent {
		out[i] = dto.GetProfileDtoFromProfile(*p)
	}

	c.JSON(http.StatusOK, out)
}

func (h *Handler) profilesCheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errUsernameIsNotProvided.Error()))
		return
	}

	excludeUserID := uuid.Nil
	if exclude := c.Query("exclude"); exclude != "" {
		parsed, err := uuid.Parse(exclude)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
			return
		}
		excludeUserID = parsed
	}

	available, err := h.services.Registry.IsAvailable(c.Request.Context(), username, excludeUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *Handler) themesList(c *gin.Context) {
	c.JSON(http.StatusOK, theme.Packs())
}

func (h *Handler) themesGet(c *gin.Context) {
	pack, ok := theme.Find(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, "unknown theme pack"))
		return
	}

	c.JSON(http.StatusOK, pack)
}

// faviconResolve derives a favicon URL for a link without fetching the target
// site itself; Google's favicon service handles the lookup.
func (h *Handler) faviconResolve(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errURLIsNotProvided.Error()))
		return
	}

	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, "invalid url"))
		return
	}

	c.JSON(http.StatusOK, dto.FaviconResponse{
		Favicon: "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(parsed.Hostname()) + "&sz=64",
	})
}
