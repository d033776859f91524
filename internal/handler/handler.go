package handler

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/proSamik/Mini-profile-Website-Builder/internal/model"
	"github.com/proSamik/Mini-profile-Website-Builder/internal/service"
	"github.com/proSamik/Mini-profile-Website-Builder/pkg/utils"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	origin := viper.GetString("client.origin")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/sign-up", h.authSignUp)
			auth.POST("/sign-in", h.authSignIn)
			auth.POST("/refresh", h.authRefresh)
		}

		profiles := v1.Group("/profiles")
		{
			me := profiles.Group("/@me")
			{
				me.Use(h.authMiddleware)

				me.GET("", h.profilesMe)
				me.PATCH("", h.profilesUpdate)
				me.DELETE("", h.profilesClear)
			}

			profiles.GET("/byUsername/:username", h.usernameMiddleware, h.profilesGetByUsername)
			profiles.GET("/recent", h.profilesRecent)
			profiles.GET("/check-username", h.profilesCheckUsername)
		}

		v1.GET("/themes", h.themesList)
		v1.GET("/themes/:id", h.themesGet)
		v1.GET("/favicon", h.faviconResolve)
	}

	return r
}

func (h *Handler) getUserFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.Auth.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUser(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}
