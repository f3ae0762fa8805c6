package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/response_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	log         *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, log *zap.Logger) *AuthController {
	return &AuthController{authService: authService, log: log}
}

// LoginGoogle godoc
// @Summary Google consent URL
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.LoginURLResponse
// @Router /login/google [get]
func (a *AuthController) LoginGoogle(c *gin.Context) {
	url, err := a.authService.LoginURL()
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}
	utils.RespondJSON(c, response_models.LoginURLResponse{URL: url})
}

// AuthGoogle godoc
// @Summary OAuth callback
// @Description Exchanges the code and redirects to the frontend with the user's name and email
// @Tags Auth
// @Param code query string true "authorization code"
// @Param state query string true "login state"
// @Success 307
// @Failure 400 {object} utils.APIResponse
// @Router /auth/google [get]
func (a *AuthController) AuthGoogle(c *gin.Context) {
	target, err := a.authService.CompleteLogin(c.Request.Context(), c.Query("code"), c.Query("state"))
	if err != nil {
		utils.HandleServiceError(c, a.log, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}
