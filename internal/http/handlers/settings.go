package handlers

import (
	"net/http"

	"slift/internal/domain/models"
	"slift/internal/http/middleware"
	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

func settingsService(c *gin.Context) services.SettingsService {
	return services.SettingsService{RequestID: middleware.GetRequestID(c)}
}

func GetSettings(c *gin.Context) {
	s, err := settingsService(c).Get()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar configurações", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func UpdateSettings(c *gin.Context) {
	var in models.Settings
	if !BindJSONOrError(c, &in) {
		return
	}
	s, err := settingsService(c).Update(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
