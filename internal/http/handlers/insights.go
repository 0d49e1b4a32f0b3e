package handlers

import (
	"net/http"

	intconfig "slift/internal/config"
	"slift/internal/insights"
	"slift/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GetInsights asks Gemini for a short management report over recent
// operations. Always 200: failures come back as fixed advisory texts.
func GetInsights(c *gin.Context) {
	trips, err := (repositories.TripRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar viagens", err)
		return
	}
	staff, err := (repositories.StaffRepository{}).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar equipe", err)
		return
	}
	settings, err := (repositories.SettingsRepository{}).Load()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar configurações", err)
		return
	}

	gen := insights.NewGenerator(intconfig.LoadEnv().GeminiAPIKey)
	report := gen.Generate(c.Request.Context(), trips, staff, settings)
	c.JSON(http.StatusOK, gin.H{"insights": report})
}
