package handlers

import (
	"net/http"

	"slift/internal/budget"

	"github.com/gin-gonic/gin"
)

// PostBudgetQuote prices a prospective job from the internal rate tables.
// Stateless: nothing is persisted.
func PostBudgetQuote(c *gin.Context) {
	var in budget.Input
	if !BindJSONOrError(c, &in) {
		return
	}
	c.JSON(http.StatusOK, budget.Estimate(in))
}

// GetBudgetCatalog exposes the vehicle and crane rate tables so the form
// can render its dropdowns from the same source the estimator prices with.
func GetBudgetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"vehicles":    budget.VehicleTypes(),
		"cranes":      budget.CraneTypes(),
		"helperPrice": budget.HelperPrice,
		"munkPrice":   budget.MunkPrice,
	})
}
