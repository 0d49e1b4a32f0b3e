package handlers

import (
	"net/http"
	"strings"

	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBalances returns every staff member's statement. Optional ?startDate=
// and ?endDate= restrict which trips count toward earnings; payments always
// count in full.
func GetBalances(c *gin.Context) {
	svc := services.BalanceService{}
	statements, err := svc.All(windowFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, statements)
}

func GetBalanceByStaff(c *gin.Context) {
	staffID := strings.TrimSpace(c.Param("staffId"))
	if staffID == "" {
		respondError(c, http.StatusBadRequest, "invalid_staff_id", "id de colaborador inválido", nil)
		return
	}

	svc := services.BalanceService{}
	st, err := svc.StatementFor(staffID, windowFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
