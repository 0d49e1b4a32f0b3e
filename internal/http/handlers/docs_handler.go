package handlers

import (
	"net/http"
	"strings"

	"slift/internal/http/middleware"
	"slift/internal/ledger"
	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

// GetStaffStatementPDF returns the printable balance statement (inline).
// Accepts optional ?startDate= and ?endDate= to window the earnings.
func GetStaffStatementPDF(c *gin.Context) {
	staffID := strings.TrimSpace(c.Param("id"))
	if staffID == "" {
		respondError(c, http.StatusBadRequest, "invalid_staff_id", "id de colaborador inválido", nil)
		return
	}

	win := windowFromQuery(c)
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}

	pdfBytes, filename, err := svc.GenerateStatement(staffID, win)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func windowFromQuery(c *gin.Context) ledger.Window {
	return ledger.Window{
		From: strings.TrimSpace(c.Query("startDate")),
		To:   strings.TrimSpace(c.Query("endDate")),
	}
}
