package handlers

import (
	"net/http"
	"strings"

	"slift/internal/http/middleware"
	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{RequestID: middleware.GetRequestID(c)}
}

// GetPayments lists payments, optionally filtered by ?staffId=.
func GetPayments(c *gin.Context) {
	svc := paymentService(c)

	staffID := strings.TrimSpace(c.Query("staffId"))
	if staffID != "" {
		payments, err := svc.ListByStaff(staffID)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "falha ao carregar pagamentos", err)
			return
		}
		c.JSON(http.StatusOK, payments)
		return
	}

	payments, err := svc.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar pagamentos", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func CreatePayment(c *gin.Context) {
	var in services.PaymentInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := paymentService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func DeletePayment(c *gin.Context) {
	if err := paymentService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pagamento removido"})
}
