package handlers

import (
	"net/http"

	"slift/internal/http/middleware"
	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

func GetTrips(c *gin.Context) {
	trips, err := tripService(c).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar viagens", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func GetTripByID(c *gin.Context) {
	trip, err := tripService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func CreateTrip(c *gin.Context) {
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, err := tripService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func UpdateTrip(c *gin.Context) {
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	trip, err := tripService(c).Update(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func DeleteTrip(c *gin.Context) {
	if err := tripService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viagem removida"})
}

// PreviewTripQuote quotes the form's current state without persisting, so
// the UI can show costs live while the user types.
func PreviewTripQuote(c *gin.Context) {
	var in services.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	q, err := tripService(c).Preview(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
