package handlers

import (
	"net/http"

	"slift/internal/http/middleware"
	"slift/internal/services"

	"github.com/gin-gonic/gin"
)

func staffService(c *gin.Context) services.StaffService {
	return services.StaffService{RequestID: middleware.GetRequestID(c)}
}

func GetStaff(c *gin.Context) {
	list, err := staffService(c).List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "falha ao carregar equipe", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetStaffByID(c *gin.Context) {
	st, err := staffService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func CreateStaff(c *gin.Context) {
	var in services.StaffInput
	if !BindJSONOrError(c, &in) {
		return
	}
	st, err := staffService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func UpdateStaff(c *gin.Context) {
	var in services.StaffInput
	if !BindJSONOrError(c, &in) {
		return
	}
	st, err := staffService(c).Update(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func DeleteStaff(c *gin.Context) {
	if err := staffService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "colaborador removido"})
}
