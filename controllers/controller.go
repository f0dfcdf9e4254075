package controllers

import (
	"net/http"

	"github.com/abdulazeespr/HungryGo/services"
	"github.com/abdulazeespr/HungryGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		ID:   c.GetString("userID"),
		Name: c.GetString("userName"),
		Role: c.GetString("userRole"),
	}
}

func uuidParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		_ = c.Error(utils.NewApiError(http.StatusBadRequest, "Invalid ID format"))
		return "", false
	}
	return id, true
}
