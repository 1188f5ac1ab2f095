package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

// GetDashboard recalcula las estadísticas sobre todos los eventos del usuario.
// Siempre se deriva de las filas actuales; no hay caché ni acumuladores.
func GetDashboard(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var events []models.Event
	if err := config.DB.Where("user_id = ?", u.ID).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los eventos"})
		return
	}

	eventIDs := make([]uint, 0, len(events))
	for _, ev := range events {
		eventIDs = append(eventIDs, ev.ID)
	}

	var guests []models.Guest
	if len(eventIDs) > 0 {
		if err := config.DB.Where("event_id IN ?", eventIDs).Find(&guests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los invitados"})
			return
		}
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":             utils.ComputeStats(guests),
		"response_rate":     utils.ResponseRate(guests),
		"confirmation_rate": utils.ConfirmationRate(guests),
		"events":            utils.ComputeEventPerformance(events, guests),
		"trend":             utils.ComputeTrend(guests, months),
	})
}

// GetEventStats: mismas métricas pero de un solo evento.
func GetEventStats(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var guests []models.Guest
	if err := config.DB.Where("event_id = ?", ev.ID).Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los invitados"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":             utils.ComputeStats(guests),
		"response_rate":     utils.ResponseRate(guests),
		"confirmation_rate": utils.ConfirmationRate(guests),
	})
}
