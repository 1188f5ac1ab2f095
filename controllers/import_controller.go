package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

// ImportGuests recibe un CSV con columnas en español o inglés, muestra el
// preview por fila y solo inserta el subconjunto válido. El insert es un solo
// bulk: si falla, no entra ninguna fila.
func ImportGuests(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se recibió el archivo"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se pudo abrir el archivo"})
		return
	}
	defer f.Close()

	rows, err := utils.ParseGuestCSV(f)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "CSV inválido", "error": err.Error()})
		return
	}

	valid, invalid := 0, 0
	guests := make([]models.Guest, 0, len(rows))
	for _, r := range rows {
		if !r.Valid {
			invalid++
			continue
		}
		valid++
		guests = append(guests, models.Guest{
			EventID:             ev.ID,
			Name:                r.Guest.Name,
			Email:               r.Guest.Email,
			Phone:               &r.Guest.Phone,
			Status:              models.GuestStatusPending,
			GuestCount:          r.Guest.GuestCount,
			Message:             r.Guest.Message,
			DietaryRestrictions: r.Guest.DietaryRestrictions,
		})
	}

	if c.Query("dry_run") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"rows":    rows,
			"valid":   valid,
			"invalid": invalid,
		})
		return
	}

	if len(guests) > 0 {
		if err := config.DB.Create(&guests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron importar los invitados"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"rows":     rows,
		"valid":    valid,
		"invalid":  invalid,
		"imported": len(guests),
	})
}
