package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

type rsvpReq struct {
	Name                string  `json:"name" binding:"required,min=1"`
	Response            string  `json:"response" binding:"required"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	GuestCount          int     `json:"guest_count"`
	Message             string  `json:"message"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
	AdditionalNotes     string  `json:"additional_notes"`
}

func loadPublicEvent(c *gin.Context) (models.Event, bool) {
	var ev models.Event
	err := config.DB.Where("public_url = ?", c.Param("publicURL")).First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La invitación no existe"})
		return ev, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo cargar la invitación"})
		return ev, false
	}
	return ev, true
}

// buildGuestFromRSVP valida la respuesta contra las reglas del evento y arma
// la fila de Guest. Toda validación pasa antes de cualquier escritura.
func buildGuestFromRSVP(c *gin.Context, ev models.Event, req *rsvpReq) (models.Guest, bool) {
	status, ok := utils.MapResponseStatus(req.Response)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "La respuesta debe ser yes, no o maybe"})
		return models.Guest{}, false
	}

	settings, err := utils.ParseSettings([]byte(ev.SettingsJSON))
	if err != nil {
		settings = &utils.EventSettings{}
	}

	if settings.Deadline != nil && time.Now().Unix() > *settings.Deadline {
		c.JSON(http.StatusForbidden, gin.H{"message": "El plazo para confirmar ya cerró"})
		return models.Guest{}, false
	}

	if settings.RequireEmail != nil && *settings.RequireEmail {
		if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El email es obligatorio para este evento"})
			return models.Guest{}, false
		}
	}
	if settings.RequirePhone != nil && *settings.RequirePhone {
		if req.Phone == nil || strings.TrimSpace(*req.Phone) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El teléfono es obligatorio para este evento"})
			return models.Guest{}, false
		}
	}

	// guest_count solo aplica cuando la respuesta es yes y hay acompañantes
	count := 1
	plusOnes := settings.AllowPlusOnes != nil && *settings.AllowPlusOnes
	if req.Response == models.ResponseYes && plusOnes && req.GuestCount > 1 {
		max := 0
		if settings.MaxGuestsPerInvite.Set && settings.MaxGuestsPerInvite.Value != nil {
			max = *settings.MaxGuestsPerInvite.Value
		}
		if max > 0 && req.GuestCount > max {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El número de acompañantes supera el máximo permitido"})
			return models.Guest{}, false
		}
		count = req.GuestCount
	}

	if req.Phone != nil && *req.Phone != "" {
		normalized := utils.NormalizePhone(*req.Phone)
		req.Phone = &normalized
	}

	return models.Guest{
		EventID:             ev.ID,
		Name:                strings.TrimSpace(req.Name),
		Email:               req.Email,
		Phone:               req.Phone,
		Status:              status,
		GuestCount:          count,
		Message:             req.Message,
		DietaryRestrictions: req.DietaryRestrictions,
	}, true
}

// SubmitRSVP es el formulario público estándar: una transición unsubmitted →
// submitted que crea una fila nueva de Guest. Una segunda respuesta del mismo
// invitado crea otra fila; no hay upsert por identidad.
func SubmitRSVP(c *gin.Context) {
	ev, ok := loadPublicEvent(c)
	if !ok {
		return
	}

	var req rsvpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	guest, ok := buildGuestFromRSVP(c, ev, &req)
	if !ok {
		return
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar tu confirmación, intenta de nuevo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Gracias por responder!",
		"status":  guest.Status,
	})
}

// SubmitConfirmation es la variante del formulario de bloques: además del
// Guest escribe una Confirmation con la respuesta cruda, y si la respuesta es
// yes dispara el sync a Google Sheets en mejor esfuerzo.
func SubmitConfirmation(c *gin.Context) {
	ev, ok := loadPublicEvent(c)
	if !ok {
		return
	}

	var req rsvpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	guest, ok := buildGuestFromRSVP(c, ev, &req)
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&guest).Error; err != nil {
			return err
		}
		conf := models.Confirmation{
			EventID:             ev.ID,
			GuestID:             guest.ID,
			Name:                guest.Name,
			Email:               guest.Email,
			Phone:               guest.Phone,
			Response:            req.Response,
			GuestCount:          guest.GuestCount,
			DietaryRestrictions: req.DietaryRestrictions,
			AdditionalNotes:     req.AdditionalNotes,
		}
		return tx.Create(&conf).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar tu confirmación, intenta de nuevo"})
		return
	}

	if req.Response == models.ResponseYes {
		utils.DispatchGuestSync(ev, guest)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Gracias por responder!",
		"status":  guest.Status,
	})
}
