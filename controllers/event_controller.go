package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

type createEventReq struct {
	Title          string          `json:"title" binding:"required,min=1"`
	Description    string          `json:"description"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Location       string          `json:"location"`
	WhatsappNumber *string         `json:"whatsapp_number"`
	TemplateID     *uint           `json:"template_id"`
	Settings       json.RawMessage `json:"settings"` // JSON opcional (se guarda TEXT)
	Blocks         json.RawMessage `json:"blocks"`   // JSON opcional (se guarda TEXT)
}

func CreateEvent(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	// Validar JSON libre antes de guardarlo
	if len(req.Settings) > 0 {
		if _, err := utils.ParseSettings(req.Settings); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
	}
	if len(req.Blocks) > 0 {
		if _, err := utils.ParseBlocks(req.Blocks); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
	}

	ev := models.Event{
		UserID:         u.ID,
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Location:       req.Location,
		WhatsappNumber: req.WhatsappNumber,
		TemplateID:     req.TemplateID,
	}
	if len(req.Settings) > 0 {
		ev.SettingsJSON = string(req.Settings)
	}
	if len(req.Blocks) > 0 {
		ev.BlocksJSON = string(req.Blocks)
	} else {
		b, _ := json.Marshal(utils.DefaultBlocks())
		ev.BlocksJSON = string(b)
	}

	if err := config.DB.Create(&ev).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo crear el evento"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         ev.ID,
		"title":      ev.Title,
		"date":       ev.Date,
		"created_at": ev.CreatedAt,
	})
}

func ListEvents(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var events []models.Event
	if err := config.DB.Where("user_id = ?", u.ID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los eventos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": events})
}

func GetEventDetail(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var settings, blocks interface{}
	if ev.SettingsJSON != "" {
		_ = json.Unmarshal([]byte(ev.SettingsJSON), &settings)
	}
	if ev.BlocksJSON != "" {
		_ = json.Unmarshal([]byte(ev.BlocksJSON), &blocks)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              ev.ID,
		"title":           ev.Title,
		"description":     ev.Description,
		"date":            ev.Date,
		"time":            ev.Time,
		"location":        ev.Location,
		"whatsapp_number": ev.WhatsappNumber,
		"public_url":      ev.PublicURL,
		"settings":        settings,
		"blocks":          blocks,
		"created_at":      ev.CreatedAt,
		"updated_at":      ev.UpdatedAt,
	})
}

type updateEventReq struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Date           *string          `json:"date"`
	Time           *string          `json:"time"`
	Location       *string          `json:"location"`
	WhatsappNumber *string          `json:"whatsapp_number"`
	Settings       *json.RawMessage `json:"settings"`
	Blocks         *json.RawMessage `json:"blocks"`
}

func UpdateEvent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req updateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.WhatsappNumber != nil {
		updates["whatsapp_number"] = *req.WhatsappNumber
	}
	if req.Settings != nil {
		// merge sobre lo existente, no reemplazo ciego
		base, err := utils.ParseSettings([]byte(ev.SettingsJSON))
		if err != nil {
			base = &utils.EventSettings{}
		}
		patch, err := utils.ParseSettings(*req.Settings)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		merged, err := utils.SettingsJSON(utils.MergeSettings(base, patch))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron guardar los settings"})
			return
		}
		updates["settings_json"] = merged
	}
	if req.Blocks != nil {
		if _, err := utils.ParseBlocks(*req.Blocks); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		updates["blocks_json"] = string(*req.Blocks)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No hay nada que actualizar"})
		return
	}

	if err := config.DB.Model(&models.Event{}).
		Where("id = ?", ev.ID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo actualizar el evento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DeleteEvent borra el evento con sus invitados y confirmaciones en una sola
// transacción.
func DeleteEvent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", ev.ID).Delete(&models.Confirmation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", ev.ID).Delete(&models.Guest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, ev.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo eliminar el evento"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// ShareEvent genera el public_url una sola vez; si ya existe se devuelve el
// mismo, nunca se regenera.
func ShareEvent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	if ev.PublicURL != nil && *ev.PublicURL != "" {
		c.JSON(http.StatusOK, gin.H{"public_url": *ev.PublicURL})
		return
	}

	token := uuid.NewString()
	if err := config.DB.Model(&models.Event{}).
		Where("id = ? AND public_url IS NULL", ev.ID).
		Update("public_url", token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo generar el enlace"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"public_url": token})
}

// GetPublicEvent es la página pública de invitación: datos básicos del evento
// más la secuencia de bloques ya resuelta.
func GetPublicEvent(c *gin.Context) {
	publicURL := c.Param("publicURL")

	var ev models.Event
	err := config.DB.Where("public_url = ?", publicURL).First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La invitación no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo cargar la invitación"})
		return
	}

	blocks, err := utils.ParseBlocks([]byte(ev.BlocksJSON))
	if err != nil {
		blocks = &utils.EventBlocks{}
	}
	settings, err := utils.ParseSettings([]byte(ev.SettingsJSON))
	if err != nil {
		settings = &utils.EventSettings{}
	}

	c.JSON(http.StatusOK, gin.H{
		"event": gin.H{
			"id":          ev.ID,
			"title":       ev.Title,
			"description": ev.Description,
			"date":        ev.Date,
			"time":        ev.Time,
			"location":    ev.Location,
		},
		"blocks":   utils.ResolveBlocks(blocks),
		"settings": settings,
	})
}
