package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

func loadGuest(c *gin.Context, ev models.Event) (models.Guest, bool) {
	gid, err := strconv.Atoi(c.Param("guestID"))
	if err != nil || gid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID de invitado inválido"})
		return models.Guest{}, false
	}
	var g models.Guest
	e := config.DB.Where("id = ? AND event_id = ?", gid, ev.ID).First(&g).Error
	if errors.Is(e, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "El invitado no existe"})
		return models.Guest{}, false
	}
	if e != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el invitado"})
		return models.Guest{}, false
	}
	return g, true
}

func ListGuests(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	q := config.DB.Where("event_id = ?", ev.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var guests []models.Guest
	if err := q.Order("created_at DESC").Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los invitados"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  guests,
		"stats": utils.ComputeStats(guests),
	})
}

type addGuestReq struct {
	Name                string  `json:"name" binding:"required,min=1"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	GuestCount          int     `json:"guest_count"`
	Message             string  `json:"message"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
}

// AddGuest es el alta manual del organizador; siempre entra como pending.
func AddGuest(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req addGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	if req.GuestCount < 1 {
		req.GuestCount = 1
	}
	if req.Phone != nil && *req.Phone != "" {
		normalized := utils.NormalizePhone(*req.Phone)
		req.Phone = &normalized
	}

	g := models.Guest{
		EventID:             ev.ID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		Status:              models.GuestStatusPending,
		GuestCount:          req.GuestCount,
		Message:             req.Message,
		DietaryRestrictions: req.DietaryRestrictions,
	}
	if err := config.DB.Create(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar el invitado"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": g})
}

type updateGuestReq struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Status              *string `json:"status"`
	GuestCount          *int    `json:"guest_count"`
	Message             *string `json:"message"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
}

func UpdateGuest(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)
	g, ok := loadGuest(c, ev)
	if !ok {
		return
	}

	var req updateGuestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "El nombre no puede quedar vacío"})
			return
		}
		g.Name = *req.Name
	}
	if req.Email != nil {
		g.Email = req.Email
	}
	if req.Phone != nil {
		normalized := utils.NormalizePhone(*req.Phone)
		g.Phone = &normalized
	}
	if req.Status != nil {
		switch *req.Status {
		case models.GuestStatusPending, models.GuestStatusConfirmed, models.GuestStatusDeclined:
			g.Status = *req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status inválido"})
			return
		}
	}
	if req.GuestCount != nil {
		if *req.GuestCount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "guest_count debe ser al menos 1"})
			return
		}
		g.GuestCount = *req.GuestCount
	}
	if req.Message != nil {
		g.Message = *req.Message
	}
	if req.DietaryRestrictions != nil {
		g.DietaryRestrictions = *req.DietaryRestrictions
	}

	if err := config.DB.Save(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo actualizar el invitado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": g})
}

func DeleteGuest(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)
	g, ok := loadGuest(c, ev)
	if !ok {
		return
	}

	if err := config.DB.Delete(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo eliminar el invitado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// MarkWhatsappSent deja constancia de que el organizador ya abrió el link de
// WhatsApp para este invitado.
func MarkWhatsappSent(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)
	g, ok := loadGuest(c, ev)
	if !ok {
		return
	}

	if err := config.DB.Model(&g).Update("whatsapp_sent", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo marcar el envío"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}
