package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

// GetWhatsAppLink arma el mensaje desde la plantilla del evento y devuelve el
// deep link wa.me. El servidor nunca envía nada: abrir el link es cosa del
// organizador.
func GetWhatsAppLink(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)
	g, ok := loadGuest(c, ev)
	if !ok {
		return
	}

	if g.Phone == nil || utils.DigitsOnly(*g.Phone) == "" {
		c.JSON(http.StatusConflict, gin.H{"message": "El invitado no tiene teléfono"})
		return
	}

	settings, err := utils.ParseSettings([]byte(ev.SettingsJSON))
	if err != nil {
		settings = &utils.EventSettings{}
	}
	template := settings.MessageTemplate
	if template == "" {
		template = utils.DefaultMessageTemplate
	}

	host := ""
	var owner models.User
	if err := config.DB.First(&owner, ev.UserID).Error; err == nil {
		host = owner.Name
	}

	inviteURL := ""
	if ev.PublicURL != nil {
		base := os.Getenv("PUBLIC_BASE_URL")
		if base == "" {
			base = "https://eventmaster.app"
		}
		inviteURL = base + "/invite/" + *ev.PublicURL
	}

	message := utils.FillTemplate(template, utils.TemplateVars(ev, g, host, inviteURL))
	link := utils.BuildWhatsAppLink(*g.Phone, message)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"link":    link,
	})
}
