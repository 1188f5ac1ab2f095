package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

// CheckEventOwner carga el evento al contexto y verifica que el usuario
// autenticado sea su dueño.
func CheckEventOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := c.MustGet(CtxUser).(models.User)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
			return
		}

		var ev models.Event
		if e := config.DB.First(&ev, id).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "El evento no existe"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el evento"})
			return
		}

		if ev.UserID != u.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "No tienes permiso sobre este evento"})
			return
		}

		c.Set(CtxEvent, ev)
		c.Next()
	}
}
