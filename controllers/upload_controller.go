package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

// UploadFile sube una imagen (hero, galería) a Supabase Storage y devuelve la
// URL pública para usarla en los bloques.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No se recibió el archivo"})
		return
	}

	fileID := fmt.Sprintf("%d", time.Now().UnixNano())
	folder := c.DefaultPostForm("folder", "")

	publicURL, err := utils.UploadToSupabase(fileHeader, fileID, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo subir el archivo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Archivo subido",
		"url":     publicURL,
	})
}
