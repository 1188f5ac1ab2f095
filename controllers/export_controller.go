package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/LinamariaMartinez/eventMaster-sub000/config"
	"github.com/LinamariaMartinez/eventMaster-sub000/middleware"
	"github.com/LinamariaMartinez/eventMaster-sub000/models"
	"github.com/LinamariaMartinez/eventMaster-sub000/utils"
)

// El encabezado del export es fijo y en español; así lo esperan las planillas
// de los organizadores.
var exportHeader = []string{
	"Nombre", "Email", "Teléfono", "Estado", "Acompañantes",
	"Mensaje", "Restricciones Dietarias", "Fecha de Creación",
}

func guestExportRow(g models.Guest) []string {
	email, phone := "", ""
	if g.Email != nil {
		email = *g.Email
	}
	if g.Phone != nil {
		phone = *g.Phone
	}
	return []string{
		g.Name,
		email,
		phone,
		utils.StatusLabel(g.Status),
		fmt.Sprintf("%d", g.GuestCount),
		g.Message,
		g.DietaryRestrictions,
		g.CreatedAt.Format("2006-01-02 15:04"),
	}
}

// quotedCSVLine envuelve cada valor en comillas dobles, como el export
// original que los organizadores ya importan en sus planillas.
func quotedCSVLine(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ExportGuestsCSV descarga inmediata del listado en CSV.
func ExportGuestsCSV(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var guests []models.Guest
	if err := config.DB.Where("event_id = ?", ev.ID).
		Order("created_at ASC").
		Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los invitados"})
		return
	}

	var b strings.Builder
	b.WriteString(quotedCSVLine(exportHeader))
	b.WriteString("\n")
	for _, g := range guests {
		b.WriteString(quotedCSVLine(guestExportRow(g)))
		b.WriteString("\n")
	}

	filename := fmt.Sprintf("invitados_%d.csv", ev.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(b.String()))
}

type exportRequest struct {
	Format    string  `json:"format"`
	RangeFrom *string `json:"range_from,omitempty"`
	RangeTo   *string `json:"range_to,omitempty"`
}

// POST /api/events/:id/export
func CreateExport(c *gin.Context) {
	ev := c.MustGet(middleware.CtxEvent).(models.Event)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payload inválido"})
		return
	}
	if req.Format == "" {
		req.Format = "csv"
	}
	if req.Format != "csv" && req.Format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Formato no soportado (csv | xlsx)"})
		return
	}

	var fromPtr, toPtr *time.Time
	if req.RangeFrom != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeFrom); err == nil {
			fromPtr = &t
		}
	}
	if req.RangeTo != nil {
		if t, err := time.Parse(time.RFC3339, *req.RangeTo); err == nil {
			toPtr = &t
		}
	}

	jobID := uuid.New().String()
	job := models.ExportJob{
		JobID:     jobID,
		EventID:   ev.ID,
		Format:    req.Format,
		RangeFrom: fromPtr,
		RangeTo:   toPtr,
		Status:    "queued",
	}
	config.DB.Create(&job)

	go processExportJob(jobID)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": jobID,
		"status": "queued",
	})
}

// GET /api/exports/:job_id
func GetExport(c *gin.Context) {
	jobID := c.Param("job_id")
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error de base de datos"})
		return
	}

	if job.Status == "done" && job.FilePath != nil {
		c.FileAttachment(*job.FilePath, path.Base(*job.FilePath))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.JobID,
		"status": job.Status,
		"error":  job.ErrorMsg,
	})
}

func failExportJob(job *models.ExportJob, err error) {
	em := err.Error()
	config.DB.Model(job).Updates(map[string]interface{}{"status": "failed", "error_msg": em})
}

// generación del archivo de export en segundo plano
func processExportJob(jobID string) {
	var job models.ExportJob
	if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
		return
	}
	config.DB.Model(&job).Update("status", "processing")

	outDir := "./exports"
	os.MkdirAll(outDir, 0755)

	q := config.DB.Where("event_id = ?", job.EventID)
	if job.RangeFrom != nil {
		q = q.Where("created_at >= ?", job.RangeFrom)
	}
	if job.RangeTo != nil {
		q = q.Where("created_at <= ?", job.RangeTo)
	}

	var guests []models.Guest
	if err := q.Order("created_at ASC").Find(&guests).Error; err != nil {
		failExportJob(&job, err)
		return
	}

	filename := fmt.Sprintf("export_%s.%s", job.JobID, job.Format)
	outPath := path.Join(outDir, filename)

	var err error
	if job.Format == "xlsx" {
		err = writeGuestsXLSX(outPath, guests)
	} else {
		err = writeGuestsCSV(outPath, guests)
	}
	if err != nil {
		failExportJob(&job, err)
		return
	}

	fp := outPath
	config.DB.Model(&job).Updates(map[string]interface{}{"status": "done", "file_path": fp})
}

func writeGuestsCSV(outPath string, guests []models.Guest) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(quotedCSVLine(exportHeader) + "\n"); err != nil {
		return err
	}
	for _, g := range guests {
		if _, err := f.WriteString(quotedCSVLine(guestExportRow(g)) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeGuestsXLSX(outPath string, guests []models.Guest) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invitados"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, g := range guests {
		row := guestExportRow(g)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(outPath)
}
