package legacy

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes cuelga el prototipo bajo /api/legacy (gestión) y
// /api/invitation (página pública + RSVP).
func RegisterRoutes(api *gin.RouterGroup, s *Store, auth gin.HandlerFunc) {
	lg := api.Group("/legacy")
	lg.Use(auth)
	{
		lg.GET("/templates", s.handleListTemplates)
		lg.GET("/invitations", s.handleListInvitations)
		lg.POST("/invitations", s.handleCreateInvitation)
		lg.GET("/invitations/:id", s.handleGetInvitation)
		lg.PUT("/invitations/:id", s.handleUpdateInvitation)
		lg.DELETE("/invitations/:id", s.handleDeleteInvitation)
		lg.GET("/invitations/:id/responses", s.handleListResponses)
	}

	api.GET("/invitation/:id", s.handlePublicInvitation)
	api.POST("/invitation/:id/rsvp", s.handlePublicRSVP)
}

func (s *Store) handleListTemplates(c *gin.Context) {
	templates, err := s.ListTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar las plantillas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": templates})
}

func (s *Store) handleListInvitations(c *gin.Context) {
	invitations, err := s.ListInvitations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar los borradores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invitations})
}

type invitationReq struct {
	Title   string `json:"title" binding:"required,min=1"`
	Styles  string `json:"styles"`
	Content string `json:"content"`
	Gallery string `json:"gallery"`
}

func (s *Store) handleCreateInvitation(c *gin.Context) {
	var req invitationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	inv := Invitation{
		Title:       req.Title,
		StylesJSON:  req.Styles,
		ContentJSON: req.Content,
		GalleryJSON: req.Gallery,
	}
	if err := s.CreateInvitation(&inv); err != nil {
		s.log.Error().Err(err).Msg("create invitation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar el borrador"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

func (s *Store) handleGetInvitation(c *gin.Context) {
	inv, err := s.GetInvitation(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "El borrador no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el borrador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Store) handleUpdateInvitation(c *gin.Context) {
	inv, err := s.GetInvitation(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "El borrador no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo leer el borrador"})
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Styles  *string `json:"styles"`
		Content *string `json:"content"`
		Gallery *string `json:"gallery"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido"})
		return
	}

	if req.Title != nil {
		inv.Title = *req.Title
	}
	if req.Styles != nil {
		inv.StylesJSON = *req.Styles
	}
	if req.Content != nil {
		inv.ContentJSON = *req.Content
	}
	if req.Gallery != nil {
		inv.GalleryJSON = *req.Gallery
	}

	if err := s.UpdateInvitation(inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo actualizar el borrador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

func (s *Store) handleDeleteInvitation(c *gin.Context) {
	err := s.DeleteInvitation(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "El borrador no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo eliminar el borrador"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (s *Store) handleListResponses(c *gin.Context) {
	responses, err := s.ListResponses(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudieron cargar las respuestas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": responses})
}

func (s *Store) handlePublicInvitation(c *gin.Context) {
	inv, err := s.GetInvitation(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La invitación no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo cargar la invitación"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inv})
}

type legacyRSVPReq struct {
	Name       string `json:"name" binding:"required,min=1"`
	Attending  *bool  `json:"attending" binding:"required"`
	GuestCount int    `json:"guest_count"`
	Message    string `json:"message"`
}

func (s *Store) handlePublicRSVP(c *gin.Context) {
	inv, err := s.GetInvitation(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "La invitación no existe"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo cargar la invitación"})
		return
	}

	var req legacyRSVPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Payload inválido", "error": err.Error()})
		return
	}

	r := Response{
		InvitationID: inv.ID,
		Name:         req.Name,
		Attending:    *req.Attending,
		GuestCount:   req.GuestCount,
		Message:      req.Message,
	}
	if err := s.CreateResponse(&r); err != nil {
		s.log.Error().Err(err).Msg("create response failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar tu respuesta, intenta de nuevo"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": r})
}
