package utils

import (
	"strings"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

// DefaultMessageTemplate se usa cuando el evento no tiene plantilla propia.
const DefaultMessageTemplate = "¡Hola {nombre}! 🎉\n\nEstás invitado/a a {evento} el {fecha} a las {hora} en {ubicacion}.\n\nConfirma tu asistencia aquí: {url}\n\n{anfitrion}"

// FillTemplate sustituye los placeholders {nombre}, {evento}, {fecha}, {hora},
// {ubicacion}, {anfitrion} y {url} en una plantilla editable por el usuario.
// Un solo paso: el texto insertado nunca se vuelve a sustituir.
func FillTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// TemplateVars arma las variables por invitado/evento para la plantilla.
func TemplateVars(ev models.Event, g models.Guest, host, inviteURL string) map[string]string {
	return map[string]string{
		"nombre":    g.Name,
		"evento":    ev.Title,
		"fecha":     ev.Date,
		"hora":      ev.Time,
		"ubicacion": ev.Location,
		"anfitrion": host,
		"url":       inviteURL,
	}
}

// EncodeWhatsAppText escapa solo los caracteres con significado en un query
// value de URL; codificar todo el texto rompería los emoji de la plantilla.
// El % va primero para no doble-escapar el resto.
func EncodeWhatsAppText(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "&", "%26")
	s = strings.ReplaceAll(s, "=", "%3D")
	s = strings.ReplaceAll(s, "?", "%3F")
	s = strings.ReplaceAll(s, "#", "%23")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "%0A")
	s = strings.ReplaceAll(s, "+", "%2B")
	return s
}

// BuildWhatsAppLink construye el deep link wa.me. El teléfono debe venir ya
// normalizado; aquí solo se dejan los dígitos.
func BuildWhatsAppLink(phone, message string) string {
	digits := DigitsOnly(phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + EncodeWhatsAppText(message)
}
