package utils

import "github.com/LinamariaMartinez/eventMaster-sub000/models"

// MapResponseStatus traduce la respuesta cruda del formulario al status
// canónico del invitado: yes→confirmed, no→declined, maybe→pending.
func MapResponseStatus(response string) (string, bool) {
	switch response {
	case models.ResponseYes:
		return models.GuestStatusConfirmed, true
	case models.ResponseNo:
		return models.GuestStatusDeclined, true
	case models.ResponseMaybe:
		return models.GuestStatusPending, true
	}
	return "", false
}

// StatusLabel devuelve la etiqueta en español para mostrar un status.
// Acepta también el valor legado "maybe" que ya no produce ninguna escritura.
func StatusLabel(status string) string {
	switch status {
	case models.GuestStatusConfirmed:
		return "Confirmado"
	case models.GuestStatusDeclined:
		return "No asiste"
	case models.GuestStatusMaybe:
		return "Tal vez"
	default:
		return "Pendiente"
	}
}
