package utils

import "strings"

// DigitsOnly deja solo los dígitos de un número.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone lleva un teléfono al formato con indicativo de Colombia.
// El orden de las ramas importa y los links de WhatsApp dependen de esta
// forma exacta, no cambiar por una validación E.164 genérica.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	digits := DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "57") {
		return "+" + digits
	}
	if len(digits) == 10 {
		return "+57" + digits
	}
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return "+" + digits
}
