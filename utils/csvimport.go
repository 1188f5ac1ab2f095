package utils

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// GuestCandidate es una fila de CSV ya resuelta a la forma canónica de Guest.
type GuestCandidate struct {
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Email               *string `json:"email"`
	GuestCount          int     `json:"guest_count"`
	Message             string  `json:"message"`
	DietaryRestrictions string  `json:"dietary_restrictions"`
}

type ImportRow struct {
	Index  int            `json:"index"`
	Guest  GuestCandidate `json:"guest"`
	Valid  bool           `json:"valid"`
	Errors []string       `json:"errors"`
}

// Alias de encabezados, bilingües; gana la primera coincidencia.
var csvAliases = map[string][]string{
	"name":        {"nombre", "name"},
	"phone":       {"telefono", "phone", "whatsapp"},
	"email":       {"email", "correo"},
	"guest_count": {"invitados", "guest_count", "guests"},
	"message":     {"mensaje", "message"},
	"dietary":     {"restricciones", "dietary_restrictions"},
}

var headerAccents = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")

func normalizeHeader(h string) string {
	return headerAccents.Replace(strings.ToLower(strings.TrimSpace(h)))
}

// ParseGuestCSV convierte un CSV con nombres de columna arbitrarios (español
// o inglés) en candidatos de inserción. Las filas inválidas se devuelven con
// sus errores para el preview; el caller inserta solo el subconjunto válido.
func ParseGuestCSV(r io.Reader) ([]ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("el archivo CSV está vacío")
	}

	header := records[0]
	cols := make(map[string]int, len(csvAliases))
	for field, aliases := range csvAliases {
		for _, alias := range aliases {
			found := false
			for i, h := range header {
				if normalizeHeader(h) == alias {
					cols[field] = i
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		if _, ok2 := cols["phone"]; !ok2 {
			return nil, errors.New("no se reconoció ninguna columna de nombre ni teléfono")
		}
	}

	cell := func(row []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]ImportRow, 0, len(records)-1)
	for idx, row := range records[1:] {
		ir := ImportRow{Index: idx, Errors: []string{}}

		name := cell(row, "name")
		phone := cell(row, "phone")
		if name == "" {
			ir.Errors = append(ir.Errors, "Falta el nombre")
		}
		if phone == "" {
			ir.Errors = append(ir.Errors, "Falta el teléfono")
		}

		count := 1
		if v := cell(row, "guest_count"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 1 {
				count = n
			}
		}

		ir.Guest = GuestCandidate{
			Name:                name,
			Phone:               NormalizePhone(phone),
			GuestCount:          count,
			Message:             cell(row, "message"),
			DietaryRestrictions: cell(row, "dietary"),
		}
		if email := cell(row, "email"); email != "" {
			ir.Guest.Email = &email
		}
		ir.Valid = len(ir.Errors) == 0
		out = append(out, ir)
	}
	return out, nil
}
