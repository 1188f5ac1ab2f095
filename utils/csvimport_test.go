package utils

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3001234567", "+573001234567"},
		{"+573001234567", "+573001234567"},
		{"573001234567", "+573001234567"},
		{"300 123 4567", "+573001234567"},
		{"(300) 123-4567", "+573001234567"},
		{"+1 212 555 0199", "+12125550199"},
		{"12125550199", "+12125550199"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseGuestCSVSpanishHeaders(t *testing.T) {
	csvData := "nombre,telefono,correo,invitados,mensaje\nJuan,3001234567,juan@mail.com,3,Hola\n"
	rows, err := ParseGuestCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGuestCSV() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	r := rows[0]
	if !r.Valid {
		t.Fatalf("row should be valid, errors = %v", r.Errors)
	}
	if r.Guest.Name != "Juan" {
		t.Errorf("Name = %q", r.Guest.Name)
	}
	if r.Guest.Phone != "+573001234567" {
		t.Errorf("Phone = %q, want +573001234567", r.Guest.Phone)
	}
	if r.Guest.Email == nil || *r.Guest.Email != "juan@mail.com" {
		t.Errorf("Email = %v", r.Guest.Email)
	}
	if r.Guest.GuestCount != 3 {
		t.Errorf("GuestCount = %d, want 3", r.Guest.GuestCount)
	}
	if r.Guest.Message != "Hola" {
		t.Errorf("Message = %q", r.Guest.Message)
	}
}

func TestParseGuestCSVEnglishHeaders(t *testing.T) {
	csvData := "Name,WhatsApp,guest_count\nAna,573001234567,\n"
	rows, err := ParseGuestCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGuestCSV() error = %v", err)
	}
	r := rows[0]
	if !r.Valid {
		t.Fatalf("row should be valid, errors = %v", r.Errors)
	}
	if r.Guest.Phone != "+573001234567" {
		t.Errorf("Phone = %q", r.Guest.Phone)
	}
	if r.Guest.GuestCount != 1 {
		t.Errorf("GuestCount vacío debe ser 1, got %d", r.Guest.GuestCount)
	}
}

func TestParseGuestCSVAccentedHeader(t *testing.T) {
	// el export propio usa "Teléfono"; la reimportación debe reconocerlo
	csvData := "Nombre,Teléfono\nAna,3001234567\n"
	rows, err := ParseGuestCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGuestCSV() error = %v", err)
	}
	if !rows[0].Valid {
		t.Fatalf("row should be valid, errors = %v", rows[0].Errors)
	}
}

func TestParseGuestCSVInvalidRows(t *testing.T) {
	csvData := "nombre,telefono\nJuan,3001234567\n,300\nSinTelefono,\n"
	rows, err := ParseGuestCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseGuestCSV() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	if !rows[0].Valid {
		t.Errorf("row 0 should be valid")
	}

	if rows[1].Valid {
		t.Errorf("row 1 should be invalid")
	}
	foundName := false
	for _, e := range rows[1].Errors {
		if e == "Falta el nombre" {
			foundName = true
		}
	}
	if !foundName {
		t.Errorf("row 1 errors = %v, want missing-name reason", rows[1].Errors)
	}

	if rows[2].Valid {
		t.Errorf("row 2 should be invalid")
	}
	foundPhone := false
	for _, e := range rows[2].Errors {
		if e == "Falta el teléfono" {
			foundPhone = true
		}
	}
	if !foundPhone {
		t.Errorf("row 2 errors = %v, want missing-phone reason", rows[2].Errors)
	}

	// la fila inválida se excluye del import pero queda en el preview
	valid := 0
	for _, r := range rows {
		if r.Valid {
			valid++
		}
	}
	if valid != 1 {
		t.Errorf("valid rows = %d, want 1", valid)
	}
}

func TestParseGuestCSVNoRecognizedColumns(t *testing.T) {
	if _, err := ParseGuestCSV(strings.NewReader("foo,bar\n1,2\n")); err == nil {
		t.Error("expected error for unrecognized columns")
	}
	if _, err := ParseGuestCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty file")
	}
}
