package utils

import (
	"strings"
	"testing"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

func TestFillTemplate(t *testing.T) {
	got := FillTemplate("Hola {nombre}, evento {evento}", map[string]string{
		"nombre": "Ana",
		"evento": "Boda",
	})
	if got != "Hola Ana, evento Boda" {
		t.Errorf("FillTemplate = %q", got)
	}
}

func TestFillTemplateDoesNotResubstitute(t *testing.T) {
	// un valor que contiene otro placeholder no debe volver a expandirse
	got := FillTemplate("{nombre} va a {evento}", map[string]string{
		"nombre": "{evento}",
		"evento": "Boda",
	})
	if got != "{evento} va a Boda" {
		t.Errorf("FillTemplate = %q", got)
	}
}

func TestTemplateVars(t *testing.T) {
	ev := models.Event{Title: "Boda", Date: "2025-06-01", Time: "18:00", Location: "Cali"}
	g := models.Guest{Name: "Ana"}
	vars := TemplateVars(ev, g, "Lina", "https://example.com/invite/abc")
	if vars["nombre"] != "Ana" || vars["evento"] != "Boda" || vars["anfitrion"] != "Lina" {
		t.Errorf("vars = %v", vars)
	}
}

func TestEncodeWhatsAppText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hola mundo", "hola mundo"},
		{"a&b=c?d#e", "a%26b%3Dc%3Fd%23e"},
		{"linea1\nlinea2", "linea1%0Alinea2"},
		{"linea1\r\nlinea2", "linea1%0Alinea2"},
		{"2+2", "2%2B2"},
		{"🎉 fiesta", "🎉 fiesta"}, // los emoji pasan sin tocar
	}
	for _, c := range cases {
		if got := EncodeWhatsAppText(c.in); got != c.want {
			t.Errorf("EncodeWhatsAppText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeWhatsAppTextPercentFirst(t *testing.T) {
	// un % literal en el nombre se escapa a %25 sin corromper lo que sigue
	msg := FillTemplate("Hola {nombre}, evento {evento}", map[string]string{
		"nombre": "Ana 100%",
		"evento": "Boda & Fiesta",
	})
	got := EncodeWhatsAppText(msg)
	want := "Hola Ana 100%25, evento Boda %26 Fiesta"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if strings.Contains(got, "%2525") {
		t.Errorf("double-escaped percent: %q", got)
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	got := BuildWhatsAppLink("+573001234567", "Hola Ana")
	want := "https://wa.me/573001234567?text=Hola Ana"
	if got != want {
		t.Errorf("BuildWhatsAppLink = %q, want %q", got, want)
	}

	if got := BuildWhatsAppLink("", "Hola"); got != "" {
		t.Errorf("sin teléfono debe ser vacío, got %q", got)
	}
}
