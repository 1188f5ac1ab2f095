package utils

import (
	"testing"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

func TestMapResponseStatus(t *testing.T) {
	cases := []struct {
		response string
		status   string
		ok       bool
	}{
		{"yes", models.GuestStatusConfirmed, true},
		{"no", models.GuestStatusDeclined, true},
		{"maybe", models.GuestStatusPending, true},
		{"", "", false},
		{"si", "", false},
	}
	for _, c := range cases {
		got, ok := MapResponseStatus(c.response)
		if got != c.status || ok != c.ok {
			t.Errorf("MapResponseStatus(%q) = (%q, %v), want (%q, %v)", c.response, got, ok, c.status, c.ok)
		}
	}
}

func TestStatusLabelAcceptsLegacyMaybe(t *testing.T) {
	if got := StatusLabel(models.GuestStatusMaybe); got != "Tal vez" {
		t.Errorf("StatusLabel(maybe) = %q", got)
	}
	if got := StatusLabel("otracosa"); got != "Pendiente" {
		t.Errorf("unknown status should fall back to Pendiente, got %q", got)
	}
}
