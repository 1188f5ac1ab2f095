package utils

import (
	"encoding/json"
	"errors"
)

type NullableInt struct {
	Set   bool
	Value *int
}

func (n *NullableInt) UnmarshalJSON(data []byte) error {
	n.Set = true
	// null
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// EventSettings son las reglas de RSVP del evento.
type EventSettings struct {
	AllowPlusOnes      *bool       `json:"allow_plus_ones,omitempty"`
	MaxGuestsPerInvite NullableInt `json:"max_guests_per_invite,omitempty"` // nil = sin límite
	RequireEmail       *bool       `json:"require_email,omitempty"`
	RequirePhone       *bool       `json:"require_phone,omitempty"`
	Deadline           *int64      `json:"deadline,omitempty"` // unix seconds; después de esto no se aceptan RSVP
	MessageTemplate    string      `json:"message_template,omitempty"`
}

// ValidateSettings con clamp para MaxGuestsPerInvite
func ValidateSettings(s *EventSettings) error {
	if s == nil {
		return errors.New("settings vacío")
	}
	if s.MaxGuestsPerInvite.Set && s.MaxGuestsPerInvite.Value != nil {
		if *s.MaxGuestsPerInvite.Value < 1 {
			v := 1
			s.MaxGuestsPerInvite.Value = &v
		}
	}
	return nil
}

func ParseSettings(raw []byte) (*EventSettings, error) {
	if len(raw) == 0 {
		return &EventSettings{}, nil
	}
	var s EventSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.New("settings no es JSON válido")
	}
	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func MergeSettings(base *EventSettings, patch *EventSettings) *EventSettings {
	if base == nil {
		base = &EventSettings{}
	}
	if patch == nil {
		patch = &EventSettings{}
	}
	out := *base

	// Si el cliente mandó max_guests_per_invite (número o null) se sobrescribe
	if patch.MaxGuestsPerInvite.Set {
		out.MaxGuestsPerInvite = patch.MaxGuestsPerInvite
	}
	if patch.AllowPlusOnes != nil {
		out.AllowPlusOnes = patch.AllowPlusOnes
	}
	if patch.RequireEmail != nil {
		out.RequireEmail = patch.RequireEmail
	}
	if patch.RequirePhone != nil {
		out.RequirePhone = patch.RequirePhone
	}
	if patch.Deadline != nil {
		out.Deadline = patch.Deadline
	}
	if patch.MessageTemplate != "" {
		out.MessageTemplate = patch.MessageTemplate
	}
	return &out
}

func SettingsJSON(s *EventSettings) (string, error) {
	if s == nil {
		s = &EventSettings{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
