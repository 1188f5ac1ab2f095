package utils

import "testing"

func TestParseSettingsClampsMaxGuests(t *testing.T) {
	s, err := ParseSettings([]byte(`{"max_guests_per_invite": 0}`))
	if err != nil {
		t.Fatalf("ParseSettings() error = %v", err)
	}
	if s.MaxGuestsPerInvite.Value == nil || *s.MaxGuestsPerInvite.Value != 1 {
		t.Errorf("max debe quedar en 1, got %v", s.MaxGuestsPerInvite.Value)
	}
}

func TestParseSettingsEmpty(t *testing.T) {
	s, err := ParseSettings(nil)
	if err != nil {
		t.Fatalf("ParseSettings(nil) error = %v", err)
	}
	if s.AllowPlusOnes != nil || s.MaxGuestsPerInvite.Set {
		t.Errorf("settings vacíos deben quedar sin set: %+v", s)
	}

	if _, err := ParseSettings([]byte(`{invalid`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestMergeSettings(t *testing.T) {
	yes := true
	base := &EventSettings{AllowPlusOnes: &yes, MessageTemplate: "hola {nombre}"}

	five := 5
	patch := &EventSettings{}
	patch.MaxGuestsPerInvite.Set = true
	patch.MaxGuestsPerInvite.Value = &five

	out := MergeSettings(base, patch)
	if out.AllowPlusOnes == nil || !*out.AllowPlusOnes {
		t.Errorf("base AllowPlusOnes se perdió")
	}
	if out.MaxGuestsPerInvite.Value == nil || *out.MaxGuestsPerInvite.Value != 5 {
		t.Errorf("patch no aplicado: %v", out.MaxGuestsPerInvite.Value)
	}
	if out.MessageTemplate != "hola {nombre}" {
		t.Errorf("template se perdió: %q", out.MessageTemplate)
	}

	// un null explícito de max_guests también sobrescribe
	patch2 := &EventSettings{}
	patch2.MaxGuestsPerInvite.Set = true
	out2 := MergeSettings(out, patch2)
	if out2.MaxGuestsPerInvite.Value != nil {
		t.Errorf("null debía limpiar el límite, got %v", out2.MaxGuestsPerInvite.Value)
	}
}
