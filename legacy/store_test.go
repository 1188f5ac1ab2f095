package legacy

import (
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	teardown := func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	}
	return s, teardown
}

func TestTemplatesSeeded(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	templates, err := s.ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}
	if len(templates) == 0 {
		t.Fatal("expected seeded templates")
	}
}

func TestInvitationCRUD(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	inv := Invitation{Title: "Nuestra Boda"}
	if err := s.CreateInvitation(&inv); err != nil {
		t.Fatalf("CreateInvitation() error = %v", err)
	}
	if inv.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := s.GetInvitation(inv.ID)
	if err != nil {
		t.Fatalf("GetInvitation() error = %v", err)
	}
	if got.Title != "Nuestra Boda" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.StylesJSON != "{}" || got.GalleryJSON != "[]" {
		t.Errorf("defaults not applied: styles=%q gallery=%q", got.StylesJSON, got.GalleryJSON)
	}

	got.Title = "Boda 2025"
	got.ContentJSON = `{"hero":"foto.jpg"}`
	if err := s.UpdateInvitation(got); err != nil {
		t.Fatalf("UpdateInvitation() error = %v", err)
	}

	again, err := s.GetInvitation(inv.ID)
	if err != nil {
		t.Fatalf("GetInvitation() after update error = %v", err)
	}
	if again.Title != "Boda 2025" || again.ContentJSON != `{"hero":"foto.jpg"}` {
		t.Errorf("update not persisted: %+v", again)
	}

	if err := s.DeleteInvitation(inv.ID); err != nil {
		t.Fatalf("DeleteInvitation() error = %v", err)
	}
	if _, err := s.GetInvitation(inv.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUpdateMissingInvitation(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	inv := Invitation{ID: "nope", Title: "x"}
	if err := s.UpdateInvitation(&inv); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteInvitation("nope"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResponses(t *testing.T) {
	s, teardown := setupTestStore(t)
	defer teardown()

	inv := Invitation{Title: "Cumpleaños"}
	if err := s.CreateInvitation(&inv); err != nil {
		t.Fatalf("CreateInvitation() error = %v", err)
	}

	r := Response{InvitationID: inv.ID, Name: "Ana", Attending: true, GuestCount: 0, Message: "¡Voy!"}
	if err := s.CreateResponse(&r); err != nil {
		t.Fatalf("CreateResponse() error = %v", err)
	}
	if r.GuestCount != 1 {
		t.Errorf("GuestCount debe clamparse a 1, got %d", r.GuestCount)
	}

	list, err := s.ListResponses(inv.ID)
	if err != nil {
		t.Fatalf("ListResponses() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ana" || !list[0].Attending {
		t.Errorf("responses = %+v", list)
	}
}
