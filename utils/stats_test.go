package utils

import (
	"testing"
	"time"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

func mkGuest(eventID uint, status string, count int, created time.Time) models.Guest {
	return models.Guest{EventID: eventID, Name: "g", Status: status, GuestCount: count, CreatedAt: created}
}

func TestComputeStats(t *testing.T) {
	now := time.Now()
	guests := []models.Guest{
		mkGuest(1, models.GuestStatusConfirmed, 2, now),
		mkGuest(1, models.GuestStatusConfirmed, 1, now),
		mkGuest(1, models.GuestStatusDeclined, 1, now),
		mkGuest(1, models.GuestStatusPending, 0, now), // count inválido cuenta como 1
	}

	s := ComputeStats(guests)
	if s.Total != len(guests) {
		t.Errorf("Total = %d, want %d", s.Total, len(guests))
	}
	if s.Confirmed+s.Pending+s.Declined != s.Total {
		t.Errorf("confirmed+pending+declined = %d, want %d", s.Confirmed+s.Pending+s.Declined, s.Total)
	}
	if s.Confirmed != 2 || s.Declined != 1 || s.Pending != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.TotalPeople != 5 {
		t.Errorf("TotalPeople = %d, want 5", s.TotalPeople)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s.Total != 0 || s.Confirmed != 0 || s.Pending != 0 || s.Declined != 0 || s.TotalPeople != 0 {
		t.Errorf("empty input should be all zero, got %+v", s)
	}
}

func TestRatesZeroGuests(t *testing.T) {
	if got := ResponseRate(nil); got != 0 {
		t.Errorf("ResponseRate(nil) = %d, want 0", got)
	}
	if got := ConfirmationRate(nil); got != 0 {
		t.Errorf("ConfirmationRate(nil) = %d, want 0", got)
	}
}

func TestResponseRateRounds(t *testing.T) {
	now := time.Now()
	guests := []models.Guest{
		mkGuest(1, models.GuestStatusConfirmed, 1, now),
		mkGuest(1, models.GuestStatusPending, 1, now),
		mkGuest(1, models.GuestStatusPending, 1, now),
	}
	// 1 de 3 respondió → 33.33… → 33
	if got := ResponseRate(guests); got != 33 {
		t.Errorf("ResponseRate = %d, want 33", got)
	}
}

func TestComputeEventPerformanceSorted(t *testing.T) {
	now := time.Now()
	events := []models.Event{
		{ID: 1, Title: "Pequeño"},
		{ID: 2, Title: "Grande"},
		{ID: 3, Title: "Vacío"},
	}
	guests := []models.Guest{
		mkGuest(1, models.GuestStatusConfirmed, 1, now),
		mkGuest(2, models.GuestStatusConfirmed, 1, now),
		mkGuest(2, models.GuestStatusDeclined, 1, now),
		mkGuest(2, models.GuestStatusPending, 1, now),
	}

	perf := ComputeEventPerformance(events, guests)
	if len(perf) != 3 {
		t.Fatalf("len(perf) = %d, want 3", len(perf))
	}
	if perf[0].EventID != 2 || perf[1].EventID != 1 || perf[2].EventID != 3 {
		t.Errorf("order = [%d %d %d], want [2 1 3]", perf[0].EventID, perf[1].EventID, perf[2].EventID)
	}
	if perf[0].Confirmed != 1 || perf[0].Declined != 1 || perf[0].Pending != 1 {
		t.Errorf("event 2 counts = %+v", perf[0])
	}
	// 2 de 3 respondieron → 67
	if perf[0].ResponseRate != 67 {
		t.Errorf("event 2 response rate = %d, want 67", perf[0].ResponseRate)
	}
	if perf[2].GuestCount != 0 || perf[2].ResponseRate != 0 {
		t.Errorf("empty event should be all zero, got %+v", perf[2])
	}
}

func TestTrendDenseWindow(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	guests := []models.Guest{
		mkGuest(1, models.GuestStatusConfirmed, 1, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)),
		mkGuest(1, models.GuestStatusDeclined, 1, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
		mkGuest(1, models.GuestStatusPending, 1, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)),
		// fuera de la ventana
		mkGuest(1, models.GuestStatusConfirmed, 1, time.Date(2023, time.December, 25, 0, 0, 0, 0, time.UTC)),
	}

	trend := trendEndingAt(guests, 3, now)
	if len(trend) != 3 {
		t.Fatalf("len(trend) = %d, want 3", len(trend))
	}
	wantMonths := []string{"2024-03", "2024-04", "2024-05"}
	for i, w := range wantMonths {
		if trend[i].Month != w {
			t.Errorf("trend[%d].Month = %q, want %q", i, trend[i].Month, w)
		}
	}
	if trend[0].Invitations != 1 || trend[0].Responses != 1 || trend[0].Confirmations != 1 {
		t.Errorf("march = %+v", trend[0])
	}
	// abril sin invitados sigue presente, en cero
	if trend[1].Invitations != 0 || trend[1].Responses != 0 || trend[1].Confirmations != 0 {
		t.Errorf("april should be zero, got %+v", trend[1])
	}
	if trend[2].Invitations != 2 || trend[2].Responses != 1 || trend[2].Confirmations != 0 {
		t.Errorf("may = %+v", trend[2])
	}
}

func TestTrendYearBoundary(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	trend := trendEndingAt(nil, 4, now)
	wantMonths := []string{"2023-11", "2023-12", "2024-01", "2024-02"}
	if len(trend) != 4 {
		t.Fatalf("len(trend) = %d, want 4", len(trend))
	}
	for i, w := range wantMonths {
		if trend[i].Month != w {
			t.Errorf("trend[%d].Month = %q, want %q", i, trend[i].Month, w)
		}
	}
}
