package utils

import (
	"math"
	"sort"
	"time"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

// GuestStats son los contadores que alimentan el dashboard.
type GuestStats struct {
	Total       int `json:"total"`
	Confirmed   int `json:"confirmed"`
	Pending     int `json:"pending"`
	Declined    int `json:"declined"`
	TotalPeople int `json:"total_people"`
}

type EventPerformance struct {
	EventID      uint   `json:"event_id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	GuestCount   int    `json:"guest_count"`
	Confirmed    int    `json:"confirmed"`
	Declined     int    `json:"declined"`
	Pending      int    `json:"pending"`
	ResponseRate int    `json:"response_rate"`
}

type TrendPoint struct {
	Month         string `json:"month"` // YYYY-MM
	Invitations   int    `json:"invitations"`
	Responses     int    `json:"responses"`
	Confirmations int    `json:"confirmations"`
}

// ComputeStats deriva los contadores de una lista de invitados en memoria.
// Lista vacía produce todo en cero.
func ComputeStats(guests []models.Guest) GuestStats {
	s := GuestStats{Total: len(guests)}
	for _, g := range guests {
		switch g.Status {
		case models.GuestStatusConfirmed:
			s.Confirmed++
		case models.GuestStatusDeclined:
			s.Declined++
		default:
			// pending y cualquier valor legado cuentan como pendiente
			s.Pending++
		}
		n := g.GuestCount
		if n < 1 {
			n = 1
		}
		s.TotalPeople += n
	}
	return s
}

// ResponseRate = round(100 * (confirmed+declined) / total); 0 si no hay invitados.
func ResponseRate(guests []models.Guest) int {
	s := ComputeStats(guests)
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Confirmed+s.Declined) / float64(s.Total)))
}

// ConfirmationRate = round(100 * confirmed / total); 0 si no hay invitados.
func ConfirmationRate(guests []models.Guest) int {
	s := ComputeStats(guests)
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Confirmed) / float64(s.Total)))
}

// ComputeEventPerformance arma el rollup por evento, ordenado por número de
// invitados descendente.
func ComputeEventPerformance(events []models.Event, guests []models.Guest) []EventPerformance {
	byEvent := make(map[uint][]models.Guest, len(events))
	for _, g := range guests {
		byEvent[g.EventID] = append(byEvent[g.EventID], g)
	}

	out := make([]EventPerformance, 0, len(events))
	for _, ev := range events {
		gs := byEvent[ev.ID]
		s := ComputeStats(gs)
		out = append(out, EventPerformance{
			EventID:      ev.ID,
			Title:        ev.Title,
			Date:         ev.Date,
			GuestCount:   s.Total,
			Confirmed:    s.Confirmed,
			Declined:     s.Declined,
			Pending:      s.Pending,
			ResponseRate: ResponseRate(gs),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GuestCount > out[j].GuestCount
	})
	return out
}

// ComputeTrend agrupa invitados por mes calendario de created_at para los
// últimos months meses terminando en el mes actual.
func ComputeTrend(guests []models.Guest, months int) []TrendPoint {
	return trendEndingAt(guests, months, time.Now())
}

// trendEndingAt siempre devuelve exactamente months entradas, del mes más
// antiguo al más reciente; los meses sin invitados quedan en cero.
func trendEndingAt(guests []models.Guest, months int, now time.Time) []TrendPoint {
	if months < 1 {
		months = 1
	}
	byMonth := make(map[string]*TrendPoint, months)
	out := make([]TrendPoint, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		out[i] = TrendPoint{Month: m.Format("2006-01")}
		byMonth[out[i].Month] = &out[i]
	}

	for _, g := range guests {
		p, ok := byMonth[g.CreatedAt.Format("2006-01")]
		if !ok {
			continue // fuera de la ventana
		}
		p.Invitations++
		switch g.Status {
		case models.GuestStatusConfirmed:
			p.Responses++
			p.Confirmations++
		case models.GuestStatusDeclined:
			p.Responses++
		}
	}
	return out
}
