package utils

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/LinamariaMartinez/eventMaster-sub000/models"
)

var sheetsLog = zerolog.New(os.Stdout).With().Timestamp().Str("component", "sheets").Logger()

// DispatchGuestSync manda el invitado confirmado a Google Sheets en segundo
// plano. Mejor esfuerzo: los errores se loguean y nunca llegan al respondente.
func DispatchGuestSync(ev models.Event, g models.Guest) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				sheetsLog.Error().Interface("panic", r).Msg("pánico en sync de Google Sheets")
			}
		}()
		if err := appendGuestRow(ev, g); err != nil {
			sheetsLog.Error().Err(err).Uint("guest_id", g.ID).Uint("event_id", ev.ID).
				Msg("sync a Google Sheets falló")
		}
	}()
}

func appendGuestRow(ev models.Event, g models.Guest) error {
	spreadsheetID := os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	credFile := os.Getenv("GOOGLE_SHEETS_CREDENTIALS")
	if spreadsheetID == "" || credFile == "" {
		return errors.New("Google Sheets no está configurado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credFile))
	if err != nil {
		return err
	}

	email, phone := "", ""
	if g.Email != nil {
		email = *g.Email
	}
	if g.Phone != nil {
		phone = *g.Phone
	}
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{
			ev.Title, g.Name, email, phone, g.Status, g.GuestCount,
			g.DietaryRestrictions, g.CreatedAt.Format(time.RFC3339),
		}},
	}
	_, err = svc.Spreadsheets.Values.
		Append(spreadsheetID, "Invitados!A:H", vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
