// Package legacy conserva el prototipo viejo de editor de invitaciones como
// un módulo aparte: su propio almacenamiento SQLite y sus propios tipos, sin
// compartir nada con el modelo principal de eventos.
package legacy

import (
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("legacy: not found")

type Invitation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StylesJSON  string    `json:"styles"`
	ContentJSON string    `json:"content"`
	GalleryJSON string    `json:"gallery"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StylesJSON  string `json:"styles"`
	ContentJSON string `json:"content"`
}

type Response struct {
	ID           int64     `json:"id"`
	InvitationID string    `json:"invitation_id"`
	Name         string    `json:"name"`
	Attending    bool      `json:"attending"`
	GuestCount   int       `json:"guest_count"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS invitations (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	styles_json TEXT NOT NULL DEFAULT '{}',
	content_json TEXT NOT NULL DEFAULT '{}',
	gallery_json TEXT NOT NULL DEFAULT '[]',
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	styles_json TEXT NOT NULL DEFAULT '{}',
	content_json TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS responses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	invitation_id TEXT NOT NULL REFERENCES invitations(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	attending INTEGER NOT NULL,
	guest_count INTEGER NOT NULL DEFAULT 1,
	message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// Open abre (o crea) la base SQLite del prototipo y siembra las plantillas.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// una sola conexión: evita que :memory: se fragmente por el pool y los
	// database-is-locked en escrituras concurrentes
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		db:  db,
		log: zerolog.New(os.Stdout).With().Timestamp().Str("component", "legacy").Logger(),
	}
	if err := s.seedTemplates(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seedTemplates() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := []Template{
		{ID: "classic", Name: "Clásica", StylesJSON: `{"font":"serif","palette":"ivory"}`},
		{ID: "modern", Name: "Moderna", StylesJSON: `{"font":"sans","palette":"slate"}`},
		{ID: "floral", Name: "Floral", StylesJSON: `{"font":"script","palette":"rose"}`},
	}
	for _, t := range seed {
		if _, err := s.db.Exec(
			`INSERT INTO templates (id, name, styles_json, content_json) VALUES (?, ?, ?, ?)`,
			t.ID, t.Name, t.StylesJSON, `{}`,
		); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) ListTemplates() ([]Template, error) {
	rows, err := s.db.Query(`SELECT id, name, styles_json, content_json FROM templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.StylesJSON, &t.ContentJSON); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) CreateInvitation(inv *Invitation) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.StylesJSON == "" {
		inv.StylesJSON = "{}"
	}
	if inv.ContentJSON == "" {
		inv.ContentJSON = "{}"
	}
	if inv.GalleryJSON == "" {
		inv.GalleryJSON = "[]"
	}
	_, err := s.db.Exec(
		`INSERT INTO invitations (id, title, styles_json, content_json, gallery_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Title, inv.StylesJSON, inv.ContentJSON, inv.GalleryJSON, inv.CreatedAt, inv.UpdatedAt,
	)
	return err
}

func (s *Store) GetInvitation(id string) (*Invitation, error) {
	var inv Invitation
	err := s.db.QueryRow(
		`SELECT id, title, styles_json, content_json, gallery_json, created_at, updated_at
		 FROM invitations WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.Title, &inv.StylesJSON, &inv.ContentJSON, &inv.GalleryJSON, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Store) ListInvitations() ([]Invitation, error) {
	rows, err := s.db.Query(
		`SELECT id, title, styles_json, content_json, gallery_json, created_at, updated_at
		 FROM invitations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invitation
	for rows.Next() {
		var inv Invitation
		if err := rows.Scan(&inv.ID, &inv.Title, &inv.StylesJSON, &inv.ContentJSON, &inv.GalleryJSON, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *Store) UpdateInvitation(inv *Invitation) error {
	inv.UpdatedAt = time.Now()
	res, err := s.db.Exec(
		`UPDATE invitations SET title = ?, styles_json = ?, content_json = ?, gallery_json = ?, updated_at = ?
		 WHERE id = ?`,
		inv.Title, inv.StylesJSON, inv.ContentJSON, inv.GalleryJSON, inv.UpdatedAt, inv.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteInvitation(id string) error {
	res, err := s.db.Exec(`DELETE FROM invitations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateResponse(r *Response) error {
	r.CreatedAt = time.Now()
	if r.GuestCount < 1 {
		r.GuestCount = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO responses (invitation_id, name, attending, guest_count, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.InvitationID, r.Name, r.Attending, r.GuestCount, r.Message, r.CreatedAt,
	)
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

func (s *Store) ListResponses(invitationID string) ([]Response, error) {
	rows, err := s.db.Query(
		`SELECT id, invitation_id, name, attending, guest_count, message, created_at
		 FROM responses WHERE invitation_id = ? ORDER BY created_at ASC`, invitationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Response
	for rows.Next() {
		var r Response
		if err := rows.Scan(&r.ID, &r.InvitationID, &r.Name, &r.Attending, &r.GuestCount, &r.Message, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
