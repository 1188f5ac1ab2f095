package models

import "time"

const (
	ResponseYes   = "yes"
	ResponseNo    = "no"
	ResponseMaybe = "maybe"
)

// Confirmation guarda la respuesta cruda del formulario de bloques,
// independiente del status derivado que queda en Guest.
type Confirmation struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID             uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	GuestID             uint      `gorm:"column:guest_id;not null" json:"guest_id"`
	Name                string    `gorm:"column:name;size:255;not null" json:"name"`
	Email               *string   `gorm:"column:email;size:255" json:"email"`
	Phone               *string   `gorm:"column:phone;size:30" json:"phone"`
	Response            string    `gorm:"column:response;size:10;not null" json:"response"` // yes | no | maybe
	GuestCount          int       `gorm:"column:guest_count;default:1" json:"guest_count"`
	DietaryRestrictions string    `gorm:"column:dietary_restrictions;type:text" json:"dietary_restrictions"`
	AdditionalNotes     string    `gorm:"column:additional_notes;type:text" json:"additional_notes"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	Guest Guest `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Confirmation) TableName() string {
	return "confirmations"
}
