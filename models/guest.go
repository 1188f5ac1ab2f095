package models

import "time"

const (
	GuestStatusPending   = "pending"
	GuestStatusConfirmed = "confirmed"
	GuestStatusDeclined  = "declined"
	// GuestStatusMaybe solo existe como etiqueta de lectura; ninguna escritura lo produce.
	GuestStatusMaybe = "maybe"
)

type Guest struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID             uint      `gorm:"column:event_id;not null;index" json:"event_id"`
	Name                string    `gorm:"column:name;size:255;not null" json:"name"`
	Email               *string   `gorm:"column:email;size:255" json:"email"`
	Phone               *string   `gorm:"column:phone;size:30" json:"phone"`
	Status              string    `gorm:"column:status;size:20;default:'pending'" json:"status"`
	GuestCount          int       `gorm:"column:guest_count;default:1" json:"guest_count"`
	Message             string    `gorm:"column:message;type:text" json:"message"`
	DietaryRestrictions string    `gorm:"column:dietary_restrictions;type:text" json:"dietary_restrictions"`
	WhatsappSent        bool      `gorm:"column:whatsapp_sent;default:false" json:"whatsapp_sent"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Guest) TableName() string {
	return "guests"
}
