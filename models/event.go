package models

import "time"

type Event struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Date        string `gorm:"column:date;size:20" json:"date"` // YYYY-MM-DD
	Time        string `gorm:"column:time;size:10" json:"time"` // HH:MM
	Location    string `gorm:"column:location;size:255" json:"location"`

	SettingsJSON string `gorm:"column:settings_json;type:text" json:"-"`
	BlocksJSON   string `gorm:"column:blocks_json;type:text" json:"-"`

	// PublicURL se genera una sola vez al compartir y nunca cambia.
	PublicURL      *string `gorm:"column:public_url;size:64;uniqueIndex" json:"public_url"`
	WhatsappNumber *string `gorm:"column:whatsapp_number;size:30" json:"whatsapp_number"`
	TemplateID     *uint   `gorm:"column:template_id" json:"template_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Owner *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Relaciones
	Guests        []Guest        `gorm:"foreignKey:EventID" json:"-"`
	Confirmations []Confirmation `gorm:"foreignKey:EventID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
