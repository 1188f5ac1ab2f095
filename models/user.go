package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // oculto en JSON
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Events []Event `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
