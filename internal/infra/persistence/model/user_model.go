// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The password hash lives on the row but
// never leaves the persistence layer as part of the domain entity.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100)"`
	Roles        []string  `gorm:"type:jsonb;serializer:json"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	Enabled      bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
