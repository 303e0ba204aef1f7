// Package model holds the GORM persistence models mirroring the database
// tables. Domain entities are mapped to and from these in the postgres
// package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(50);not null"`
	Phone      string    `gorm:"type:varchar(20)"`
	Department string    `gorm:"type:varchar(100)"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Status     string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
