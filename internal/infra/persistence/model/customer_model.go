package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string     `gorm:"type:varchar(50);not null"`
	Phone     string     `gorm:"type:varchar(20)"`
	Grade     string     `gorm:"type:varchar(20);not null"`
	BirthDate *time.Time `gorm:"type:date"`
	Status    string     `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
