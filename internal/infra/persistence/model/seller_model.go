package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. Value objects are flattened into
// columns; the settlement account columns stay empty until approval.
type SellerModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name  string    `gorm:"type:varchar(50);not null"`
	Phone string    `gorm:"type:varchar(20)"`

	BusinessName       string `gorm:"type:varchar(200);not null"`
	BusinessNumber     string `gorm:"type:varchar(10);uniqueIndex;not null"`
	RepresentativeName string `gorm:"type:varchar(100);not null"`
	ZipCode            string `gorm:"type:varchar(10)"`
	Address1           string `gorm:"type:varchar(200)"`
	Address2           string `gorm:"type:varchar(200)"`

	BankCode      string `gorm:"type:varchar(10)"`
	AccountNumber string `gorm:"type:varchar(14)"`
	AccountHolder string `gorm:"type:varchar(100)"`

	ApprovalStatus string `gorm:"type:varchar(20);not null;index"`
	ApprovedAt     *time.Time
	ApprovedBy     string `gorm:"type:varchar(36)"`
	RejectedReason string     `gorm:"type:text"`

	Status    string `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
