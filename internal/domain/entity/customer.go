package entity

import (
	"time"

	"github.com/google/uuid"

	apperrors "tickatch/internal/domain/errors"
)

// maxCustomerAgeYears bounds how far back a birth date may lie.
const maxCustomerAgeYears = 150

// Customer is a ticket-buying account. Grades only ever move up.
type Customer struct {
	Account
	grade     CustomerGrade
	birthDate *time.Time
}

// NewCustomer validates and assembles a fresh customer in ACTIVE state with
// the NORMAL grade. The birth date is optional.
func NewCustomer(id uuid.UUID, email, name, phone string, birthDate *time.Time) (*Customer, error) {
	if err := validateBirthDate(birthDate); err != nil {
		return nil, err
	}

	profile, err := NewProfile(name, phone)
	if err != nil {
		return nil, err
	}

	return &Customer{
		Account:   newAccount(id, email, profile),
		grade:     GradeNormal,
		birthDate: birthDate,
	}, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(account Account, grade CustomerGrade, birthDate *time.Time) *Customer {
	return &Customer{Account: account, grade: grade, birthDate: birthDate}
}

// Grade returns the current loyalty grade.
func (c *Customer) Grade() CustomerGrade {
	return c.grade
}

// BirthDate returns the optional birth date, nil when not set.
func (c *Customer) BirthDate() *time.Time {
	return c.birthDate
}

// IsVIP reports whether the customer holds the VIP grade.
func (c *Customer) IsVIP() bool {
	return c.grade.IsVIP()
}

// UpgradeGrade moves the grade to newGrade. The ladder is monotonic: a
// target below the current level is rejected.
func (c *Customer) UpgradeGrade(newGrade CustomerGrade) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	if !newGrade.IsValid() {
		return apperrors.ErrInvalidCustomerGrade
	}
	if !c.grade.CanUpgradeTo(newGrade) {
		return apperrors.ErrGradeDowngradeNotAllowed
	}
	c.grade = newGrade

	return nil
}

// UpdateBirthDate replaces the birth date, re-validating the same bounds as
// creation.
func (c *Customer) UpdateBirthDate(birthDate *time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	if err := validateBirthDate(birthDate); err != nil {
		return err
	}
	c.birthDate = birthDate

	return nil
}

func validateBirthDate(birthDate *time.Time) error {
	if birthDate == nil {
		return nil // optional
	}

	now := time.Now()
	if birthDate.After(now) {
		return apperrors.ErrInvalidBirthDate
	}
	if birthDate.Before(now.AddDate(-maxCustomerAgeYears, 0, 0)) {
		return apperrors.ErrInvalidBirthDate
	}

	return nil
}
