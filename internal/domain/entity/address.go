package entity

import (
	"strings"

	apperrors "tickatch/internal/domain/errors"
)

const (
	maxZipCodeLength = 10
	maxAddressLength = 200
)

// Address is an optional postal address. An all-blank Address is valid and
// considered empty; once any field is set, the first address line is required.
type Address struct {
	zipCode  string
	address1 string
	address2 string
}

// NewAddress validates and builds an Address.
func NewAddress(zipCode, address1, address2 string) (Address, error) {
	if err := validateAddress(zipCode, address1, address2); err != nil {
		return Address{}, err
	}

	return Address{zipCode: zipCode, address1: address1, address2: address2}, nil
}

// EmptyAddress returns the empty Address value.
func EmptyAddress() Address {
	return Address{}
}

// RestoreAddress rebuilds an Address from persistence without re-validating.
func RestoreAddress(zipCode, address1, address2 string) Address {
	return Address{zipCode: zipCode, address1: address1, address2: address2}
}

// Update returns a freshly validated Address; the receiver is unchanged.
func (a Address) Update(zipCode, address1, address2 string) (Address, error) {
	return NewAddress(zipCode, address1, address2)
}

// ZipCode returns the zip code, empty when not set.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Address1 returns the first address line.
func (a Address) Address1() string {
	return a.address1
}

// Address2 returns the second address line.
func (a Address) Address2() string {
	return a.address2
}

// IsZero reports whether every field is blank.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.zipCode) == "" &&
		strings.TrimSpace(a.address1) == "" &&
		strings.TrimSpace(a.address2) == ""
}

// FullAddress renders the address as a single display string, with the zip
// code in parentheses when present.
func (a Address) FullAddress() string {
	if a.IsZero() {
		return ""
	}

	var sb strings.Builder
	if strings.TrimSpace(a.zipCode) != "" {
		sb.WriteString("(")
		sb.WriteString(a.zipCode)
		sb.WriteString(") ")
	}
	if strings.TrimSpace(a.address1) != "" {
		sb.WriteString(a.address1)
	}
	if strings.TrimSpace(a.address2) != "" {
		sb.WriteString(" ")
		sb.WriteString(a.address2)
	}

	return strings.TrimSpace(sb.String())
}

func validateAddress(zipCode, address1, address2 string) error {
	allEmpty := strings.TrimSpace(zipCode) == "" &&
		strings.TrimSpace(address1) == "" &&
		strings.TrimSpace(address2) == ""
	if allEmpty {
		return nil // the whole value object is optional
	}

	if strings.TrimSpace(address1) == "" {
		return apperrors.ErrInvalidAddress
	}
	if len([]rune(zipCode)) > maxZipCodeLength {
		return apperrors.ErrInvalidAddress
	}
	if len([]rune(address1)) > maxAddressLength || len([]rune(address2)) > maxAddressLength {
		return apperrors.ErrInvalidAddress
	}

	return nil
}
