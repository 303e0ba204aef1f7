package entity

import (
	"regexp"
	"strings"

	apperrors "tickatch/internal/domain/errors"
)

const maxNameLength = 50

// phonePattern matches Korean mobile numbers with optional hyphens.
var phonePattern = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)

// normalizedPhonePattern matches a phone number with hyphens already stripped.
var normalizedPhonePattern = regexp.MustCompile(`^01[0-9][0-9]{7,8}$`)

// Profile is the immutable name/phone pair shared by every account kind.
// The phone number is stored hyphen-stripped; the zero value is invalid.
type Profile struct {
	name  string
	phone string
}

// NewProfile validates and builds a Profile. The name is required and at most
// 50 characters; the phone is optional and normalized with hyphens removed.
func NewProfile(name, phone string) (Profile, error) {
	if err := validateName(name); err != nil {
		return Profile{}, err
	}
	if err := validatePhone(phone); err != nil {
		return Profile{}, err
	}

	return Profile{name: name, phone: normalizePhone(phone)}, nil
}

// RestoreProfile rebuilds a Profile from persistence without re-validating.
func RestoreProfile(name, phone string) Profile {
	return Profile{name: name, phone: phone}
}

// Update returns a freshly validated Profile; the receiver is unchanged.
func (p Profile) Update(name, phone string) (Profile, error) {
	return NewProfile(name, phone)
}

// Name returns the display name.
func (p Profile) Name() string {
	return p.name
}

// Phone returns the normalized phone number, empty when not set.
func (p Profile) Phone() string {
	return p.phone
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrInvalidName
	}
	if len([]rune(name)) > maxNameLength {
		return apperrors.ErrInvalidName
	}

	return nil
}

func validatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil // optional
	}
	if !phonePattern.MatchString(phone) && !normalizedPhonePattern.MatchString(normalizePhone(phone)) {
		return apperrors.ErrInvalidPhone
	}

	return nil
}

// normalizePhone strips hyphens; idempotent on already-normalized input.
func normalizePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}

	return strings.ReplaceAll(phone, "-", "")
}
