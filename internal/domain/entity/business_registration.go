package entity

import (
	"regexp"
	"strings"

	apperrors "tickatch/internal/domain/errors"
)

const (
	maxBusinessNameLength       = 200
	maxRepresentativeNameLength = 100
)

// businessNumberPattern matches a registration number with hyphens stripped.
var businessNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// BusinessRegistration holds a seller's registered business identity. The
// registration number is stored as 10 bare digits regardless of how it was
// entered.
type BusinessRegistration struct {
	businessName       string
	businessNumber     string
	representativeName string
	businessAddress    Address
}

// NewBusinessRegistration validates and builds a BusinessRegistration.
// The address is optional; a zero Address stands for "not provided".
func NewBusinessRegistration(businessName, businessNumber, representativeName string, businessAddress Address) (BusinessRegistration, error) {
	if err := validateBusinessName(businessName); err != nil {
		return BusinessRegistration{}, err
	}
	if err := validateBusinessNumber(businessNumber); err != nil {
		return BusinessRegistration{}, err
	}
	if err := validateRepresentativeName(representativeName); err != nil {
		return BusinessRegistration{}, err
	}
	if !businessAddress.IsZero() && strings.TrimSpace(businessAddress.Address1()) == "" {
		return BusinessRegistration{}, apperrors.ErrInvalidBusinessAddress
	}

	return BusinessRegistration{
		businessName:       strings.TrimSpace(businessName),
		businessNumber:     normalizeBusinessNumber(businessNumber),
		representativeName: strings.TrimSpace(representativeName),
		businessAddress:    businessAddress,
	}, nil
}

// RestoreBusinessRegistration rebuilds a BusinessRegistration from
// persistence without re-validating.
func RestoreBusinessRegistration(businessName, businessNumber, representativeName string, businessAddress Address) BusinessRegistration {
	return BusinessRegistration{
		businessName:       businessName,
		businessNumber:     businessNumber,
		representativeName: representativeName,
		businessAddress:    businessAddress,
	}
}

// Update returns a freshly validated BusinessRegistration; the receiver is
// unchanged.
func (b BusinessRegistration) Update(businessName, businessNumber, representativeName string, businessAddress Address) (BusinessRegistration, error) {
	return NewBusinessRegistration(businessName, businessNumber, representativeName, businessAddress)
}

// BusinessName returns the registered business name.
func (b BusinessRegistration) BusinessName() string {
	return b.businessName
}

// BusinessNumber returns the normalized 10-digit registration number.
func (b BusinessRegistration) BusinessNumber() string {
	return b.businessNumber
}

// RepresentativeName returns the registered representative.
func (b BusinessRegistration) RepresentativeName() string {
	return b.representativeName
}

// BusinessAddress returns the optional business address.
func (b BusinessRegistration) BusinessAddress() Address {
	return b.businessAddress
}

// FormattedNumber renders the registration number as XXX-XX-XXXXX for
// display. Numbers that are not exactly 10 digits are returned unchanged.
func (b BusinessRegistration) FormattedNumber() string {
	if len(b.businessNumber) != 10 {
		return b.businessNumber
	}

	return b.businessNumber[:3] + "-" + b.businessNumber[3:5] + "-" + b.businessNumber[5:]
}

func validateBusinessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrInvalidBusinessName
	}
	if len([]rune(strings.TrimSpace(name))) > maxBusinessNameLength {
		return apperrors.ErrInvalidBusinessName
	}

	return nil
}

func validateBusinessNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return apperrors.ErrInvalidBusinessNumber
	}
	if !businessNumberPattern.MatchString(normalizeBusinessNumber(number)) {
		return apperrors.ErrInvalidBusinessNumber
	}

	return nil
}

func validateRepresentativeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrInvalidRepresentativeName
	}
	if len([]rune(strings.TrimSpace(name))) > maxRepresentativeNameLength {
		return apperrors.ErrInvalidRepresentativeName
	}

	return nil
}

// normalizeBusinessNumber strips hyphens; idempotent on normalized input.
func normalizeBusinessNumber(number string) string {
	return strings.ReplaceAll(number, "-", "")
}
