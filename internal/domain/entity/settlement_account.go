package entity

import (
	"regexp"
	"strings"

	apperrors "tickatch/internal/domain/errors"
)

const maxAccountHolderLength = 100

// accountNumberPattern matches an account number with hyphens stripped.
var accountNumberPattern = regexp.MustCompile(`^[0-9]{10,14}$`)

// SettlementAccount is the payout destination of an approved seller. It
// starts empty and is only populated after approval; the account number is
// stored hyphen-stripped.
type SettlementAccount struct {
	bankCode      string
	accountNumber string
	accountHolder string
}

// NewSettlementAccount validates and builds a SettlementAccount against the
// injected bank directory.
func NewSettlementAccount(banks BankDirectory, bankCode, accountNumber, accountHolder string) (SettlementAccount, error) {
	if strings.TrimSpace(bankCode) == "" || !banks.Contains(bankCode) {
		return SettlementAccount{}, apperrors.ErrInvalidBankCode
	}
	if err := validateAccountNumber(accountNumber); err != nil {
		return SettlementAccount{}, err
	}
	if err := validateAccountHolder(accountHolder); err != nil {
		return SettlementAccount{}, err
	}

	return SettlementAccount{
		bankCode:      bankCode,
		accountNumber: normalizeAccountNumber(accountNumber),
		accountHolder: strings.TrimSpace(accountHolder),
	}, nil
}

// EmptySettlementAccount returns the unset SettlementAccount value.
func EmptySettlementAccount() SettlementAccount {
	return SettlementAccount{}
}

// RestoreSettlementAccount rebuilds a SettlementAccount from persistence
// without re-validating.
func RestoreSettlementAccount(bankCode, accountNumber, accountHolder string) SettlementAccount {
	return SettlementAccount{
		bankCode:      bankCode,
		accountNumber: accountNumber,
		accountHolder: accountHolder,
	}
}

// Update returns a freshly validated SettlementAccount; the receiver is
// unchanged.
func (s SettlementAccount) Update(banks BankDirectory, bankCode, accountNumber, accountHolder string) (SettlementAccount, error) {
	return NewSettlementAccount(banks, bankCode, accountNumber, accountHolder)
}

// BankCode returns the bank code, empty when not set.
func (s SettlementAccount) BankCode() string {
	return s.bankCode
}

// AccountNumber returns the normalized account number.
func (s SettlementAccount) AccountNumber() string {
	return s.accountNumber
}

// AccountHolder returns the account holder name.
func (s SettlementAccount) AccountHolder() string {
	return s.accountHolder
}

// IsZero reports whether no settlement data has been provided.
func (s SettlementAccount) IsZero() bool {
	return s.bankCode == "" && s.accountNumber == "" && s.accountHolder == ""
}

// IsComplete reports whether every settlement field is present.
func (s SettlementAccount) IsComplete() bool {
	return s.bankCode != "" && s.accountNumber != "" && s.accountHolder != ""
}

// MaskedAccountNumber renders the account number with everything after the
// first four digits replaced by asterisks.
func (s SettlementAccount) MaskedAccountNumber() string {
	if len(s.accountNumber) < 4 {
		return s.accountNumber
	}

	return s.accountNumber[:4] + strings.Repeat("*", len(s.accountNumber)-4)
}

func validateAccountNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return apperrors.ErrInvalidAccountNumber
	}
	if !accountNumberPattern.MatchString(normalizeAccountNumber(number)) {
		return apperrors.ErrInvalidAccountNumber
	}

	return nil
}

func validateAccountHolder(holder string) error {
	if strings.TrimSpace(holder) == "" {
		return apperrors.ErrInvalidAccountHolder
	}
	if len([]rune(strings.TrimSpace(holder))) > maxAccountHolderLength {
		return apperrors.ErrInvalidAccountHolder
	}

	return nil
}

// normalizeAccountNumber strips hyphens; idempotent on normalized input.
func normalizeAccountNumber(number string) string {
	return strings.ReplaceAll(number, "-", "")
}
