package validators

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"github.com/klaus-0-0/vault/models"
)

const (
	FieldTitle         = "title"
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldURL           = "url"
	FieldEmail         = "email"
	FieldEncryptedData = "encrypted_data"
)

const (
	// MinAccountPasswordLength applies to the server account password only;
	// master passwords and item passwords are not constrained.
	MinAccountPasswordLength = 6

	// MaxEncryptedDataSize caps a single stored blob.
	MaxEncryptedDataSize = 64 * 1024
)

// VaultValidator validates vault items on the client and account/item
// requests on the server.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate checks obj. When fields are given only those fields are checked;
// an unknown field name yields ErrUnknownField.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateVaultItem(value, fields...)
	case *models.VaultItem:
		return v.validateVaultItem(*value, fields...)

	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.CreateItemRequest:
		return validateEncryptedData(value.EncryptedData)
	case *models.CreateItemRequest:
		return validateEncryptedData(value.EncryptedData)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateVaultItem(item models.VaultItem, fields ...string) error {
	checks := map[string]func() error{
		FieldTitle:    func() error { return required(item.Title, ErrEmptyTitle) },
		FieldUsername: func() error { return required(item.Username, ErrEmptyUsername) },
		FieldPassword: func() error { return required(item.Password, ErrEmptyPassword) },
		FieldURL:      func() error { return validateURL(item.URL) },
	}

	return runChecks(checks, []string{FieldTitle, FieldUsername, FieldPassword, FieldURL}, fields)
}

func (v *VaultValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldUsername: func() error { return required(req.Username, ErrEmptyUsername) },
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return validateAccountPassword(req.Password) },
	}

	return runChecks(checks, []string{FieldUsername, FieldEmail, FieldPassword}, fields)
}

func (v *VaultValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return required(req.Password, ErrEmptyPassword) },
	}

	return runChecks(checks, []string{FieldEmail, FieldPassword}, fields)
}

// runChecks runs the requested checks, or all of them in order when fields
// is empty, and joins the failures.
func runChecks(checks map[string]func() error, order []string, fields []string) error {
	if len(fields) == 0 {
		fields = order
	}

	var errs []error
	for _, field := range fields {
		check, ok := checks[field]
		if !ok {
			return ErrUnknownField
		}
		if err := check(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func required(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}

// validateURL accepts any free-text location but rejects control
// characters.
func validateURL(raw string) error {
	if strings.IndexFunc(raw, unicode.IsControl) >= 0 {
		return ErrInvalidURL
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validateAccountPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len([]rune(password)) < MinAccountPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func validateEncryptedData(blob models.EncryptedBlob) error {
	if strings.TrimSpace(blob.String()) == "" {
		return ErrEmptyEncryptedData
	}
	if len(blob) > MaxEncryptedDataSize {
		return ErrEncryptedDataSize
	}
	return nil
}
