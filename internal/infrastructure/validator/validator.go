package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/PetSymptomTracker/internal/usecase/contract"
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
	// PasswordSymbols is the set a password must draw at least one symbol from.
	PasswordSymbols = "!@#$%^&*()_+-=[]{};:'\\|,.<>/?"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// IsValidEmailPattern accepts addresses that pass RFC 5322 parsing and also
// carry a dotted domain without any whitespace. "user@localhost" is rejected.
func (av *AppValidator) IsValidEmailPattern(email string) bool {
	if email == "" || strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}
	if err := av.validate.Var(email, "required,email"); err != nil {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// IsValidPasswordPattern checks the length and character class rules.
// The upper bound is in bytes since that is what bcrypt hashes.
func (av *AppValidator) IsValidPasswordPattern(password string) bool {
	return len([]rune(password)) >= MinPasswordLength &&
		len(password) <= MaxPasswordBytes &&
		containsUppercase(password) &&
		containsLowercase(password) &&
		containsNumber(password) &&
		containsSpecial(password)
}

// PasswordRequirements is the human readable form of IsValidPasswordPattern.
func (av *AppValidator) PasswordRequirements() string {
	return PasswordRequirements()
}

// PasswordRequirements describes the password policy.
func PasswordRequirements() string {
	return fmt.Sprintf(
		"password must be at least %d characters long, at most %d bytes, and contain an uppercase letter, a lowercase letter, a digit and one of %s",
		MinPasswordLength, MaxPasswordBytes, PasswordSymbols,
	)
}

func containsUppercase(s string) bool {
	for _, char := range s {
		if unicode.IsUpper(char) {
			return true
		}
	}
	return false
}

func containsLowercase(s string) bool {
	for _, char := range s {
		if unicode.IsLower(char) {
			return true
		}
	}
	return false
}

func containsNumber(s string) bool {
	for _, char := range s {
		if unicode.IsDigit(char) {
			return true
		}
	}
	return false
}

func containsSpecial(s string) bool {
	return strings.ContainsAny(s, PasswordSymbols)
}
