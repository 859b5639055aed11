package registration

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldMobile     = "mobile"
	FieldCompany    = "company"
	FieldDepartment = "department"

	indiaCountryCode = "91"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// RegistrationInput is the attendee form exactly as submitted.
type RegistrationInput struct {
	Name       string
	Email      string
	Mobile     string
	Company    string
	Department *string
}

// Attendee is a RegistrationInput that passed Validate. Only Validate builds
// one from user input.
type Attendee struct {
	Name       string
	Email      string
	Mobile     string
	Company    string
	Department *string
}

// Validate checks the rules in field order and reports only the first
// violation.
func Validate(input RegistrationInput) (Attendee, error) {
	name := strings.TrimSpace(input.Name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return Attendee{}, NewInvalidFieldError(FieldName, "Name must be between 2 and 100 characters")
	}

	email := strings.TrimSpace(input.Email)
	if !emailPattern.MatchString(email) {
		return Attendee{}, NewInvalidFieldError(FieldEmail, "Invalid email address")
	}
	if utf8.RuneCountInString(email) > 255 {
		return Attendee{}, NewInvalidFieldError(FieldEmail, "Email must be less than 255 characters")
	}

	mobile := NormalizeMobile(input.Mobile)
	if !mobilePattern.MatchString(mobile) {
		return Attendee{}, NewInvalidFieldError(FieldMobile, "Mobile number must be 10 digits starting with 6-9")
	}

	company := strings.TrimSpace(input.Company)
	if n := utf8.RuneCountInString(company); n < 2 || n > 200 {
		return Attendee{}, NewInvalidFieldError(FieldCompany, "Company name must be between 2 and 200 characters")
	}

	var department *string
	if input.Department != nil {
		d := strings.TrimSpace(*input.Department)
		if utf8.RuneCountInString(d) > 100 {
			return Attendee{}, NewInvalidFieldError(FieldDepartment, "Department name must be less than 100 characters")
		}
		if d != "" {
			department = &d
		}
	}

	return Attendee{
		Name:       name,
		Email:      NormalizeEmail(email),
		Mobile:     mobile,
		Company:    company,
		Department: department,
	}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeMobile drops whitespace, dashes and plus signs, then a leading
// India country code when that leaves a 10 digit number.
func NormalizeMobile(mobile string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '+' {
			return -1
		}
		return r
	}, mobile)

	if len(cleaned) == 12 && strings.HasPrefix(cleaned, indiaCountryCode) {
		cleaned = cleaned[len(indiaCountryCode):]
	}

	return cleaned
}
