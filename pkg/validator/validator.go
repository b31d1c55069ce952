package validator

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9._%+-]*[a-zA-Z0-9])?@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^(\+\d{1,3}\s?)?(\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4}$`)

	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	scriptPattern = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	tagPattern    = regexp.MustCompile(`<[^>]*>`)
)

// MinPasswordLength matches the identity provider's minimum.
const MinPasswordLength = 8

const maxInputLength = 5000

func ValidEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

func ValidPhoneNumber(phone string) bool {
	return phone != "" && phonePattern.MatchString(phone)
}

// MissingFields returns the names of required fields that are absent or
// empty in the given payload.
func MissingFields(data map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := data[field]
		if !ok || v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// PasswordErrors returns every strength rule the password violates.
func PasswordErrors(password string) []string {
	var errs []string
	if len(password) < MinPasswordLength {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !upperPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one digit")
	}
	if !specialPattern.MatchString(password) {
		errs = append(errs, "Password must contain at least one special character")
	}
	return errs
}

// Sanitize strips script blocks and HTML tags from free-form text and
// caps its length.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	sanitized := scriptPattern.ReplaceAllString(text, "")
	sanitized = tagPattern.ReplaceAllString(sanitized, "")
	if len(sanitized) > maxInputLength {
		sanitized = sanitized[:maxInputLength]
	}
	return strings.TrimSpace(sanitized)
}
