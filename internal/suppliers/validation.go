package suppliers

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

var (
	validate       = validator.New()
	contactPattern = regexp.MustCompile(`^[0-9+\-() ]{6,20}$`)
)

// validateForm applies the canonical supplier policy: name is required,
// email (if present) must be address-shaped, contact (if present) must be
// phone-shaped. The same rules apply to create and update.
func validateForm(f SupplierForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return &httpx.ValidationError{Field: "name", Message: "Name is required."}
	}
	if f.Email != "" {
		if err := validate.Var(f.Email, "email"); err != nil {
			return &httpx.ValidationError{Field: "email", Message: "Email is invalid."}
		}
	}
	if f.Contact != "" && !contactPattern.MatchString(f.Contact) {
		return &httpx.ValidationError{Field: "contact", Message: "Contact looks invalid."}
	}
	return nil
}
