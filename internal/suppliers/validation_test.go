package suppliers

import (
	"errors"
	"testing"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

func TestValidateForm(t *testing.T) {
	cases := []struct {
		name    string
		form    SupplierForm
		wantMsg string
	}{
		{"name only", SupplierForm{Name: "Acme"}, ""},
		{"full form", SupplierForm{Name: "Acme", Email: "sales@acme.test", Contact: "+63 (2) 555-0101"}, ""},
		{"missing name", SupplierForm{Email: "sales@acme.test"}, "Name is required."},
		{"blank name", SupplierForm{Name: "  "}, "Name is required."},
		{"bad email", SupplierForm{Name: "Acme", Email: "not-an-address"}, "Email is invalid."},
		{"contact too short", SupplierForm{Name: "Acme", Contact: "123"}, "Contact looks invalid."},
		{"contact with letters", SupplierForm{Name: "Acme", Contact: "call me maybe"}, "Contact looks invalid."},
		{"empty optional fields skipped", SupplierForm{Name: "Acme", Email: "", Contact: ""}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateForm(tc.form)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tc.wantMsg)
			}
			if !errors.Is(err, httpx.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if err.Error() != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}
