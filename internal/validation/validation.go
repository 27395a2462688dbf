// Package validation holds the stateless form-field rules shared by the
// signup, login, and onboarding flows.
package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

func IsValidName(name string) (bool, string) {
	if len(strings.TrimSpace(name)) < 2 {
		return false, "Name must be at least 2 characters"
	}
	return true, ""
}

// Result reports form-level validity with one message per failing
// field; the first failing rule for a field wins.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// ValidateForm flags required fields that are blank, then applies the
// email/password/name rules to those fields whenever they are present,
// required or not.
func ValidateForm(fields map[string]string, required []string) Result {
	errors := map[string]string{}

	for _, field := range required {
		if strings.TrimSpace(fields[field]) == "" {
			errors[field] = "This field is required"
		}
	}

	if email, ok := fields["email"]; ok && email != "" && !IsValidEmail(email) {
		if _, taken := errors["email"]; !taken {
			errors["email"] = "Please enter a valid email address"
		}
	}
	if password, ok := fields["password"]; ok && password != "" {
		if valid, msg := IsValidPassword(password); !valid {
			if _, taken := errors["password"]; !taken {
				errors["password"] = msg
			}
		}
	}
	if name, ok := fields["name"]; ok && name != "" {
		if valid, msg := IsValidName(name); !valid {
			if _, taken := errors["name"]; !taken {
				errors["name"] = msg
			}
		}
	}

	return Result{IsValid: len(errors) == 0, Errors: errors}
}
