package types

import (
	"strings"
	"time"

	"github.com/Pavan19102006/Jagadeesh-project/internal/errors"
)

// Client-side checks mirror the forms: they catch mistakes before a request
// is issued. The backend stays the authority on everything else.

const deadlineLayout = "2006-01-02"

// ValidateLogin checks that both credentials were entered.
func ValidateLogin(req LoginRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return errors.NewValidationError("username", "username is required")
	}
	if req.Password == "" {
		return errors.NewValidationError("password", "password is required")
	}
	return nil
}

// ValidateRegister checks the registration form. The password confirmation
// is compared first.
func ValidateRegister(req RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return errors.NewValidationError("confirmPassword", "Passwords do not match")
	}
	if strings.TrimSpace(req.Username) == "" {
		return errors.NewValidationError("username", "username is required")
	}
	if req.Password == "" {
		return errors.NewValidationError("password", "password is required")
	}
	if !strings.Contains(req.Email, "@") {
		return errors.NewValidationError("email", "invalid email %q", req.Email)
	}
	if strings.TrimSpace(req.FullName) == "" {
		return errors.NewValidationError("fullName", "full name is required")
	}
	return nil
}

// ValidateJobPosting checks a create/update form.
func ValidateJobPosting(req JobPostingRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return errors.NewValidationError("description", "description is required")
	}
	if strings.TrimSpace(req.Department) == "" {
		return errors.NewValidationError("department", "department is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return errors.NewValidationError("location", "location is required")
	}
	if req.HourlyRate <= 0 {
		return errors.NewValidationError("hourlyRate", "hourly rate must be positive, got %.2f", req.HourlyRate)
	}
	if req.MaxHoursPerWeek < 1 {
		return errors.NewValidationError("maxHoursPerWeek", "max hours per week must be at least 1, got %d", req.MaxHoursPerWeek)
	}
	if req.TotalPositions < 1 {
		return errors.NewValidationError("totalPositions", "total positions must be at least 1, got %d", req.TotalPositions)
	}
	if _, err := ParseDeadline(req.ApplicationDeadline); err != nil {
		return err
	}
	return nil
}

// ParseDeadline accepts YYYY-MM-DD, optionally followed by a time part.
func ParseDeadline(s string) (time.Time, error) {
	date, _, _ := strings.Cut(s, "T")
	t, err := time.Parse(deadlineLayout, date)
	if err != nil {
		return time.Time{}, errors.NewValidationError("applicationDeadline", "application deadline must be YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

// ValidateID checks a resource identifier taken from user input.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return errors.NewValidationError(field, "%s must be positive, got %d", field, id)
	}
	return nil
}

// ValidateReview accepts only final decisions.
func ValidateReview(req ReviewRequest) error {
	switch req.Status {
	case ApplicationApproved, ApplicationRejected:
		return nil
	default:
		return errors.NewValidationError("status", "review status must be %s or %s, got %q", ApplicationApproved, ApplicationRejected, req.Status)
	}
}
