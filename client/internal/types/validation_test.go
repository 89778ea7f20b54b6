package types

import (
	"testing"

	"github.com/Pavan19102006/Jagadeesh-project/internal/errors"
)

func validPosting() JobPostingRequest {
	req := NewJobPostingRequest()
	req.Title = "Library Assistant"
	req.Description = "Shelve returns and staff the front desk."
	req.Department = "Library"
	req.Location = "Main Library"
	req.HourlyRate = 15.5
	req.ApplicationDeadline = "2026-12-01"
	return req
}

func TestValidateJobPosting(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		mutate func(*JobPostingRequest)
		field  string
	}{
		{"valid", func(*JobPostingRequest) {}, ""},
		{"date-time deadline", func(r *JobPostingRequest) { r.ApplicationDeadline = "2026-12-01T23:59:00" }, ""},
		{"missing title", func(r *JobPostingRequest) { r.Title = "  " }, "title"},
		{"missing department", func(r *JobPostingRequest) { r.Department = "" }, "department"},
		{"zero rate", func(r *JobPostingRequest) { r.HourlyRate = 0 }, "hourlyRate"},
		{"long week", func(r *JobPostingRequest) { r.MaxHoursPerWeek = 45 }, ""},
		{"missing description", func(r *JobPostingRequest) { r.Description = "\t" }, "description"},
		{"missing location", func(r *JobPostingRequest) { r.Location = "" }, "location"},
		{"no hours", func(r *JobPostingRequest) { r.MaxHoursPerWeek = 0 }, "maxHoursPerWeek"},
		{"no positions", func(r *JobPostingRequest) { r.TotalPositions = 0 }, "totalPositions"},
		{"bad deadline", func(r *JobPostingRequest) { r.ApplicationDeadline = "12/01/2026" }, "applicationDeadline"},
		{"empty deadline", func(r *JobPostingRequest) { r.ApplicationDeadline = "" }, "applicationDeadline"},
	}
	for _, c := range cases {
		req := validPosting()
		c.mutate(&req)
		err := ValidateJobPosting(req)
		if c.field == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		verr, ok := err.(*errors.ValidationError)
		if !ok {
			t.Fatalf("%s: expected *ValidationError, got %T (%v)", c.name, err, err)
		}
		if verr.Field != c.field {
			t.Fatalf("%s: field = %q, want %q", c.name, verr.Field, c.field)
		}
	}
}

func TestValidateRegister_PasswordMismatchFirst(t *testing.T) {
	t.Parallel()
	err := ValidateRegister(RegisterRequest{Password: "a", ConfirmPassword: "b"})
	if err == nil || err.Error() != "Passwords do not match" {
		t.Fatalf("expected mismatch error, got %v", err)
	}

	ok := RegisterRequest{
		Username: "student", Password: "pw", ConfirmPassword: "pw",
		Email: "s@uni.edu", FullName: "Sam Student",
	}
	if err := ValidateRegister(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := ok
	bad.Email = "nope"
	if err := ValidateRegister(bad); err == nil {
		t.Fatal("expected email error")
	}
}

func TestValidateLoginReviewAndID(t *testing.T) {
	t.Parallel()
	if err := ValidateLogin(LoginRequest{Username: "admin"}); err == nil {
		t.Fatal("expected missing password error")
	}
	if err := ValidateLogin(LoginRequest{Username: "admin", Password: "admin123"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateReview(ReviewRequest{Status: ApplicationWithdrawn}); err == nil {
		t.Fatal("expected withdrawn to be rejected as a review decision")
	}
	if err := ValidateReview(ReviewRequest{Status: ApplicationApproved}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateID("jobId", 0); err == nil {
		t.Fatal("expected non-positive id error")
	}
}

func TestJobPostingHelpers(t *testing.T) {
	t.Parallel()
	j := JobPosting{
		Title: "Tutor", ApplicationDeadline: "2026-03-15T00:00:00",
		TotalPositions: 3, FilledPositions: 5, MaxHoursPerWeek: 10,
	}
	if got := j.DeadlineDate(); got != "2026-03-15" {
		t.Fatalf("DeadlineDate = %q", got)
	}
	if got := j.OpenPositions(); got != 0 {
		t.Fatalf("OpenPositions = %d", got)
	}
	req := j.ToRequest()
	if req.ApplicationDeadline != "2026-03-15" || req.Title != "Tutor" || req.MaxHoursPerWeek != 10 {
		t.Fatalf("ToRequest = %+v", req)
	}
	if (Application{Status: ApplicationPending}).CanWithdraw() != true {
		t.Fatal("pending application should be withdrawable")
	}
	if (Application{Status: ApplicationApproved}).CanWithdraw() {
		t.Fatal("approved application should not be withdrawable")
	}
}
