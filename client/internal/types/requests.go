package types

// ------------------------------
// Request Types
// ------------------------------

// RequestOptions describes one call made through the client. Method
// defaults to GET. Headers are merged over the default
// Content-Type: application/json; an empty value removes that header.
// Body is serialized as JSON unless it is already a string, []byte or
// json.RawMessage.
type RequestOptions struct {
	Method  string
	Headers map[string]string
	Body    any
}

// LoginRequest holds credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest holds the registration form. ConfirmPassword is checked
// locally and never sent.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone,omitempty"`
	Department      string `json:"department,omitempty"`
}

// Default form values for a new posting.
const (
	DefaultMaxHoursPerWeek = 20
	DefaultTotalPositions  = 1
)

// JobPostingRequest holds the fields an administrator edits.
type JobPostingRequest struct {
	Title               string  `json:"title" yaml:"title"`
	Description         string  `json:"description" yaml:"description"`
	Department          string  `json:"department" yaml:"department"`
	Location            string  `json:"location" yaml:"location"`
	HourlyRate          float64 `json:"hourlyRate" yaml:"hourlyRate"`
	MaxHoursPerWeek     int     `json:"maxHoursPerWeek" yaml:"maxHoursPerWeek"`
	TotalPositions      int     `json:"totalPositions" yaml:"totalPositions"`
	ApplicationDeadline string  `json:"applicationDeadline" yaml:"applicationDeadline"`
}

// NewJobPostingRequest returns a request with the form defaults applied.
func NewJobPostingRequest() JobPostingRequest {
	return JobPostingRequest{
		MaxHoursPerWeek: DefaultMaxHoursPerWeek,
		TotalPositions:  DefaultTotalPositions,
	}
}

// ApplyRequest submits an application for a posting.
type ApplyRequest struct {
	JobID       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// ReviewRequest records an administrator's decision.
type ReviewRequest struct {
	Status     ApplicationStatus `json:"status"`
	AdminNotes string            `json:"adminNotes,omitempty"`
}
