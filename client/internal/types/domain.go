package types

import "strings"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role is the account kind returned by the backend.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// User is the profile of an account holder.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	FullName   string `json:"fullName,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Role       Role   `json:"role"`
}

// IsAdmin reports whether the user manages postings.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobActive JobStatus = "ACTIVE"
	JobClosed JobStatus = "CLOSED"
	JobFilled JobStatus = "FILLED"
)

// JobPosting is a work-study position offered by a department.
type JobPosting struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Department          string    `json:"department"`
	Location            string    `json:"location"`
	HourlyRate          float64   `json:"hourlyRate"`
	MaxHoursPerWeek     int       `json:"maxHoursPerWeek"`
	TotalPositions      int       `json:"totalPositions"`
	FilledPositions     int       `json:"filledPositions"`
	ApplicationDeadline string    `json:"applicationDeadline"`
	Status              JobStatus `json:"status"`
	CreatedAt           string    `json:"createdAt,omitempty"`
}

// DeadlineDate returns the calendar date part of ApplicationDeadline. The
// backend sends either a date or a date-time without zone.
func (j JobPosting) DeadlineDate() string {
	date, _, _ := strings.Cut(j.ApplicationDeadline, "T")
	return date
}

// OpenPositions is the number of positions not yet filled.
func (j JobPosting) OpenPositions() int {
	if n := j.TotalPositions - j.FilledPositions; n > 0 {
		return n
	}
	return 0
}

// ToRequest returns the editable fields of j, used to update a posting.
func (j JobPosting) ToRequest() JobPostingRequest {
	return JobPostingRequest{
		Title:               j.Title,
		Description:         j.Description,
		Department:          j.Department,
		Location:            j.Location,
		HourlyRate:          j.HourlyRate,
		MaxHoursPerWeek:     j.MaxHoursPerWeek,
		TotalPositions:      j.TotalPositions,
		ApplicationDeadline: j.DeadlineDate(),
	}
}

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationApproved  ApplicationStatus = "APPROVED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// Application is a student's application to a posting.
type Application struct {
	ID          int64             `json:"id"`
	Job         JobPosting        `json:"job"`
	Student     *User             `json:"student,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AdminNotes  string            `json:"adminNotes,omitempty"`
	AppliedAt   string            `json:"appliedAt"`
}

// CanWithdraw reports whether the student may still withdraw.
func (a Application) CanWithdraw() bool { return a.Status == ApplicationPending }
