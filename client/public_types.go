package client

import "github.com/Pavan19102006/Jagadeesh-project/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RequestOptions    = types.RequestOptions
	LoginRequest      = types.LoginRequest
	RegisterRequest   = types.RegisterRequest
	JobPostingRequest = types.JobPostingRequest
	ApplyRequest      = types.ApplyRequest
	ReviewRequest     = types.ReviewRequest

	// Domain entities
	User              = types.User
	Role              = types.Role
	JobPosting        = types.JobPosting
	JobStatus         = types.JobStatus
	Application       = types.Application
	ApplicationStatus = types.ApplicationStatus

	// Responses
	AuthResponse     = types.AuthResponse
	StudentDashboard = types.StudentDashboard
	AdminDashboard   = types.AdminDashboard
)

const (
	RoleAdmin   = types.RoleAdmin
	RoleStudent = types.RoleStudent

	JobActive = types.JobActive
	JobClosed = types.JobClosed
	JobFilled = types.JobFilled

	ApplicationPending   = types.ApplicationPending
	ApplicationApproved  = types.ApplicationApproved
	ApplicationRejected  = types.ApplicationRejected
	ApplicationWithdrawn = types.ApplicationWithdrawn
)

// NewJobPostingRequest returns a posting form with default hours and
// positions filled in.
func NewJobPostingRequest() JobPostingRequest { return types.NewJobPostingRequest() }

// ValidateJobPosting runs the client-side checks applied by CreateJob and
// UpdateJob.
func ValidateJobPosting(req JobPostingRequest) error { return types.ValidateJobPosting(req) }
