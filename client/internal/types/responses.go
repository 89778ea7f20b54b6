package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// StudentDashboard summarizes a student's activity.
type StudentDashboard struct {
	MyApplications int     `json:"myApplications"`
	AvailableJobs  int     `json:"availableJobs"`
	MyWorkHours    float64 `json:"myWorkHours"`
	MyFeedback     int     `json:"myFeedback"`
}

// AdminDashboard summarizes the job board for administrators.
type AdminDashboard struct {
	TotalJobs           int `json:"totalJobs"`
	ActiveJobs          int `json:"activeJobs"`
	TotalApplications   int `json:"totalApplications"`
	PendingApplications int `json:"pendingApplications"`
	TotalStudents       int `json:"totalStudents"`
}
