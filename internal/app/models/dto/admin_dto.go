package dto

// StatsResponse carries the admin dashboard counters. Every field is a fresh
// aggregate computed at request time.
type StatsResponse struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalAlumni      int64 `json:"totalAlumni"`
	TotalStudents    int64 `json:"totalStudents"`
	PendingApprovals int64 `json:"pendingApprovals"`
}

// ApprovalResponse is returned after approving an alumni account
type ApprovalResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}
