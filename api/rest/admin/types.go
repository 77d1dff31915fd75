package admin

// archive-wide counters for the admin dashboard
type StatsResponse struct {
	TotalDocuments int `json:"total_documents"`
	TotalUsers     int `json:"total_users"`
}
