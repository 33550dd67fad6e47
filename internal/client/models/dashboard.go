package models

// DashboardStats is the response of GET /api/dashboard/stats.
type DashboardStats struct {
	TotalCVs        int    `json:"total_cvs"`
	ProcessedCVs    int    `json:"processed_cvs"`
	TotalEmbeddings int    `json:"total_embeddings"`
	TotalChats      int    `json:"total_chats"`
	Username        string `json:"username"`
}

// RecentFile is one entry of the recent-uploads feed.
type RecentFile struct {
	CVID          int64  `json:"cv_id"`
	Filename      string `json:"filename"`
	CandidateName string `json:"candidate_name"`
	UploadedDate  string `json:"uploaded_date"`
	Status        string `json:"status"`
}

// RecentQuery is one entry of the recent-queries feed.
type RecentQuery struct {
	Query     string `json:"query"`
	QueryType string `json:"query_type"`
	Timestamp string `json:"timestamp"`
}

// RecentActivity is the response of GET /api/dashboard/recent.
type RecentActivity struct {
	RecentFiles   []RecentFile  `json:"recent_files"`
	RecentQueries []RecentQuery `json:"recent_queries"`
}

// MaintenanceResult is the response of POST /api/maintenance/rebuild-embeddings.
type MaintenanceResult struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
