package models

// CVFile is one row of the uploaded-files listing.
type CVFile struct {
	CVID             int64  `json:"cv_id"`
	Filename         string `json:"filename"`
	CandidateName    string `json:"candidate_name"`
	CandidateEmail   string `json:"candidate_email"`
	CandidatePhone   string `json:"candidate_phone"`
	ProcessingStatus string `json:"processing_status"`
	UploadedDate     string `json:"uploaded_date"`
	UpdatedDate      string `json:"updated_date"`
}

// FileList is the response of GET /api/files.
type FileList struct {
	Files       []CVFile `json:"files"`
	TotalCount  int      `json:"total_count"`
	SearchQuery string   `json:"search_query"`
}

// UploadResult is the response of POST /api/upload. The backend runs its
// processing pipeline synchronously, so the result carries per-stage details
// and any non-fatal warnings.
type UploadResult struct {
	Message       string   `json:"message"`
	CVID          int64    `json:"cv_id"`
	Filename      string   `json:"filename"`
	CandidateName string   `json:"candidate_name"`
	Size          int64    `json:"size"`
	Status        string   `json:"status"`
	Reprocessed   bool     `json:"reprocessed"`
	Warnings      []string `json:"warnings,omitempty"`
}

// DeleteResult is the response of DELETE /api/files/{id}.
type DeleteResult struct {
	Message  string `json:"message"`
	CVID     int64  `json:"cv_id"`
	Filename string `json:"filename"`
}
