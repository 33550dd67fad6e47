package models

// Experience is one work-history item in a candidate summary.
type Experience struct {
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
}

// Education is one education item in a candidate summary.
type Education struct {
	Degree string `json:"degree,omitempty"`
	School string `json:"school,omitempty"`
}

// Candidate is one row of the candidate directory.
type Candidate struct {
	CVID             int64        `json:"cv_id"`
	Filename         string       `json:"filename"`
	CandidateName    string       `json:"candidate_name"`
	CandidateEmail   string       `json:"candidate_email"`
	CandidatePhone   string       `json:"candidate_phone"`
	ProcessingStatus string       `json:"processing_status"`
	UploadedDate     string       `json:"uploaded_date"`
	Skills           []string     `json:"skills"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
}

// CandidateList is the response of GET /candidates.
type CandidateList struct {
	Candidates  []Candidate `json:"candidates"`
	TotalCount  int         `json:"total_count"`
	SearchQuery string      `json:"search_query"`
}

// CandidateDetail is the response of GET /candidates/{id}. Summary is the
// backend's free-form summary document, kept untyped.
type CandidateDetail struct {
	CVID                int64          `json:"cv_id"`
	Filename            string         `json:"filename"`
	CandidateName       string         `json:"candidate_name"`
	CandidateEmail      string         `json:"candidate_email"`
	CandidatePhone      string         `json:"candidate_phone"`
	ProcessingStatus    string         `json:"processing_status"`
	UploadedDate        string         `json:"uploaded_date"`
	UpdatedDate         string         `json:"updated_date"`
	Summary             map[string]any `json:"summary"`
	OriginalTextPreview string         `json:"original_text_preview"`
}
