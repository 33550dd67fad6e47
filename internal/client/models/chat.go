package models

// CVMatch is one ranked hit of a semantic CV search.
type CVMatch struct {
	Rank            int          `json:"rank"`
	SimilarityScore float64      `json:"similarity_score"`
	CVID            int64        `json:"cv_id"`
	CandidateName   string       `json:"candidate_name"`
	Filename        string       `json:"filename"`
	Skills          []string     `json:"skills"`
	Experience      []Experience `json:"experience"`
	Education       []Education  `json:"education"`
}

// QueryResponse is the response of GET /query. QueryType is "cv_search" or
// "general_chat"; Results and TotalMatches are populated only for searches.
type QueryResponse struct {
	Query        string    `json:"query"`
	QueryType    string    `json:"query_type"`
	ResponseText string    `json:"response_text"`
	Results      []CVMatch `json:"results"`
	TotalMatches int       `json:"total_matches"`
	Timestamp    string    `json:"timestamp"`
}

// ChatEntry is one stored exchange in the chat history.
type ChatEntry struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	QueryType string `json:"query_type"`
	CreatedAt string `json:"created_at"`
}

// ChatList is the response of GET /api/chats.
type ChatList struct {
	Chats      []ChatEntry `json:"chats"`
	TotalCount int         `json:"total_count"`
}
