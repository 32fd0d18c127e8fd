package dto

// SubmitReportRequest is the body of a community report submission.
type SubmitReportRequest struct {
	PlayerID    uint   `json:"player_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Content     string `json:"content"`
	Honeypot    string `json:"honeypot"`
	// Unix time in milliseconds when the form was loaded.
	SubmitTime int64 `json:"submit_time"`
}

// SubmitReportResult is returned when a report is accepted.
type SubmitReportResult struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// ReportVoteRequest is the body of a vote on a community report.
type ReportVoteRequest struct {
	ReportID uint   `json:"report_id"`
	VoteType string `json:"vote_type"`
}

// ExpertReportRequest is the body of the admin expert report upsert.
type ExpertReportRequest struct {
	PlayerID   uint    `json:"player_id"`
	Summary    *string `json:"summary"`
	Strengths  *string `json:"strengths"`
	Weaknesses *string `json:"weaknesses"`
	SchemeFit  *string `json:"scheme_fit"`
	NflComp    *string `json:"nfl_comp"`
	Floor      *string `json:"floor"`
	Ceiling    *string `json:"ceiling"`
	Risk       *string `json:"risk"`
}

// SuccessResult is the body of a write without other output.
type SuccessResult struct {
	Success bool `json:"success"`
}
