package messages

// User facing messages returned by the API.
const (
	AlreadyVoted        = "Already voted on this report"
	ContentTooLong      = "Report must be 2500 characters or less"
	ContentTooShort     = "Report must be at least 50 characters"
	InvalidEmail        = "Invalid email address"
	InvalidSubmission   = "Invalid submission"
	InvalidVoteType     = "Invalid vote type"
	NotFound            = "Not found"
	PlayerIdRequired    = "Player ID required"
	PlayerNotFound      = "Player not found"
	Profanity           = "Please keep your report professional and avoid inappropriate language"
	ReportIdRequired    = "Report ID required"
	ReportNotFound      = "Report not found"
	RequiredFields      = "Name, email, and content are required"
	SubmissionTooFast   = "Submission too fast. Please take your time."
	Unauthorized        = "Unauthorized"
	ReportRateLimit     = "Rate limit exceeded. Please try again later."
	ReportVoteRateLimit = "Rate limit exceeded. Slow down!"
	PlayerVoteRateLimit = "Rate limit exceeded. Try again later."
)

// Internal error messages.
const (
	CouldNotFindId = "couldn't find the %s Id"
	FiltersNotNil  = "filters can't be nil"
)
