package moderation

import (
	"draftroom/pkg/messages"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxNameLength      = 100
	MaxEmailLength     = 254
	MaxContentLength   = 2500
	MinContentLength   = 50
	DefaultMinFillTime = 3 * time.Second
)

// Rejection reasons, used as metric labels.
const (
	ReasonHoneypot  = "honeypot"
	ReasonTooFast   = "too_fast"
	ReasonRequired  = "required"
	ReasonEmail     = "email"
	ReasonTooLong   = "too_long"
	ReasonTooShort  = "too_short"
	ReasonProfanity = "profanity"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a community report as received from the client.
type Submission struct {
	PlayerID    uint
	DisplayName string
	Email       string
	Content     string
	Honeypot    string
	// SubmitTime is the unix time in milliseconds when the form was loaded, 0 when absent.
	SubmitTime int64
}

// SanitizedReport is a submission that passed the gate, trimmed and length capped.
type SanitizedReport struct {
	PlayerID    uint
	DisplayName string
	Email       string
	Content     string
}

// Rejection is returned when a submission fails one of the checks.
type Rejection struct {
	Reason  string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(reason, message string) *Rejection {
	return &Rejection{Reason: reason, Message: message}
}

// Gate runs the ordered anti-abuse and validation checks for report submissions.
type Gate struct {
	profanity   *ProfanityFilter
	minFillTime time.Duration
	now         func() time.Time
}

type GateOption func(*Gate)

// WithClock overrides the clock used by the timing check.
func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) {
		g.now = now
	}
}

// WithMinFillTime sets the minimum time between loading the form and submitting it.
func WithMinFillTime(d time.Duration) GateOption {
	return func(g *Gate) {
		g.minFillTime = d
	}
}

// NewGate creates the gate with the given profanity filter.
func NewGate(profanity *ProfanityFilter, opts ...GateOption) *Gate {
	g := &Gate{
		profanity:   profanity,
		minFillTime: DefaultMinFillTime,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Validate runs every check in order and stops on the first failure.
func (g *Gate) Validate(sub *Submission) (*SanitizedReport, *Rejection) {
	// Hidden field, only bots fill it.
	if sub.Honeypot != "" {
		return nil, reject(ReasonHoneypot, messages.InvalidSubmission)
	}

	if sub.SubmitTime > 0 && g.now().UnixMilli()-sub.SubmitTime < g.minFillTime.Milliseconds() {
		return nil, reject(ReasonTooFast, messages.SubmissionTooFast)
	}

	name := strings.TrimSpace(sub.DisplayName)
	email := strings.TrimSpace(sub.Email)
	content := strings.TrimSpace(sub.Content)

	if name == "" || email == "" || content == "" {
		return nil, reject(ReasonRequired, messages.RequiredFields)
	}

	if !isValidEmail(email) {
		return nil, reject(ReasonEmail, messages.InvalidEmail)
	}

	// The maximum is checked on the raw body, the minimum on the trimmed one.
	if utf8.RuneCountInString(sub.Content) > MaxContentLength {
		return nil, reject(ReasonTooLong, messages.ContentTooLong)
	}

	sanitized := &SanitizedReport{
		PlayerID:    sub.PlayerID,
		DisplayName: truncate(name, MaxNameLength),
		Email:       truncate(email, MaxEmailLength),
		Content:     truncate(content, MaxContentLength),
	}

	if utf8.RuneCountInString(sanitized.Content) < MinContentLength {
		return nil, reject(ReasonTooShort, messages.ContentTooShort)
	}

	if g.profanity.Contains(sanitized.Content) || g.profanity.Contains(sanitized.DisplayName) {
		return nil, reject(ReasonProfanity, messages.Profanity)
	}

	return sanitized, nil
}

func isValidEmail(email string) bool {
	return utf8.RuneCountInString(email) <= MaxEmailLength && emailPattern.MatchString(email)
}

// truncate cuts the string to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
