package backend

import (
	"math"
	"sort"
	"strings"
	"time"
)

const backendTimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the key format of Progress.
const DateLayout = "2006-01-02"

// Document is a schemaless record returned by the document store.
type Document map[string]any

// String returns the named field when it holds a non-empty string.
func (d Document) String(field string) (string, bool) {
	if d == nil {
		return "", false
	}
	value, ok := d[field].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// ProfileResponse mirrors the payload returned by /api/users/profile/{id}.
type ProfileResponse struct {
	UserID    int64  `json:"userID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p ProfileResponse) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// LoginRequest is the body of /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors a successful /api/users/login reply.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RegisterRequest is the body of /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse mirrors a /api/users/register reply.
type RegisterResponse struct {
	Message string `json:"message"`
}

// ProgressEntry is one day of practice.
type ProgressEntry struct {
	Hours    float64 `json:"hours"`
	Activity string  `json:"activity"`
}

// Progress maps a YYYY-MM-DD date to the practice recorded that day.
type Progress map[string]ProgressEntry

// Dates returns the recorded dates in ascending order.
func (p Progress) Dates() []string {
	dates := make([]string, 0, len(p))
	for date := range p {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// TotalHours sums the hours across all dates. Negative entries count as
// zero.
func (p Progress) TotalHours() float64 {
	var total float64
	for _, entry := range p {
		total += math.Max(entry.Hours, 0)
	}
	return total
}

// Record returns a copy of p with hours added to the entry for date. The
// backend replaces a day's entry on update, so callers send the sum.
func (p Progress) Record(date string, hours float64, activity string) Progress {
	out := make(Progress, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	entry := out[date]
	entry.Hours += hours
	if activity = strings.TrimSpace(activity); activity != "" {
		entry.Activity = activity
	}
	out[date] = entry
	return out
}

// UpdateProgressRequest is the body of /api/users/updateProgress.
type UpdateProgressRequest struct {
	UID          string   `json:"uid"`
	ProgressData Progress `json:"progressData"`
}

// errorResponse is the shape the backend uses for failures.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ParseTimestamp parses a backend timestamp, returning the zero time when the
// value is empty or unrecognised.
func ParseTimestamp(value string) time.Time {
	return parseTime(strings.TrimSpace(value))
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(backendTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
