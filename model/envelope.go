package model

// Response wraps a single model returned by a write endpoint together with
// the non-fatal problems the API reported.
type Response[T any] struct {
	Base

	Model    *T                   `json:"model" validate:"required"`
	Warnings []*ValidationProblem `json:"warnings" validate:"required"`
	Errors   []*ValidationProblem `json:"errors" validate:"required"`

	// Logs is nil when debug mode was off and non-nil (possibly empty) when
	// it was on.
	Logs []*DebugLogEntry `json:"logs"`
}

// AfterParse normalizes Warnings and Errors to non-nil slices.
func (r *Response[T]) AfterParse() error {
	if r.Warnings == nil {
		r.Warnings = []*ValidationProblem{}
	}
	if r.Errors == nil {
		r.Errors = []*ValidationProblem{}
	}
	return nil
}

// DebugMode reports whether the response was produced with debug mode on.
func (r *Response[T]) DebugMode() bool {
	return r.Logs != nil
}

// DebugLogs returns the upstream requests logged in debug mode.
func (r *Response[T]) DebugLogs() []*DebugLogEntry { return r.Logs }

// HasProblems reports whether the API returned any warnings or errors.
func (r *Response[T]) HasProblems() bool {
	return len(r.Warnings) > 0 || len(r.Errors) > 0
}

func (r Response[T]) MarshalJSON() ([]byte, error) { return Marshal(&r) }

func (r *Response[T]) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, r) }

// WriteRequest is the body of a create or partial update call.
type WriteRequest[T any] struct {
	Model *T `json:"model" validate:"required"`
}

func (r WriteRequest[T]) MarshalJSON() ([]byte, error) { return Marshal(&r) }

func (r *WriteRequest[T]) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, r) }

// Page is one page of a cursor-paginated list. Cursors are opaque and are
// echoed back verbatim to fetch the adjacent page.
type Page[T any] struct {
	Base

	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []*T    `json:"results"`
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// HasPrevious reports whether a preceding page exists.
func (p *Page[T]) HasPrevious() bool {
	return p.Previous != nil && *p.Previous != ""
}

// IsTerminal reports whether no further page exists after this one.
func (p *Page[T]) IsTerminal() bool {
	return !p.HasNext()
}

// NextCursor returns the cursor of the following page, or "".
func (p *Page[T]) NextCursor() string {
	if p.Next == nil {
		return ""
	}
	return *p.Next
}

func (p Page[T]) MarshalJSON() ([]byte, error) { return Marshal(&p) }

func (p *Page[T]) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, p) }

// ValidationProblem describes a warning or error attached to a write request.
type ValidationProblem struct {
	Base

	Source      *ValidationProblemSource `json:"source"`
	Title       *string                  `json:"title" validate:"required"`
	Detail      *string                  `json:"detail" validate:"required"`
	ProblemType *string                  `json:"problem_type" validate:"required"`
}

func (p ValidationProblem) MarshalJSON() ([]byte, error) { return Marshal(&p) }

func (p *ValidationProblem) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, p) }

// ValidationProblemSource points at the request field a problem refers to.
type ValidationProblemSource struct {
	Base

	Pointer *string `json:"pointer" validate:"required"`
}

func (s ValidationProblemSource) MarshalJSON() ([]byte, error) { return Marshal(&s) }

func (s *ValidationProblemSource) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, s) }

// DebugLogEntry is one upstream request logged while debug mode was on.
type DebugLogEntry struct {
	Base

	LogID         *string          `json:"log_id" validate:"required"`
	DashboardView *string          `json:"dashboard_view" validate:"required"`
	LogSummary    *DebugLogSummary `json:"log_summary" validate:"required"`
}

func (e DebugLogEntry) MarshalJSON() ([]byte, error) { return Marshal(&e) }

func (e *DebugLogEntry) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, e) }

// DebugLogSummary summarizes the logged upstream request.
type DebugLogSummary struct {
	Base

	URL        *string `json:"url" validate:"required"`
	Method     *string `json:"method" validate:"required"`
	StatusCode *int    `json:"status_code" validate:"required"`
}

func (s DebugLogSummary) MarshalJSON() ([]byte, error) { return Marshal(&s) }

func (s *DebugLogSummary) UnmarshalJSON(data []byte) error { return UnmarshalInto(data, s) }
