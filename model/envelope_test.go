package model

import (
	"encoding/json"
	"testing"
)

func TestPage_EmptyIsTerminal(t *testing.T) {
	p, err := Unmarshal[Page[person]]([]byte(`{"next":null,"previous":null,"results":[]}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Results == nil || len(p.Results) != 0 {
		t.Errorf("Results = %v, want empty non-nil slice", p.Results)
	}
	if p.Next != nil || p.Previous != nil {
		t.Errorf("cursors = %v, %v; want nil", p.Next, p.Previous)
	}
	if !p.IsTerminal() || p.HasNext() || p.HasPrevious() {
		t.Error("empty page with null cursors should be terminal")
	}
}

func TestPage_Cursors(t *testing.T) {
	p, err := Unmarshal[Page[person]]([]byte(`{
		"next": "cD0yMDIxLTAxLTA2",
		"previous": "cj0xJnA9MjAyMQ==",
		"results": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}]
	}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !p.HasNext() || p.NextCursor() != "cD0yMDIxLTAxLTA2" {
		t.Errorf("next = %v", p.Next)
	}
	if !p.HasPrevious() {
		t.Error("HasPrevious() = false, want true")
	}
	if p.IsTerminal() {
		t.Error("page with a next cursor is not terminal")
	}
	if len(p.Results) != 2 || *p.Results[1].ID != "b" {
		t.Errorf("Results = %v", p.Results)
	}

	// Cursors are echoed back verbatim.
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	again, err := Unmarshal[Page[person]](data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if again.NextCursor() != p.NextCursor() || *again.Previous != *p.Previous {
		t.Errorf("cursors changed in round trip: %s", data)
	}
}

func TestResponse_Normalization(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		warnings  int
		errors    int
		debugMode bool
		logs      int
	}{
		{
			name: "lists absent",
			json: `{"model": {"name": "Ada"}}`,
		},
		{
			name: "lists null",
			json: `{"model": {"name": "Ada"}, "warnings": null, "errors": null}`,
		},
		{
			name:   "problems reported",
			json:   `{"model": {"name": "Ada"}, "warnings": [], "errors": [{"source": {"pointer": "/name"}, "title": "Missing", "detail": "name", "problem_type": "MISSING_REQUIRED_FIELD"}]}`,
			errors: 1,
		},
		{
			name:      "debug on, nothing logged",
			json:      `{"model": {"name": "Ada"}, "warnings": [], "errors": [], "logs": []}`,
			debugMode: true,
		},
		{
			name:      "debug on with logs",
			json:      `{"model": {"name": "Ada"}, "warnings": [], "errors": [], "logs": [{"log_id": "l1", "dashboard_view": "https://app.merge.dev/logs/l1", "log_summary": {"url": "https://api/x", "method": "POST", "status_code": 201}}]}`,
			debugMode: true,
			logs:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Unmarshal[Response[person]]([]byte(tt.json))
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if r.Model == nil || *r.Model.Name != "Ada" {
				t.Errorf("Model = %v", r.Model)
			}
			if r.Warnings == nil || r.Errors == nil {
				t.Fatal("Warnings and Errors must never be nil")
			}
			if len(r.Warnings) != tt.warnings || len(r.Errors) != tt.errors {
				t.Errorf("warnings=%d errors=%d, want %d %d", len(r.Warnings), len(r.Errors), tt.warnings, tt.errors)
			}
			if r.DebugMode() != tt.debugMode {
				t.Errorf("DebugMode() = %v, want %v", r.DebugMode(), tt.debugMode)
			}
			if len(r.Logs) != tt.logs {
				t.Errorf("logs = %d, want %d", len(r.Logs), tt.logs)
			}
			if r.HasProblems() != (tt.errors+tt.warnings > 0) {
				t.Errorf("HasProblems() = %v", r.HasProblems())
			}
		})
	}
}

func TestResponse_Details(t *testing.T) {
	var r Response[person]
	err := json.Unmarshal([]byte(`{
		"model": {"name": "Ada"},
		"warnings": [{"source": {"pointer": "/model/age"}, "title": "Ignored", "detail": "age is read-only", "problem_type": "UNSUPPORTED_FIELD"}],
		"errors": [],
		"logs": [{"log_id": "l1", "dashboard_view": "https://app.merge.dev/logs/l1", "log_summary": {"url": "https://api/x", "method": "POST", "status_code": 201}}]
	}`), &r)
	if err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	w := r.Warnings[0]
	if *w.Source.Pointer != "/model/age" || *w.ProblemType != "UNSUPPORTED_FIELD" {
		t.Errorf("warning = %+v", w)
	}
	if got := *r.Logs[0].LogSummary.StatusCode; got != 201 {
		t.Errorf("status_code = %d, want 201", got)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if err := ValidateJSON[Response[person]](data); err != nil {
		t.Errorf("re-encoded response does not validate: %v", err)
	}
}

func TestResponse_ValidateRequiresLists(t *testing.T) {
	err := ValidateJSON[Response[person]]([]byte(`{"model": {"name": "Ada"}}`))
	problems := ValidationErrors(err)
	if len(problems) != 2 || problems[0].Path != "warnings" || problems[1].Path != "errors" {
		t.Errorf("ValidateJSON() = %v, want warnings and errors missing", err)
	}
}
