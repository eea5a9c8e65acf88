package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/merge-api/merge-go-client/testutil"
	"github.com/merge-api/merge-go-client/value"
)

func newEnv(input string) (*env, *bytes.Buffer) {
	var out bytes.Buffer
	return &env{
		ctx: context.Background(),
		in:  strings.NewReader(input),
		out: &out,
		log: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}, &out
}

func TestVersionFrom(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{name: "no build info", want: "0.1.0"},
		{name: "module version", info: &debug.BuildInfo{Main: debug.Module{Version: "v0.1.0"}}, ok: true, want: "v0.1.0"},
		{name: "devel", info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, ok: true, want: "devel-0.1.0"},
		{
			name: "devel with revision",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abcdef0123456"}},
			},
			ok:   true,
			want: "devel-0.1.0+abcdef0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionFrom("0.1.0", tt.info, tt.ok); got != tt.want {
				t.Errorf("versionFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr string
	}{
		{name: "hris.employees", want: "hris.employees"},
		{name: "HRIS.Employees", want: "hris.employees"},
		{name: "ats.auditTrail", want: "ats.audit-trail"},
		{name: "crm.sync_status", want: "crm.sync-status"},
		{name: "Invoice", want: "accounting.invoices"},
		{name: "ticket", want: "ticketing.tickets"},
		{name: "hris.payslips", wantErr: "unknown resource"},
		{name: "Payslip", wantErr: "unknown resource"},
		{name: "AuditLogEvent", wantErr: "name one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := lookup(tt.name)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("lookup() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup() error = %v", err)
			}
			if r.String() != tt.want {
				t.Errorf("lookup() = %s, want %s", r, tt.want)
			}
		})
	}
}

func TestValidateCmd(t *testing.T) {
	e, out := newEnv(`{"work_email":"nope","start_date":"yesterday"}`)
	err := (&ValidateCmd{Resource: "hris.employees", File: "-"}).Run(&Globals{}, e)
	if err == nil || err.Error() != "2 validation problem(s)" {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{"Employee.work_email: must be a valid email address", "Employee.start_date: expected date-time"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	e, out = newEnv(`{"id":"e1"}`)
	if err := (&ValidateCmd{Resource: "Employee"}).Run(&Globals{}, e); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "ok: Employee\n" {
		t.Errorf("output = %q", out)
	}
}

func TestValidateCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticket.json")
	if err := os.WriteFile(path, []byte(`{"ticket_url":"not a url"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	e, out := newEnv("")
	if err := (&ValidateCmd{Resource: "ticketing.tickets", File: path}).Run(&Globals{}, e); err == nil {
		t.Fatal("Run() error = nil")
	}
	if !strings.Contains(out.String(), "Ticket.ticket_url: must be a valid URL") {
		t.Errorf("output = %q", out)
	}
}

func TestRoundtripCmd(t *testing.T) {
	e, out := newEnv(`{"id":"inv","total_amount":"12.50","currency":"XTS","extra":true}`)
	if err := (&RoundtripCmd{Resource: "accounting.invoices"}).Run(&Globals{Output: "compact"}, e); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	v := value.MustParse(out.String())
	if got, _ := v.Get("total_amount"); got.String() != "12.5" {
		t.Errorf("total_amount = %s", got)
	}
	if got, _ := v.Get("currency"); !value.Equal(got, value.String("XTS")) {
		t.Errorf("currency = %v", got)
	}
	if strings.Contains(out.String(), "\n  ") {
		t.Errorf("compact output is indented: %s", out)
	}
}

func TestSchemaCmd(t *testing.T) {
	e, out := newEnv("")
	if err := (&SchemaCmd{Resources: []string{"filestorage.files"}}).Run(&Globals{Output: "pretty"}, e); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	v := value.MustParse(out.String())
	if n := len(v.Elements()); n != 1 {
		t.Fatalf("descriptors = %d, want 1", n)
	}
	if !strings.Contains(out.String(), `"permissions"`) || !strings.Contains(out.String(), "\n  ") {
		t.Errorf("output = %s", out)
	}
}

func writeConfig(t *testing.T, srv *testutil.Server) string {
	t.Helper()
	cfg := srv.Config()
	path := filepath.Join(t.TempDir(), "merge.yaml")
	body := "base_url: " + cfg.BaseURL + "\napi_key: " + cfg.APIKey + "\naccount_token: " + cfg.AccountToken + "\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListCmd(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.JSON(http.MethodGet, "/hris/v1/employees", http.StatusOK, `{"next":null,"previous":null,"results":[{"id":"e1","manager":"e0"}]}`)

	e, out := newEnv("")
	g := &Globals{Config: writeConfig(t, srv), Output: "compact"}
	cmd := &ListCmd{Resource: "hris.employees", PageSize: 50, Expand: []string{"manager", "company"}, IncludeRemoteData: true}
	if err := cmd.Run(g, e); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, _ := value.Lookup(value.MustParse(out.String()), "results.0.manager")
	if !value.Equal(got, value.String("e0")) {
		t.Errorf("results.0.manager = %v in %s", got, out)
	}
	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "page_size", "50")
	testutil.AssertQuery(t, req, "expand", "manager,company")
	testutil.AssertQuery(t, req, "include_remote_data", "true")
	testutil.AssertHeader(t, req, "Authorization", "Bearer "+testutil.APIKey)
	if ua := req.Header.Get("User-Agent"); !strings.HasPrefix(ua, "mergectl/") {
		t.Errorf("User-Agent = %q", ua)
	}
}

func TestGetCmd_NotFound(t *testing.T) {
	srv := testutil.NewServer(t)
	e, _ := newEnv("")
	err := (&GetCmd{Resource: "crm.contacts", ID: "missing"}).Run(&Globals{Config: writeConfig(t, srv)}, e)
	if err == nil || !strings.Contains(err.Error(), "not_found") {
		t.Errorf("Run() error = %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, flush := newLogger(zapcore.AddSync(&buf), slog.LevelWarn, false)
	logger.Info("hidden")
	logger.Warn("shown", "endpoint", "hris.employees.list")
	flush()

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info entry logged at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"endpoint":"hris.employees.list"`) {
		t.Errorf("output = %s", buf.String())
	}
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zapcore.Level
	}{
		{slog.LevelDebug, zapcore.DebugLevel},
		{slog.LevelInfo, zapcore.InfoLevel},
		{slog.LevelWarn, zapcore.WarnLevel},
		{slog.LevelError, zapcore.ErrorLevel},
		{slog.LevelError + 4, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		if got := zapLevel(tt.in); got != tt.want {
			t.Errorf("zapLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
