package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"claimguide/internal/report"
	"claimguide/internal/wizard"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestSteps_ListsTheGuidedSequence(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"steps"})
	if err != nil {
		t.Fatalf("steps: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(stdout, &rows); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if len(rows) != len(wizard.Steps) {
		t.Fatalf("expected %d steps, got %d", len(wizard.Steps), len(rows))
	}
	if id, _ := rows[0]["id"].(string); id != "welcome" {
		t.Fatalf("first step id = %q", id)
	}
	if id, _ := rows[len(rows)-1]["id"].(string); id != "summary" {
		t.Fatalf("last step id = %q", id)
	}
	if kind, _ := rows[2]["kind"].(string); kind != "form" {
		t.Fatalf("personal step kind = %q", kind)
	}
}

func TestDocs_ListsTheCatalog(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"docs", "--pretty"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(stdout, &rows); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if len(rows) != len(report.Catalog) {
		t.Fatalf("expected %d catalog entries, got %d", len(report.Catalog), len(rows))
	}
	if key, _ := rows[0]["key"].(string); key != "basic-id" {
		t.Fatalf("first catalog key = %q", key)
	}
}

func TestSteps_EDNFormat(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"steps", "--format", "edn"})
	if err != nil {
		t.Fatalf("steps --format edn: %v", err)
	}
	out := string(stdout)
	if !strings.Contains(out, ":id") || !strings.Contains(out, "\"welcome\"") {
		t.Fatalf("unexpected edn output:\n%s", out)
	}
}

func TestReport_HTMLToStdout(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"report"})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	out := string(stdout)
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected an HTML document, got:\n%.80s", out)
	}
	if !strings.Contains(out, report.NameFallback) {
		t.Fatalf("empty-session report should use the name fallback")
	}
}

func TestReport_OutFlagWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	stdout, _, err := runCLI(t, []string{"report", "--out", path})
	if err != nil {
		t.Fatalf("report --out: %v", err)
	}
	if !strings.Contains(string(stdout), path) {
		t.Fatalf("expected the written path on stdout, got %q", stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Fatalf("file does not contain the report")
	}
}

func TestReport_DataOnly(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"report", "--data-only", "--pretty"})
	if err != nil {
		t.Fatalf("report --data-only: %v", err)
	}
	var r map[string]any
	if err := json.Unmarshal(stdout, &r); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout)
	}
	if name, _ := r["insuredName"].(string); name != report.NameFallback {
		t.Fatalf("insuredName = %q", name)
	}
	missing, _ := r["docsMissing"].([]any)
	if len(missing) != len(report.Catalog) {
		t.Fatalf("expected every catalog doc missing, got %d", len(missing))
	}
	sections, _ := r["formSections"].([]any)
	if len(sections) != 5 {
		t.Fatalf("expected 5 form sections, got %d", len(sections))
	}
}

func TestUnknownArgsShowHelp(t *testing.T) {
	stdout, _, err := runCLI(t, []string{"bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(stdout), "Usage:") {
		t.Fatalf("expected help output, got:\n%s", stdout)
	}
}
