package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePresenter_WritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	doc := "<!DOCTYPE html><html></html>"

	if err := (FilePresenter{Path: path}).Present(doc); err != nil {
		t.Fatalf("present: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != doc {
		t.Fatalf("wrote %q, want %q", got, doc)
	}
}

func TestFilePresenter_EmptyPath(t *testing.T) {
	if err := (FilePresenter{}).Present("x"); err == nil {
		t.Fatalf("expected an error for a missing path")
	}
}
