package report

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// Presenter shows a rendered report document to the user. Failing to open a
// display surface is an explicit, observable error, not a silent no-op;
// callers decide whether to surface or swallow it.
type Presenter interface {
	Present(htmlDoc string) error
}

// FilePresenter writes the document to a fixed path.
type FilePresenter struct {
	Path string
}

func (p FilePresenter) Present(htmlDoc string) error {
	if p.Path == "" {
		return fmt.Errorf("missing output path")
	}
	return os.WriteFile(p.Path, []byte(htmlDoc), 0o644)
}

// BrowserPresenter writes the document to a temp file and opens it with the
// platform opener so the user can review and print it.
type BrowserPresenter struct{}

func (BrowserPresenter) Present(htmlDoc string) error {
	f, err := os.CreateTemp("", "claimguide-report-*.html")
	if err != nil {
		return err
	}
	path := f.Name()
	if _, err := f.WriteString(htmlDoc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return openInBrowser(path)
}

func openInBrowser(path string) error {
	name, args := openerCommand()
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no browser opener available (%s): %w", name, err)
	}
	cmd := exec.Command(name, append(args, path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open report: %w", err)
	}
	// Fire and forget: the opener process owns the surface from here. Reap it
	// in the background so we don't leave a zombie behind.
	go func() {
		done := make(chan struct{})
		go func() { _ = cmd.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(30 * time.Second):
		}
	}()
	return nil
}

func openerCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	default:
		return "xdg-open", nil
	}
}
