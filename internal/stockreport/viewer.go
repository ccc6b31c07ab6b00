package stockreport

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Viewer displays a rendered chart to the user
type Viewer interface {
	// Available reports whether a display can be used at all
	Available() bool
	Show(ctx context.Context, path string) error
}

// SystemViewer hands the image to the platform's default opener
type SystemViewer struct {
	goos    string
	getenv  func(string) string
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewSystemViewer returns a viewer for the running platform
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{
		goos:    runtime.GOOS,
		getenv:  os.Getenv,
		command: exec.CommandContext,
	}
}

// Available is true on darwin and windows, and on other systems when an X11
// or Wayland display is set
func (v *SystemViewer) Available() bool {
	switch v.goos {
	case "darwin", "windows":
		return true
	default:
		return v.getenv("DISPLAY") != "" || v.getenv("WAYLAND_DISPLAY") != ""
	}
}

// Show starts the opener and returns without waiting for the window to close
func (v *SystemViewer) Show(ctx context.Context, path string) error {
	name, args := v.opener(path)
	cmd := v.command(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (v *SystemViewer) opener(path string) (string, []string) {
	switch v.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// noopViewer never shows anything
type noopViewer struct{}

func (noopViewer) Available() bool                    { return false }
func (noopViewer) Show(context.Context, string) error { return nil }
