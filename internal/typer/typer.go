// Package typer sends literal text to the keyboard. The exec backends
// shell out to the usual X11/Wayland injection tools; Print writes to a
// stream for dry runs and tests.
package typer

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"
)

// Typer simulates keyboard input for a literal string. delay is the
// pause between two keystrokes.
type Typer interface {
	Type(ctx context.Context, text string, delay time.Duration) error
}

// New returns the backend registered under name. Print backends write
// to out.
func New(name string, out io.Writer) (Typer, error) {
	switch name {
	case "xdotool":
		return XDoTool{}, nil
	case "wtype":
		return Wtype{}, nil
	case "print":
		return Print{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown typer %q (valid: xdotool, wtype, print)", name)
	}
}

// XDoTool injects keystrokes through xdotool (X11).
type XDoTool struct{}

func (XDoTool) Type(ctx context.Context, text string, delay time.Duration) error {
	return runTool(ctx, "xdotool", xdotoolArgs(text, delay))
}

func xdotoolArgs(text string, delay time.Duration) []string {
	return []string{"type", "--delay", strconv.FormatInt(delay.Milliseconds(), 10), "--", text}
}

// Wtype injects keystrokes through wtype (Wayland).
type Wtype struct{}

func (Wtype) Type(ctx context.Context, text string, delay time.Duration) error {
	return runTool(ctx, "wtype", wtypeArgs(text, delay))
}

func wtypeArgs(text string, delay time.Duration) []string {
	return []string{"-d", strconv.FormatInt(delay.Milliseconds(), 10), "--", text}
}

func runTool(ctx context.Context, tool string, args []string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", tool, err, out)
		}
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}

// Print writes the text to Out instead of typing it. Used by -dry-run.
type Print struct {
	Out io.Writer
}

func (p Print) Type(_ context.Context, text string, _ time.Duration) error {
	_, err := io.WriteString(p.Out, text)
	return err
}
