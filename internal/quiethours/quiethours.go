package quiethours

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Checker reports whether quiet hours (do not disturb) are active
type Checker interface {
	Active() bool
}

// Static is a Checker with a fixed answer
type Static bool

// Active implements Checker
func (s Static) Active() bool { return bool(s) }

// Any is active when at least one of its checkers is. Nil entries are skipped.
type Any []Checker

// Active implements Checker
func (a Any) Active() bool {
	for _, c := range a {
		if c != nil && c.Active() {
			return true
		}
	}
	return false
}

// CommandRunner runs an external command and returns its stdout
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// MacOS reads the Notification Center do-not-disturb preference.
// An unset or unreadable preference counts as inactive.
type MacOS struct {
	run     CommandRunner
	timeout time.Duration
}

// NewMacOS creates a checker backed by the `defaults` tool
func NewMacOS() *MacOS {
	return &MacOS{run: execRunner, timeout: 2 * time.Second}
}

// Active implements Checker
func (m *MacOS) Active() bool {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	out, err := m.run(ctx, "defaults", "-currentHost", "read", "com.apple.notificationcenterui", "doNotDisturb")
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(string(out))) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Window is a daily quiet period in local time. End may be earlier than
// Start, in which case the window wraps midnight.
type Window struct {
	Start time.Duration // offset from midnight
	End   time.Duration
	now   func() time.Time
}

// ParseWindow parses "HH:MM-HH:MM"
func ParseWindow(s string) (*Window, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return nil, fmt.Errorf("invalid quiet hours %q (want HH:MM-HH:MM)", s)
	}

	start, err := parseClock(from)
	if err != nil {
		return nil, fmt.Errorf("invalid quiet hours start: %w", err)
	}
	end, err := parseClock(to)
	if err != nil {
		return nil, fmt.Errorf("invalid quiet hours end: %w", err)
	}
	if start == end {
		return nil, fmt.Errorf("invalid quiet hours %q: start equals end", s)
	}

	return &Window{Start: start, End: end, now: time.Now}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Active implements Checker
func (w *Window) Active() bool {
	return w.Contains(w.now())
}

// Contains reports whether t falls inside the window. Start is inclusive,
// End exclusive.
func (w *Window) Contains(t time.Time) bool {
	offset := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute

	if w.Start < w.End {
		return offset >= w.Start && offset < w.End
	}
	return offset >= w.Start || offset < w.End
}

func (w *Window) String() string {
	return fmt.Sprintf("%s-%s", clock(w.Start), clock(w.End))
}

func clock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
