package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// DefaultInfoURL is the station page opened when the widget is activated
const DefaultInfoURL = "https://www.kiteriders.at/wind/weatherstat_kn.html"

// Opener launches a URL in the user's default browser
type Opener interface {
	Open(url string) error
}

// System opens URLs with the platform launcher
type System struct {
	goos  string
	start func(name string, args ...string) error
}

// NewSystem creates an opener for the running platform
func NewSystem() *System {
	return &System{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap the launcher without waiting on it
			go cmd.Wait()
			return nil
		},
	}
}

// Open implements Opener. It returns once the launcher has started.
func (s *System) Open(url string) error {
	name, args := launcher(s.goos, url)
	if err := s.start(name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

func launcher(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
