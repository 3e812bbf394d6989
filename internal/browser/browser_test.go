package browser

import (
	"errors"
	"reflect"
	"testing"
)

func TestLauncher(t *testing.T) {
	const url = "https://example.com/wind"

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{url}},
		{"linux", "xdg-open", []string{url}},
		{"freebsd", "xdg-open", []string{url}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := launcher(tt.goos, url)
			if name != tt.wantName {
				t.Errorf("name = %s, want %s", name, tt.wantName)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSystem_Open(t *testing.T) {
	var gotName string
	s := &System{
		goos: "darwin",
		start: func(name string, args ...string) error {
			gotName = name
			return nil
		},
	}

	if err := s.Open(DefaultInfoURL); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if gotName != "open" {
		t.Errorf("launched %s, want open", gotName)
	}
}

func TestSystem_OpenError(t *testing.T) {
	boom := errors.New("no launcher")
	s := &System{
		goos:  "linux",
		start: func(name string, args ...string) error { return boom },
	}

	err := s.Open(DefaultInfoURL)
	if !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want wrapping %v", err, boom)
	}
}
