package quiethours

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStaticAndAny(t *testing.T) {
	tests := []struct {
		name    string
		checker Checker
		want    bool
	}{
		{"static off", Static(false), false},
		{"static on", Static(true), true},
		{"any empty", Any{}, false},
		{"any all off", Any{Static(false), Static(false)}, false},
		{"any one on", Any{Static(false), Static(true)}, true},
		{"any skips nil", Any{nil, Static(true)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMacOS_Active(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want bool
	}{
		{"enabled", "1\n", nil, true},
		{"disabled", "0\n", nil, false},
		{"boolean true", "true", nil, true},
		{"unset preference", "", errors.New("exit status 1"), false},
		{"garbage", "maybe", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []string
			m := &MacOS{
				timeout: time.Second,
				run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
					gotArgs = append([]string{name}, args...)
					return []byte(tt.out), tt.err
				},
			}

			if got := m.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
			if len(gotArgs) == 0 || gotArgs[0] != "defaults" {
				t.Errorf("ran %v, want defaults", gotArgs)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "22:00-07:00", want: "22:00-07:00"},
		{in: " 12:30 - 13:45 ", want: "12:30-13:45"},
		{in: "22:00", wantErr: true},
		{in: "25:00-07:00", wantErr: true},
		{in: "22:00-7am", wantErr: true},
		{in: "08:00-08:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, err := ParseWindow(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && w.String() != tt.want {
				t.Errorf("ParseWindow(%q) = %s, want %s", tt.in, w, tt.want)
			}
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2020, 5, 9, h, m, 0, 0, time.Local)
	}

	overnight, err := ParseWindow("22:00-07:00")
	if err != nil {
		t.Fatal(err)
	}
	daytime, err := ParseWindow("12:00-13:30")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		window *Window
		t      time.Time
		want   bool
	}{
		{"overnight before start", overnight, at(21, 59), false},
		{"overnight at start", overnight, at(22, 0), true},
		{"overnight after midnight", overnight, at(3, 15), true},
		{"overnight at end", overnight, at(7, 0), false},
		{"daytime inside", daytime, at(13, 0), true},
		{"daytime at end", daytime, at(13, 30), false},
		{"daytime before", daytime, at(11, 59), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.t.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestWindow_ActiveUsesClock(t *testing.T) {
	w, err := ParseWindow("22:00-07:00")
	if err != nil {
		t.Fatal(err)
	}

	w.now = func() time.Time { return time.Date(2020, 5, 9, 23, 0, 0, 0, time.Local) }
	if !w.Active() {
		t.Error("Active() = false at 23:00, want true")
	}

	w.now = func() time.Time { return time.Date(2020, 5, 9, 9, 0, 0, 0, time.Local) }
	if w.Active() {
		t.Error("Active() = true at 09:00, want false")
	}
}
