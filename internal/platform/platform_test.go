package platform

import (
	"errors"
	"testing"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos    string
		want    Platform
		wantErr bool
	}{
		{"windows", Win32, false},
		{"darwin", Darwin, false},
		{"linux", Linux, false},
		{"freebsd", "", true},
		{"plan9", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := FromGOOS(tt.goos)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupported) {
					t.Fatalf("FromGOOS(%q) error = %v, want ErrUnsupported", tt.goos, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromGOOS(%q) unexpected error: %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("FromGOOS(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	got, err := Select(true, "freebsd")
	if err != nil {
		t.Fatalf("Select(all) on unsupported OS: %v", err)
	}
	if len(got) != 3 || got[0] != Win32 || got[1] != Darwin || got[2] != Linux {
		t.Errorf("Select(all) = %v, want %v", got, All)
	}

	// callers must not be able to mutate All through the result
	got[0] = Linux
	if All[0] != Win32 {
		t.Error("Select(all) returned the package-level slice")
	}

	got, err = Select(false, "darwin")
	if err != nil {
		t.Fatalf("Select(darwin): %v", err)
	}
	if len(got) != 1 || got[0] != Darwin {
		t.Errorf("Select(darwin) = %v", got)
	}

	if _, err := Select(false, "aix"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Select(aix) error = %v, want ErrUnsupported", err)
	}
}

func TestScriptExt(t *testing.T) {
	for p, want := range map[Platform]string{Win32: "bat", Darwin: "sh", Linux: "sh"} {
		if got := p.ScriptExt(); got != want {
			t.Errorf("%s.ScriptExt() = %q, want %q", p, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	if p, err := Parse("linux"); err != nil || p != Linux {
		t.Errorf("Parse(linux) = %q, %v", p, err)
	}
	_, err := Parse("windows")
	if err == nil {
		t.Fatal("Parse(windows) accepted a GOOS name")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Errorf("Parse(windows) error = %v, should not report an unsupported host", err)
	}
}

func TestNames(t *testing.T) {
	want := "['win32', 'darwin', 'linux']"
	if got := Names(All); got != want {
		t.Errorf("Names(All) = %q, want %q", got, want)
	}
}
