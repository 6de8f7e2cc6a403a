package volume

import (
	"errors"
	"testing"
)

func TestValidateName_Valid(t *testing.T) {
	names := []string{
		"data",
		"my-volume",
		"my_volume",
		"v1.2.3",
		"0abc",
		"A",
	}
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v, want nil", name, err)
		}
	}
}

func TestValidateName_Invalid(t *testing.T) {
	names := []string{
		"",
		"-leading-dash",
		".leading-dot",
		"_leading-underscore",
		"has space",
		"has/slash",
		"has:colon",
	}
	for _, name := range names {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) expected error, got nil", name)
		}
	}
}

func TestCheckRelative_Valid(t *testing.T) {
	paths := []string{
		"file.txt",
		"dir/file.txt",
		"./file.txt",
		"dir/../file.txt",
		"a/b/c",
	}
	for _, p := range paths {
		if err := CheckRelative(p); err != nil {
			t.Errorf("CheckRelative(%q) error = %v, want nil", p, err)
		}
	}
}

func TestCheckRelative_Invalid(t *testing.T) {
	paths := []string{
		"",
		"/etc/passwd",
		"/file.txt",
	}
	for _, p := range paths {
		if err := CheckRelative(p); err == nil {
			t.Errorf("CheckRelative(%q) expected error, got nil", p)
		}
	}
}

func TestCheckRelative_Escape(t *testing.T) {
	paths := []string{
		"..",
		"../file.txt",
		"dir/../../file.txt",
		"a/b/../../../c",
	}
	for _, p := range paths {
		err := CheckRelative(p)
		if err == nil {
			t.Fatalf("CheckRelative(%q) expected error, got nil", p)
		}

		var escErr *EscapeError
		if !errors.As(err, &escErr) {
			t.Errorf("CheckRelative(%q) error type = %T, want *EscapeError", p, err)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"", "/volume"},
		{"file.txt", "/volume/file.txt"},
		{"dir/file.txt", "/volume/dir/file.txt"},
		{"./file.txt", "/volume/file.txt"},
		{"dir/../file.txt", "/volume/file.txt"},
	}
	for _, tt := range tests {
		got := ResolveTarget("/volume", tt.rel)
		if got != tt.want {
			t.Errorf("ResolveTarget(/volume, %q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestResolveTargets_PreservesOrder(t *testing.T) {
	got := ResolveTargets("/volume", []string{"b.txt", "a.txt", "z/c.txt"})
	want := []string{"/volume/b.txt", "/volume/a.txt", "/volume/z/c.txt"}

	if len(got) != len(want) {
		t.Fatalf("ResolveTargets() returned %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveTargets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
