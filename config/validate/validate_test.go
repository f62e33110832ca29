package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRequireURL(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		required bool
		ok       bool
	}{
		{"valid http", "http://localhost:8000", true, true},
		{"valid https", "https://example.com/page", true, true},
		{"missing scheme", "example.com", true, false},
		{"wrong scheme", "ftp://example.com", true, false},
		{"no host", "http://", true, false},
		{"empty required", "", true, false},
		{"empty optional", "", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v ValidationErrors
			got := RequireURL(&v, "test/url", tc.value, tc.required)
			if got != tc.ok {
				t.Errorf("RequireURL(%q) = %v, want %v", tc.value, got, tc.ok)
			}
			if v.HasErrors() == tc.ok {
				t.Errorf("error aggregation mismatch for %q", tc.value)
			}
		})
	}
}

func TestRequireTimezone(t *testing.T) {
	var v ValidationErrors
	loc, ok := RequireTimezone(&v, "site/timezone", "America/Chicago")
	if !ok || loc == nil || loc.String() != "America/Chicago" {
		t.Errorf("valid timezone rejected: %v %v", loc, ok)
	}

	if _, ok := RequireTimezone(&v, "site/timezone", "Mars/Olympus"); ok {
		t.Error("invalid timezone accepted")
	}
	if _, ok := RequireTimezone(&v, "site/timezone", ""); ok {
		t.Error("empty timezone accepted")
	}
}

func TestRequireLanguage(t *testing.T) {
	var v ValidationErrors
	tag, ok := RequireLanguage(&v, "site/language", "en")
	if !ok || tag.String() != "en" {
		t.Errorf("valid tag rejected: %v %v", tag, ok)
	}
	if _, ok := RequireLanguage(&v, "site/language", "de-AT"); !ok {
		t.Error("regional tag rejected")
	}
	if _, ok := RequireLanguage(&v, "site/language", "not a tag"); ok {
		t.Error("invalid tag accepted")
	}
}

func TestRequireRelPath(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"feeds/all.atom.xml", true},
		{"themes/minimalxy", true},
		{"/feeds/all.atom.xml", false},
		{"../outside", false},
		{"a/../../outside", false},
		{"", false},
	}
	for _, tc := range cases {
		var v ValidationErrors
		if got := RequireRelPath(&v, "feeds/all_atom", tc.value); got != tc.ok {
			t.Errorf("RequireRelPath(%q) = %v, want %v", tc.value, got, tc.ok)
		}
	}
}

func TestRequireOneOf(t *testing.T) {
	allowed := []string{"pelican", "json", "yaml"}

	var v ValidationErrors
	if !RequireOneOf(&v, "export/format", "json", allowed) {
		t.Error("allowed value rejected")
	}
	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Error())
	}

	if RequireOneOf(&v, "export/format", "toml", allowed) {
		t.Error("disallowed value accepted")
	}
	if !strings.Contains(v.Error(), "export/format must be one of") {
		t.Errorf("unexpected message: %s", v.Error())
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cases := []struct {
		name     string
		dir      string
		required bool
		wantErr  bool
	}{
		{"existing dir", dir, true, false},
		{"missing required", filepath.Join(dir, "nope"), true, true},
		{"missing optional", filepath.Join(dir, "nope"), false, false},
		{"file not dir", file, true, true},
		{"empty required", "", true, true},
		{"empty optional", "", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v ValidationErrors
			CheckDir("test/dir", tc.dir, tc.required, &v)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("HasErrors = %v, want %v", v.HasErrors(), tc.wantErr)
			}
		})
	}
}

func TestValidationErrorsAggregate(t *testing.T) {
	var v ValidationErrors
	RequireString(&v, "a", "")
	RequireIntMin(&v, "b", 0, 1)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	msg := v.Error()
	if !strings.Contains(msg, "a is required") || !strings.Contains(msg, "b must be at least 1") {
		t.Errorf("aggregate message missing findings:\n%s", msg)
	}
}
