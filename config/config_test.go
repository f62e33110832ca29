package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
site:
  name: smarlowucf
  url: http://localhost:8000
  timezone: America/Chicago
  language: en

author:
  name: Sean Marlow
  intro: Hi! I'm Sean - a developer.
  description: Hi! I'm Sean - a developer.
  avatar: https://example.com/avatar.jpg
  web: https://example.github.io

theme: themes/minimalxy

menu:
  display_pages: true
  items: []

blogroll:
  - name: Pelican
    url: http://getpelican.com/
  - name: Python.org
    url: http://python.org/

social:
  - platform: github
    url: https://github.com/smarlowucf

pagination: false

feeds:
  all_atom: null
  author_rss: null

profiles:
  publish:
    site:
      url: https://smarlowucf.github.io
    pagination: 10
    feeds:
      all_atom: feeds/all.atom.xml
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plume.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rec := cfg.Base()
	if rec.Site.Name != "smarlowucf" {
		t.Errorf("site name = %q", rec.Site.Name)
	}
	if rec.Site.URL != "http://localhost:8000" {
		t.Errorf("site url = %q", rec.Site.URL)
	}
	if rec.Site.Location == nil || rec.Site.Location.String() != "America/Chicago" {
		t.Errorf("location = %v", rec.Site.Location)
	}
	if rec.Site.Lang.String() != "en" {
		t.Errorf("lang = %v", rec.Site.Lang)
	}
	if got := len(rec.Blogroll); got != 2 {
		t.Errorf("blogroll entries = %d", got)
	}
	if rec.Pagination.Enabled() {
		t.Error("pagination should be disabled in base")
	}
	if rec.Feeds.AllAtom != nil {
		t.Errorf("all_atom = %v", *rec.Feeds.AllAtom)
	}
	if got := cfg.ProfileNames(); len(got) != 1 || got[0] != "publish" {
		t.Errorf("profiles = %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
site:
  name: minimal
  url: http://localhost:8000
author:
  name: Someone
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := cfg.Base()
	if rec.Site.Content != "content" {
		t.Errorf("content default = %q", rec.Site.Content)
	}
	if rec.Site.Timezone != "UTC" {
		t.Errorf("timezone default = %q", rec.Site.Timezone)
	}
	if rec.Site.Language != "en" {
		t.Errorf("language default = %q", rec.Site.Language)
	}
	if !rec.Menu.DisplayPagesOnMenu() {
		t.Error("display_pages should default to true")
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("history path default = %q", cfg.History.Path)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing site name",
			yaml: `
site:
  url: http://localhost:8000
author:
  name: Someone
`,
			want: "site/name is required",
		},
		{
			name: "bad url",
			yaml: `
site:
  name: x
  url: localhost:8000
author:
  name: Someone
`,
			want: "site/url",
		},
		{
			name: "unknown timezone",
			yaml: `
site:
  name: x
  url: http://localhost:8000
  timezone: America/Nowhere
author:
  name: Someone
`,
			want: "unknown timezone",
		},
		{
			name: "bad language",
			yaml: `
site:
  name: x
  url: http://localhost:8000
  language: not_a_tag!
author:
  name: Someone
`,
			want: "invalid language tag",
		},
		{
			name: "duplicate blogroll name",
			yaml: `
site:
  name: x
  url: http://localhost:8000
author:
  name: Someone
blogroll:
  - name: Pelican
    url: http://getpelican.com/
  - name: Pelican
    url: http://example.com/
`,
			want: "duplicate name",
		},
		{
			name: "absolute feed path",
			yaml: `
site:
  name: x
  url: http://localhost:8000
author:
  name: Someone
feeds:
  all_atom: /feeds/all.atom.xml
`,
			want: "must be relative",
		},
		{
			name: "pagination true",
			yaml: `
site:
  name: x
  url: http://localhost:8000
author:
  name: Someone
pagination: true
`,
			want: "pagination must be false or a page size",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to contain %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestExportSection(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Format != "pelican" {
		t.Errorf("export format default = %q", cfg.Export.Format)
	}

	cfg, err = Load(writeConfig(t, validYAML+`
export:
  format: json
  out: out/settings.json
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Format != "json" || cfg.Export.Out != "out/settings.json" {
		t.Errorf("export section = %+v", cfg.Export)
	}
}

func TestExportInvalidFormat(t *testing.T) {
	_, err := Load(writeConfig(t, validYAML+`
export:
  format: toml
`))
	if err == nil {
		t.Fatal("expected error for unknown export format")
	}
	if !strings.Contains(err.Error(), "export/format must be one of") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMenuRelativeTargets(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
site:
  name: x
  url: http://localhost:8000
author:
  name: Someone
menu:
  items:
    - name: About
      url: /pages/about.html
    - name: Blog
      url: https://example.com/blog
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	items := cfg.Base().Menu.Items
	if len(items) != 2 || items[0].URL != "/pages/about.html" {
		t.Errorf("menu items = %+v", items)
	}
}

func TestResolveProfile(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rec, err := cfg.Resolve("publish")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Site.URL != "https://smarlowucf.github.io" {
		t.Errorf("overlay url = %q", rec.Site.URL)
	}
	// untouched base values survive the overlay
	if rec.Site.Name != "smarlowucf" {
		t.Errorf("overlay name = %q", rec.Site.Name)
	}
	if rec.Author.Name != "Sean Marlow" {
		t.Errorf("overlay author = %q", rec.Author.Name)
	}
	if !rec.Pagination.Enabled() || rec.Pagination.Size != 10 {
		t.Errorf("overlay pagination = %+v", rec.Pagination)
	}
	if rec.Feeds.AllAtom == nil || *rec.Feeds.AllAtom != "feeds/all.atom.xml" {
		t.Errorf("overlay all_atom = %v", rec.Feeds.AllAtom)
	}
	// the per-key feed merge leaves sibling feeds disabled
	if rec.Feeds.AuthorRSS != nil {
		t.Errorf("overlay author_rss = %v", *rec.Feeds.AuthorRSS)
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.Resolve("staging"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestResolveReturnsFreshCopy(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, err := cfg.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	a.Site.Name = "mutated"
	b, err := cfg.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if b.Site.Name != "smarlowucf" {
		t.Errorf("mutation leaked between resolves: %q", b.Site.Name)
	}
}

func TestEnvOverlay(t *testing.T) {
	t.Setenv(ENV_PREFIX+"_SITE_URL", "https://override.example.com")
	t.Setenv(ENV_PREFIX+"_AUTHOR", "Env Author")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := cfg.Base()
	if rec.Site.URL != "https://override.example.com" {
		t.Errorf("env url = %q", rec.Site.URL)
	}
	if rec.Author.Name != "Env Author" {
		t.Errorf("env author = %q", rec.Author.Name)
	}
}

func TestEnvBoolOverlay(t *testing.T) {
	relativeYAML := `
site:
  name: x
  url: http://localhost:8000
  relative_urls: true
author:
  name: Someone
`

	t.Run("valid override", func(t *testing.T) {
		t.Setenv(ENV_PREFIX+"_RELATIVE_URLS", "false")
		cfg, err := Load(writeConfig(t, relativeYAML))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Base().Site.RelativeURLs {
			t.Error("env override to false ignored")
		}
	})

	t.Run("malformed value keeps file setting", func(t *testing.T) {
		t.Setenv(ENV_PREFIX+"_RELATIVE_URLS", "banana")
		cfg, err := Load(writeConfig(t, relativeYAML))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !cfg.Base().Site.RelativeURLs {
			t.Error("malformed env value clobbered the file setting")
		}
	})
}

func TestTrailingSlashStripped(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
site:
  name: x
  url: http://localhost:8000/
author:
  name: Someone
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Base().Site.URL; got != "http://localhost:8000" {
		t.Errorf("url = %q", got)
	}
}

func TestMergeMaps(t *testing.T) {
	base := map[string]any{
		"site": map[string]any{"name": "a", "url": "http://a"},
		"blogroll": []any{
			map[string]any{"name": "x", "url": "http://x"},
		},
	}
	overlay := map[string]any{
		"site": map[string]any{"url": "http://b"},
		"blogroll": []any{
			map[string]any{"name": "y", "url": "http://y"},
		},
	}

	out := mergeMaps(base, overlay)

	site := out["site"].(map[string]any)
	if site["name"] != "a" || site["url"] != "http://b" {
		t.Errorf("merged site = %v", site)
	}
	// lists replace wholesale
	roll := out["blogroll"].([]any)
	if len(roll) != 1 || roll[0].(map[string]any)["name"] != "y" {
		t.Errorf("merged blogroll = %v", roll)
	}
	// base is untouched
	if base["site"].(map[string]any)["url"] != "http://a" {
		t.Error("mergeMaps mutated base")
	}
}
