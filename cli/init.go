package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plumekit/plume/config"
)

const starterConfig = `site:
  name: My Site
  url: http://localhost:8000
  content: content
  timezone: UTC
  language: en
  relative_urls: false

author:
  name: Jane Author
  intro: Hi! I write here.
  description: Hi! I write here.
  avatar: ""
  web: ""

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
    url: https://github.com/example

# false disables paging; a number sets the page size
pagination: false

# feeds stay off while developing; the publish profile turns them on
feeds:
  all_atom: null
  category_atom: null
  translation_atom: null
  author_atom: null
  author_rss: null

profiles:
  publish:
    site:
      url: https://example.github.io
    feeds:
      all_atom: feeds/all.atom.xml
      category_atom: feeds/{slug}.atom.xml
`

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	dir := fs.String("dir", ".", "directory to initialize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target := filepath.Join(*dir, config.DefaultPath)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s already exists", target)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(starterConfig), 0o644); err != nil {
		return err
	}
	fmt.Printf("created %s\n", target)
	return nil
}
