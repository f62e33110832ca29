package site

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Record is one Site Configuration Record: everything the external
// generator needs to build a site. Records are fixed at authoring time;
// after Load no field is mutated.
type Record struct {
	Site       Identity     `yaml:"site"`
	Author     Author       `yaml:"author"`
	Theme      string       `yaml:"theme"`
	Menu       Menu         `yaml:"menu"`
	Blogroll   []Link       `yaml:"blogroll"`
	Social     []SocialLink `yaml:"social"`
	Feeds      Feeds        `yaml:"feeds"`
	Pagination Pagination   `yaml:"pagination"`
}

type Identity struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	Content      string `yaml:"content"`
	Timezone     string `yaml:"timezone"`
	Language     string `yaml:"language"`
	RelativeURLs bool   `yaml:"relative_urls"`

	Location *time.Location `yaml:"-"`
	Lang     language.Tag   `yaml:"-"`
}

type Author struct {
	Name        string `yaml:"name"`
	Intro       string `yaml:"intro"`
	Description string `yaml:"description"`
	Avatar      string `yaml:"avatar"`
	Web         string `yaml:"web"`
}

type Menu struct {
	DisplayPages *bool  `yaml:"display_pages"`
	Items        []Link `yaml:"items"`
}

// DisplayPagesOnMenu defaults to true, the generator's own default.
func (m Menu) DisplayPagesOnMenu() bool {
	return m.DisplayPages == nil || *m.DisplayPages
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

// Feeds holds the generator's feed output paths. A nil entry disables
// that feed, matching the generator's convention of setting the feed
// key to null during development.
type Feeds struct {
	AllAtom         *string `yaml:"all_atom"`
	CategoryAtom    *string `yaml:"category_atom"`
	TranslationAtom *string `yaml:"translation_atom"`
	AuthorAtom      *string `yaml:"author_atom"`
	AuthorRSS       *string `yaml:"author_rss"`
}

// Pagination mirrors the generator's pagination setting: either false
// (no paging) or a positive page size.
type Pagination struct {
	Size int
}

func (p Pagination) Enabled() bool {
	return p.Size > 0
}

func (p *Pagination) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("pagination must be false or a page size")
	}
	switch value.Tag {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			return fmt.Errorf("pagination must be false or a page size, not true")
		}
		p.Size = 0
		return nil
	case "!!int":
		return value.Decode(&p.Size)
	case "!!null":
		p.Size = 0
		return nil
	default:
		return fmt.Errorf("pagination must be false or a page size")
	}
}

func (p Pagination) MarshalYAML() (any, error) {
	if !p.Enabled() {
		return false, nil
	}
	return p.Size, nil
}
