package site

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plumekit/plume/config/validate"
)

func (r *Record) Validate(v *validate.ValidationErrors) {
	r.Site.validate(v, "site")
	r.Author.validate(v, "author")

	if r.Theme != "" {
		validate.RequireRelPath(v, "theme", r.Theme)
	} else {
		validate.LogConfigOK("theme", "(generator default)")
	}

	validateLinks(v, "menu/items", r.Menu.Items, true)
	validateLinks(v, "blogroll", r.Blogroll, false)
	r.validateSocial(v, "social")
	r.Feeds.validate(v, "feeds")

	if r.Pagination.Enabled() {
		validate.RequireIntMin(v, "pagination", r.Pagination.Size, 1)
	} else {
		validate.LogConfigOK("pagination", false)
	}
}

func (i *Identity) validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/name", i.Name)
	validate.RequireURL(v, path+"/url", i.URL, true)
	validate.RequireRelPath(v, path+"/content", i.Content)
	validate.RequireTimezone(v, path+"/timezone", i.Timezone)
	validate.RequireLanguage(v, path+"/language", i.Language)
}

func (a *Author) validate(v *validate.ValidationErrors, path string) {
	validate.RequireString(v, path+"/name", a.Name)
	validate.RequireURL(v, path+"/avatar", a.Avatar, false)
	validate.RequireURL(v, path+"/web", a.Web, false)
}

// Link lists keep their authoring order; names must be unique within
// one list so the rendered widgets stay unambiguous. Menu items may
// point at site-relative paths; blogroll links are always external.
func validateLinks(v *validate.ValidationErrors, path string, links []Link, allowRelative bool) {
	seen := map[string]struct{}{}
	for i, l := range links {
		base := fmt.Sprintf("%s[%d]", path, i)

		if l.Name == "" {
			err := errors.New("name missing")
			validate.LogConfigError(base+"/name", l.Name, err)
			v.Add(fmt.Errorf("%s/name: %w", base, err))
		} else {
			validate.LogConfigOK(base+"/name", l.Name)
		}

		if _, ok := seen[l.Name]; ok {
			err := errors.New("duplicate name")
			validate.LogConfigError(base+"/name", l.Name, err)
			v.Add(fmt.Errorf("%s/name: %w", base, err))
		}
		seen[l.Name] = struct{}{}

		if allowRelative && strings.HasPrefix(l.URL, "/") {
			validate.LogConfigOK(base+"/url", l.URL)
			continue
		}
		validate.RequireURL(v, base+"/url", l.URL, true)
	}
}

func (r *Record) validateSocial(v *validate.ValidationErrors, path string) {
	seen := map[string]struct{}{}
	for i, s := range r.Social {
		base := fmt.Sprintf("%s[%d]", path, i)

		validate.RequireString(v, base+"/platform", s.Platform)

		if _, ok := seen[s.Platform]; ok {
			err := errors.New("duplicate platform")
			validate.LogConfigError(base+"/platform", s.Platform, err)
			v.Add(fmt.Errorf("%s/platform: %w", base, err))
		}
		seen[s.Platform] = struct{}{}

		validate.RequireURL(v, base+"/url", s.URL, true)
	}
}

func (f *Feeds) validate(v *validate.ValidationErrors, path string) {
	checkFeed(v, path+"/all_atom", f.AllAtom)
	checkFeed(v, path+"/category_atom", f.CategoryAtom)
	checkFeed(v, path+"/translation_atom", f.TranslationAtom)
	checkFeed(v, path+"/author_atom", f.AuthorAtom)
	checkFeed(v, path+"/author_rss", f.AuthorRSS)
}

func checkFeed(v *validate.ValidationErrors, path string, value *string) {
	if value == nil {
		validate.LogConfigOK(path, nil)
		return
	}
	validate.RequireRelPath(v, path, *value)
}
