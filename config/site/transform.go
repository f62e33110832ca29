package site

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	DefaultContent  = "content"
	DefaultTimezone = "UTC"
	DefaultLanguage = "en"
)

func (r *Record) TransformBeforeValidation() error {
	r.Site.Name = strings.TrimSpace(r.Site.Name)
	r.Site.URL = strings.TrimSpace(r.Site.URL)
	r.Site.Content = strings.TrimSpace(r.Site.Content)
	r.Site.Timezone = strings.TrimSpace(r.Site.Timezone)
	r.Site.Language = strings.TrimSpace(r.Site.Language)
	r.Theme = strings.TrimSpace(r.Theme)

	r.Author.Name = strings.TrimSpace(r.Author.Name)
	r.Author.Intro = strings.TrimSpace(r.Author.Intro)
	r.Author.Description = strings.TrimSpace(r.Author.Description)
	r.Author.Avatar = strings.TrimSpace(r.Author.Avatar)
	r.Author.Web = strings.TrimSpace(r.Author.Web)

	if r.Site.Content == "" {
		r.Site.Content = DefaultContent
	}
	if r.Site.Timezone == "" {
		r.Site.Timezone = DefaultTimezone
	}
	if r.Site.Language == "" {
		r.Site.Language = DefaultLanguage
	}
	if r.Menu.DisplayPages == nil {
		t := true
		r.Menu.DisplayPages = &t
	}

	trimLinks(r.Menu.Items)
	trimLinks(r.Blogroll)
	for i := range r.Social {
		r.Social[i].Platform = strings.TrimSpace(r.Social[i].Platform)
		r.Social[i].URL = strings.TrimSpace(r.Social[i].URL)
	}
	return nil
}

// TransformAfterValidation resolves the values validation already
// proved parseable. The site URL loses its trailing slash so joined
// paths stay canonical.
func (r *Record) TransformAfterValidation() error {
	r.Site.URL = strings.TrimRight(r.Site.URL, "/")
	if loc, err := time.LoadLocation(r.Site.Timezone); err == nil {
		r.Site.Location = loc
	}
	if tag, err := language.Parse(r.Site.Language); err == nil {
		r.Site.Lang = tag
	}
	return nil
}

func trimLinks(links []Link) {
	for i := range links {
		links[i].Name = strings.TrimSpace(links[i].Name)
		links[i].URL = strings.TrimSpace(links[i].URL)
	}
}
