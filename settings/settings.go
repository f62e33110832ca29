// Package settings renders a Site Configuration Record into the fixed
// key/value contract the external static-site generator consumes. The
// key set and semantics belong to the generator; plume only fills the
// values in.
package settings

import (
	"github.com/plumekit/plume/config/site"
)

type Setting struct {
	Key   string
	Value any
}

// Build produces the full contract in its canonical order. Values are
// limited to string, bool, int, nil and [][2]string so every writer
// can render them without reflection.
func Build(rec *site.Record) []Setting {
	return []Setting{
		{"AUTHOR", rec.Author.Name},
		{"AUTHOR_INTRO", rec.Author.Intro},
		{"AUTHOR_DESCRIPTION", rec.Author.Description},
		{"AUTHOR_AVATAR", rec.Author.Avatar},
		{"AUTHOR_WEB", rec.Author.Web},
		{"SITENAME", rec.Site.Name},
		{"SITEURL", rec.Site.URL},
		{"PATH", rec.Site.Content},
		{"TIMEZONE", rec.Site.Timezone},
		{"DEFAULT_LANG", rec.Site.Language},
		{"THEME", rec.Theme},
		{"DISPLAY_PAGES_ON_MENU", rec.Menu.DisplayPagesOnMenu()},
		{"MENUITEMS", linkPairs(rec.Menu.Items)},
		{"LINKS", linkPairs(rec.Blogroll)},
		{"SOCIAL", socialPairs(rec.Social)},
		{"DEFAULT_PAGINATION", pagination(rec.Pagination)},
		{"FEED_ALL_ATOM", feed(rec.Feeds.AllAtom)},
		{"CATEGORY_FEED_ATOM", feed(rec.Feeds.CategoryAtom)},
		{"TRANSLATION_FEED_ATOM", feed(rec.Feeds.TranslationAtom)},
		{"AUTHOR_FEED_ATOM", feed(rec.Feeds.AuthorAtom)},
		{"AUTHOR_FEED_RSS", feed(rec.Feeds.AuthorRSS)},
		{"RELATIVE_URLS", rec.Site.RelativeURLs},
	}
}

func linkPairs(links []site.Link) [][2]string {
	pairs := make([][2]string, 0, len(links))
	for _, l := range links {
		pairs = append(pairs, [2]string{l.Name, l.URL})
	}
	return pairs
}

func socialPairs(links []site.SocialLink) [][2]string {
	pairs := make([][2]string, 0, len(links))
	for _, s := range links {
		pairs = append(pairs, [2]string{s.Platform, s.URL})
	}
	return pairs
}

func pagination(p site.Pagination) any {
	if p.Enabled() {
		return p.Size
	}
	return false
}

func feed(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
