package config

import (
	"os"
	"strconv"

	"github.com/plumekit/plume/config/site"
	"github.com/rs/zerolog/log"
)

// applyEnv overlays PLUME_* variables onto a record. ENV has the
// highest precedence, above both the file and any profile overlay.
func applyEnv(rec *site.Record) {
	rec.Site.Name = envString(ENV_PREFIX+"_SITE_NAME", rec.Site.Name)
	rec.Site.URL = envString(ENV_PREFIX+"_SITE_URL", rec.Site.URL)
	rec.Site.Timezone = envString(ENV_PREFIX+"_TIMEZONE", rec.Site.Timezone)
	rec.Site.Language = envString(ENV_PREFIX+"_DEFAULT_LANG", rec.Site.Language)
	rec.Site.RelativeURLs = envBool(ENV_PREFIX+"_RELATIVE_URLS", rec.Site.RelativeURLs)
	rec.Author.Name = envString(ENV_PREFIX+"_AUTHOR", rec.Author.Name)
	rec.Theme = envString(ENV_PREFIX+"_THEME", rec.Theme)
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Logger.Warn().Str("env", key).Str("value", v).Msg("ignoring non-boolean override")
		return def
	}
	return b
}
