package validate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Standardized error message helpers

func ErrRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func ErrMin(field string, min any, value any) error {
	return fmt.Errorf("%s must be at least %v (got %v)", field, min, value)
}

func ErrOneOf(field string, allowed any, value any) error {
	return fmt.Errorf("%s must be one of %v (got %v)", field, allowed, value)
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(path)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireIntMin(v *ValidationErrors, path string, value int, min int) bool {
	if value < min {
		err := ErrMin(path, min, value)
		LogConfigError(path, value, err)
		v.Add(err)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	err := ErrOneOf(path, allowed, value)
	LogConfigError(path, value, err)
	v.Add(err)
	return false
}

// RequireURL checks an absolute http(s) URL. Optional values pass when empty.
func RequireURL(v *ValidationErrors, pathKey string, value string, required bool) bool {
	if strings.TrimSpace(value) == "" {
		if required {
			err := ErrRequired(pathKey)
			LogConfigError(pathKey, value, err)
			v.Add(err)
			return false
		}
		log.Info().Str("config", pathKey).Msg("url not set (optional)")
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: %w", pathKey, err))
		return false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		err := errors.New("must be an absolute http(s) url")
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: %w", pathKey, err))
		return false
	}
	LogConfigOK(pathKey, value)
	return true
}

// RequireTimezone resolves an IANA timezone name against the tz database.
func RequireTimezone(v *ValidationErrors, pathKey string, value string) (*time.Location, bool) {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(pathKey)
		LogConfigError(pathKey, value, err)
		v.Add(err)
		return nil, false
	}
	loc, err := time.LoadLocation(value)
	if err != nil {
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: unknown timezone %q", pathKey, value))
		return nil, false
	}
	LogConfigOK(pathKey, value)
	return loc, true
}

// RequireLanguage parses a BCP 47 language tag.
func RequireLanguage(v *ValidationErrors, pathKey string, value string) (language.Tag, bool) {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(pathKey)
		LogConfigError(pathKey, value, err)
		v.Add(err)
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: invalid language tag %q", pathKey, value))
		return language.Und, false
	}
	LogConfigOK(pathKey, value)
	return tag, true
}

// RequireRelPath checks a clean, relative path (feed outputs, theme dirs).
func RequireRelPath(v *ValidationErrors, pathKey string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := ErrRequired(pathKey)
		LogConfigError(pathKey, value, err)
		v.Add(err)
		return false
	}
	if strings.HasPrefix(value, "/") {
		err := errors.New("must be relative")
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: %w", pathKey, err))
		return false
	}
	clean := path.Clean(value)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		err := errors.New("must not escape the site root")
		LogConfigError(pathKey, value, err)
		v.Add(fmt.Errorf("%s: %w", pathKey, err))
		return false
	}
	LogConfigOK(pathKey, value)
	return true
}

type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func LogConfigOK(path string, value any) {
	log.Logger.Info().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

func CheckDir(pathKey string, dir string, required bool, v *ValidationErrors) {
	if dir == "" {
		if required {
			err := errors.New("directory must be set")
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Info().Str("config", pathKey).Msg("directory not set (optional)")
		}
		return
	}

	info, err := os.Stat(dir)
	if err != nil {
		if required {
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Warn().Str("config", pathKey).Str("value", dir).Err(err).Msg("optional directory does not exist")
		}
		return
	}

	if !info.IsDir() {
		err := errors.New("not a directory")
		if required {
			LogConfigError(pathKey, dir, err)
			v.Add(fmt.Errorf("%s: %w", pathKey, err))
		} else {
			log.Warn().
				Str("config", pathKey).
				Str("value", dir).
				Msg("optional path exists but is not a directory")
		}
		return
	}

	// OK
	LogConfigOK(pathKey, dir)
}
