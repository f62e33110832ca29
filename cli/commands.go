package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/plumekit/plume/config/site"
	"github.com/plumekit/plume/diff"
	"github.com/plumekit/plume/history"
	"github.com/plumekit/plume/settings"
	"github.com/plumekit/plume/watch"
)

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	failed := false
	for _, name := range cfg.ProfileNames() {
		if _, err := cfg.Resolve(name); err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "profile %s: invalid\n%v\n", name, err)
		}
	}
	if failed {
		return fmt.Errorf("validation failed")
	}

	fmt.Printf("%s: base record and %d profile(s) valid\n", cfg.Path(), len(cfg.Profiles))
	return nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	profile := fs.String("profile", "", "profile to resolve (default: base record)")
	format := fs.String("format", "yaml", "output format: yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rec, err := cfg.Resolve(profileArg(*profile))
	if err != nil {
		return err
	}

	switch *format {
	case "yaml":
		out, err := yaml.Marshal(rec)
		if err != nil {
			return err
		}
		os.Stdout.Write(out)
		return nil
	case "json":
		// Round-trip through the YAML mapping so the JSON keys match
		// the file's own key names.
		buf, err := yaml.Marshal(rec)
		if err != nil {
			return err
		}
		var m map[string]any
		if err := yaml.Unmarshal(buf, &m); err != nil {
			return err
		}
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		os.Stdout.Write(append(out, '\n'))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", *format)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	profile := fs.String("profile", "", "profile to export (default: base record)")
	format := fs.String("format", "", "export format: pelican, json or yaml (default: export.format from the config)")
	out := fs.String("out", "", "output file (default: export.out from the config, else a format-specific name)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *format == "" {
		*format = cfg.Export.Format
	}
	f, err := settings.ParseFormat(*format)
	if err != nil {
		return err
	}
	name := profileArg(*profile)
	rec, err := cfg.Resolve(name)
	if err != nil {
		return err
	}

	data, err := settings.Render(rec, f)
	if err != nil {
		return err
	}
	target := *out
	if target == "" {
		target = cfg.Export.Out
	}
	if target == "" {
		target = settings.DefaultFilename(f)
	}
	if err := settings.Write(target, data); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, profile %s)\n", target, f, profileLabel(name))

	if cfg.History.Disabled {
		return nil
	}
	return recordRevision(cfg.History.Path, name, rec)
}

func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s diff <profile> <profile>\n\nUse \"base\" for the base record.\n", os.Args[0])
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff needs exactly two profiles")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	oldRec, err := cfg.Resolve(profileArg(fs.Arg(0)))
	if err != nil {
		return err
	}
	newRec, err := cfg.Resolve(profileArg(fs.Arg(1)))
	if err != nil {
		return err
	}

	summary := diff.Compare(oldRec, newRec)
	if summary.Empty() {
		fmt.Println("no changes")
		return nil
	}
	for _, c := range summary.Changes {
		fmt.Printf("%s: %s -> %s\n", c.Key, c.Old, c.New)
	}
	return nil
}

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	profile := fs.String("profile", "", "profile to list (default: base record)")
	n := fs.Int("n", 20, "number of revisions to show (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Disabled {
		return fmt.Errorf("history is disabled in %s", cfg.Path())
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	name := profileArg(*profile)
	revs, err := store.List(name, *n)
	if err != nil {
		return err
	}
	if len(revs) == 0 {
		fmt.Printf("no revisions recorded for %s\n", profileLabel(name))
		return nil
	}
	for _, rev := range revs {
		fmt.Printf("%4d  %s  %.12s  %s\n", rev.ID, rev.Created.Format("2006-01-02 15:04:05"), rev.Hash, profileLabel(rev.Profile))
	}
	return nil
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	holder := watch.NewHolder(cfg)
	return holder.Watch(ctx)
}

// recordRevision stores the canonical JSON contract so supersessions
// stay traceable. Failures are logged, not fatal: the export already
// landed.
func recordRevision(storePath, profile string, rec *site.Record) error {
	contract, err := settings.RenderJSON(rec)
	if err != nil {
		return err
	}
	store, err := history.Open(storePath)
	if err != nil {
		log.Logger.Warn().Err(err).Str("path", storePath).Msg("history store unavailable")
		return nil
	}
	defer store.Close()

	inserted, err := store.Record(profile, contract)
	if err != nil {
		log.Logger.Warn().Err(err).Msg("failed to record revision")
		return nil
	}
	if inserted {
		log.Logger.Info().Str("profile", profileLabel(profile)).Msg("new revision recorded")
	}
	return nil
}
