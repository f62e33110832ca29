package cli

import (
	"fmt"
	"os"

	"github.com/plumekit/plume/config"
)

func Run(args []string) error {
	if len(args) == 0 {
		printGlobalHelp()
		return nil
	}

	cmd := args[0]

	switch cmd {
	case "validate":
		return runValidate(args[1:])

	case "show":
		return runShow(args[1:])

	case "export":
		return runExport(args[1:])

	case "diff":
		return runDiff(args[1:])

	case "history":
		return runHistory(args[1:])

	case "watch":
		return runWatch(args[1:])

	case "init":
		return runInit(args[1:])

	case "-h", "--help", "help":
		printGlobalHelp()
		return nil

	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printGlobalHelp() {
	fmt.Printf(`Usage: %s <command> [options]

Commands:
  validate    Validate the base record and every profile
  show        Print a resolved Site Configuration Record
  export      Write the generator settings file
  diff        Compare two resolved profiles
  history     List recorded configuration revisions
  watch       Revalidate on every change to the config file
  init        Write a starter plume.yaml

Use "%s <command> --help" for command-specific options.
`, os.Args[0], os.Args[0])
}

func configPath() string {
	if p := os.Getenv(config.ConfigEnv); p != "" {
		return p
	}
	return config.DefaultPath
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath())
}

// base profiles are stored under the empty name; "base" selects them
// on the command line.
func profileArg(name string) string {
	if name == "base" {
		return ""
	}
	return name
}

func profileLabel(name string) string {
	if name == "" {
		return "base"
	}
	return name
}
