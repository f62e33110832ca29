package main

import (
	"os"

	"github.com/plumekit/plume/cli"
	"github.com/plumekit/plume/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.LoadLogging()

	if err := cli.Run(os.Args[1:]); err != nil {
		log.Logger.Fatal().Err(err).Msg("plume failed")
	}
}
