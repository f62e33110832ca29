package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"github.com/plumekit/plume/config"
)

// LoadLogging configures the global logger. When PLUME_LOG_CONFIG
// names a zeroconfig YAML file that takes over; otherwise a console
// writer on stderr is used, since plume is usually run interactively.
func LoadLogging() {
	path := config.GetLogConfigPath()
	if path == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not readable")
		panic(err)
	}
	var cfg zeroconfig.Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid yaml")
		panic(err)
	}
	logger, err := cfg.Compile()
	if err != nil {
		log.Logger.Fatal().Err(err).
			Msg(config.LogConfigEnv + " is not valid for zerolog, see go.mau.fi/zeroconfig documentation")
		panic(err)
	}
	log.Logger = *logger
}
