package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const DefaultPath = "config.yml"

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" env-description:"log level: debug, info, warn or error" validate:"oneof=debug info warn error"`
	BoardSize int    `yaml:"board-size" env:"TTT_BOARD_SIZE" env-default:"3" env-description:"board size n of the n×n grid" validate:"min=1,max=9"`
	VsAI      bool   `yaml:"vs-ai" env:"TTT_VS_AI" env-default:"false" env-description:"play against the computer, which takes O"`
	Color     bool   `yaml:"color" env:"TTT_COLOR" env-default:"true" env-description:"colored board output"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Read - reads the yaml file at path and the environment on top of it. A missing
// file is not an error, the defaults and the environment are used instead.
func Read(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return config, nil
}

// Load - parses the command line, reads the config file it points to and lets
// the flags that were given override the file and the environment.
func Load(args []string, output io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	flags.SetOutput(output)

	envHeader := "Environment variables:"
	envUsage := cleanenv.FUsage(output, &Config{}, &envHeader, flags.PrintDefaults)
	flags.Usage = func() {
		fmt.Fprintln(output, "Usage of tictactoe:")
		envUsage()
	}

	path := flags.String("config", DefaultPath, "path to the yaml config file")
	size := flags.Int("size", 0, "board size n of the n×n grid")
	vsAI := flags.Bool("ai", false, "play against the computer, which takes O")
	noColor := flags.Bool("no-color", false, "disable colored output")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	// only the default file may be missing, a path given on the command line must exist
	if set["config"] {
		if _, err := os.Stat(*path); err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	}

	config, err := Read(*path)
	if err != nil {
		return nil, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			config.BoardSize = *size
		case "ai":
			config.VsAI = *vsAI
		case "no-color":
			config.Color = !*noColor
		case "log-level":
			config.LogLevel = *logLevel
		}
	})

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
