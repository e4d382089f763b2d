package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ralt/bundlediff/internal/differ"
	"github.com/ralt/bundlediff/internal/loader"
	"github.com/ralt/bundlediff/internal/models"
	"github.com/ralt/bundlediff/internal/render"
)

const (
	configName = ".bundlediff"
	envPrefix  = "BUNDLEDIFF"
)

// loadConfig merges flags, environment and the optional config file.
// Flags set on the command line win over the environment, which wins over the file.
func loadConfig(cmd *cobra.Command, args []string) (*models.CompareConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	configPath := ""
	if f := cmd.Flag("config"); f != nil {
		configPath = f.Value.String()
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, &models.DiffError{
				Type:  models.ErrInvalidConfig,
				Input: configPath,
				Err:   fmt.Errorf("failed to read config: %w", err),
			}
		}
	} else {
		logrus.Debugf("Using config file: %s", v.ConfigFileUsed())
	}

	config := &models.CompareConfig{
		Variant:       v.GetString("type"),
		Format:        v.GetString("format"),
		SortField:     v.GetString("sort"),
		Order:         v.GetString("order"),
		OutputPath:    v.GetString("output"),
		NoColor:       v.GetBool("no-color"),
		GPGKeyPath:    v.GetString("gpg-key"),
		GPGPassphrase: v.GetString("gpg-passphrase"),
	}
	if len(args) > 0 {
		config.LeftPath = args[0]
	}
	if len(args) > 1 {
		config.RightPath = args[1]
	}

	return config, nil
}

func validateConfig(config *models.CompareConfig) error {
	invalid := func(format string, a ...interface{}) error {
		return &models.DiffError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf(format, a...),
		}
	}

	if config.LeftPath == "" || config.RightPath == "" {
		return invalid("two inputs are required")
	}

	if config.LeftPath == loader.StdinPath && config.RightPath == loader.StdinPath {
		return invalid("only one input can be read from standard input")
	}

	if _, err := models.ParseVariant(config.Variant); err != nil {
		return invalid("%v", err)
	}

	format, err := render.ParseFormat(config.Format)
	if err != nil {
		return invalid("%v", err)
	}
	config.Format = string(format)

	if config.SortField != "" && !models.IsValidKey(config.SortField) {
		return invalid("unknown sort field %q", config.SortField)
	}

	dir, err := differ.ParseDirection(config.Order)
	if err != nil {
		return invalid("%v", err)
	}
	config.Order = dir.String()

	if config.GPGKeyPath != "" && config.OutputPath == "" {
		return invalid("--gpg-key requires --output")
	}

	// Set Variant to auto if not specified
	if config.Variant == "" {
		config.Variant = "auto"
	}

	return nil
}

// sortState builds the initial table sort from the configuration
func sortState(config *models.CompareConfig) differ.SortState {
	if config.SortField == "" {
		return differ.SortState{}
	}
	state := differ.SortState{}.Toggle(config.SortField)
	if dir, err := differ.ParseDirection(config.Order); err == nil && dir == differ.Descending {
		state = state.Toggle(config.SortField)
	}
	return state
}
