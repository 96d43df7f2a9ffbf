package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/henderiw/idrange/pkg/inventory"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "IDRANGE"

const (
	flagInput    = "input"
	flagLogLevel = "log-level"
	flagConfig   = "config"
)

var rootCmd = &cobra.Command{
	Use:           "idrange",
	Short:         "coalesce id ranges from an inventory listing",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(flagInput, "-", "inventory file to read, - for stdin")
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String(flagConfig, "", "optional YAML config file")
}

// loadConfig builds the configuration of a single execution: flags set on
// the command line win over IDRANGE_* env vars, which win over the config
// file, which wins over flag defaults.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("could not bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
	}
	return v, nil
}

// setup loads the configuration, the logger and the inventory shared by
// every subcommand.
func setup(cmd *cobra.Command) (*inventory.Inventory, zerolog.Logger, error) {
	v, err := loadConfig(cmd)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	inv, err := loadInventory(v, cmd, log)
	if err != nil {
		return nil, log, err
	}
	return inv, log, nil
}

// newLogger writes human readable logs to w at the configured level.
func newLogger(v *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "idrange").
		Logger(), nil
}

// loadInventory reads the configured input, stdin when it is "-".
func loadInventory(v *viper.Viper, cmd *cobra.Command, log zerolog.Logger) (*inventory.Inventory, error) {
	input := v.GetString(flagInput)
	var (
		inv *inventory.Inventory
		err error
	)
	if input == "-" {
		inv, err = inventory.Read(cmd.InOrStdin())
	} else {
		inv, err = inventory.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read inventory %s: %w", input, err)
	}
	log.Debug().
		Str("input", input).
		Int("ranges", len(inv.Ranges)).
		Int("ids", len(inv.IDs)).
		Msg("inventory loaded")
	return inv, nil
}
