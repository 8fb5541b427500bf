package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"keycast/internal/logger"
)

// Config keys.
const (
	keyFormat      = "format"
	keyVerbose     = "verbose"
	keyTableOutput = "table.output"
)

// app carries the state shared by all subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// newRootCmd creates and configures a new root cobra command.
// Each call gets its own viper instance so tests can run commands in
// isolation.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetDefault(keyFormat, string(formatText))
	a.v.SetDefault(keyVerbose, false)
	a.v.SetDefault(keyTableOutput, "")

	cmd := &cobra.Command{
		Use:   "keycast",
		Short: "Translate LWJGL 2 keycodes to GLFW keycodes and control events",
		Long: `keycast translates keycodes stored by LWJGL 2 era game clients into
GLFW 3 keycodes and control event identifiers.

Examples:
  keycast translate KEY_PRIOR 30 0x70    # translate names and codes
  keycast table -o keymap.yaml           # export the translation table
  keycast check keymap.yaml              # detect drift against a stored table
  keycast options ~/.minecraft/options.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			if _, err := parseFormat(a.v.GetString(keyFormat)); err != nil {
				return err
			}

			logger.Initialize(a.v.GetString(keyFormat) == string(formatJSON), a.v.GetBool(keyVerbose))
			logger.Logger.Debugw("configuration loaded",
				"config", a.v.ConfigFileUsed(),
				"format", a.v.GetString(keyFormat))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.keycast.yaml or ./.keycast.yaml)")
	cmd.PersistentFlags().StringP("format", "f", string(formatText), `output format ("text", "yaml", "json")`)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")

	_ = a.v.BindPFlag(keyFormat, cmd.PersistentFlags().Lookup("format"))
	_ = a.v.BindPFlag(keyVerbose, cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newTranslateCmd(a))
	cmd.AddCommand(newTableCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newOptionsCmd(a))

	return cmd
}

// initConfig reads the config file and KEYCAST_* environment variables.
// A missing config file is only an error when one was named explicitly.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".keycast")
	}

	a.v.SetEnvPrefix("KEYCAST")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && a.cfgFile == "" {
			return nil
		}
		return errors.Wrap(err, "failed to read config")
	}

	return nil
}

// format returns the validated output format.
func (a *app) format() outputFormat {
	f, _ := parseFormat(a.v.GetString(keyFormat))
	return f
}
