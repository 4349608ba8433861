package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/lalg/config"
)

const version = "0.1.0"

// errRejected is returned after a report has been printed for input that
// failed analysis.
var errRejected = errors.New("input rejected")

type app struct {
	configPath string
	verbose    int
	logPath    string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "lalg",
		Short:         "Lexical and predictive syntactic analyzer for LALG",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lalg/lalg.toml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&a.logPath, "log", "", "log file (default stderr)")

	rootCmd.AddCommand(newScanCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose > 0 {
		cfg.Log.Verbosity = a.verbose
	}
	if a.logPath != "" {
		cfg.Log.Path = a.logPath
	}
	a.cfg = cfg

	var path *string
	if cfg.Log.Path != "" {
		path = &cfg.Log.Path
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
	return nil
}

// readSource reads the named file, or stdin for "-".
func readSource(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
