package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/larahenke/giro/internal/app"
	"github.com/larahenke/giro/internal/config"
	"github.com/larahenke/giro/internal/errhandler"
	"github.com/larahenke/giro/internal/ui"
	"github.com/larahenke/giro/internal/ui/prompts"
	"github.com/larahenke/giro/internal/ui/views"
)

var (
	cfgFile     string
	refFile     string
	cfg         *config.Config
	application *app.App
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " FEHLER ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "giro",
		Short: "giro simulates an online-banking transfer page in the terminal",
		Long: `giro simulates a German online-banking transfer page in the terminal.

The session opens a demo account with a random balance and a 5.000 EUR
transaction limit. Submitted transfers are validated field by field, checked
against an optional reference dataset of expected transactions, and settled
against the session account. Nothing is persisted: closing giro resets the
simulation, like reloading the page.

Running giro without a subcommand starts an interactive session.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if refFile != "" {
				cfg.Reference.Path = refFile
			}

			var err error
			application, cleanup, err = app.NewApp(cfg, migrations)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&refFile, "reference", "r", "", "set the reference dataset path (JSON)")

	rootCmd.AddCommand(NewTransferCmd())
	rootCmd.AddCommand(NewOrderCmd())
	rootCmd.AddCommand(NewBalanceCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewPayeesCmd())

	err := rootCmd.Execute()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

const (
	menuTransfer = "Überweisung"
	menuOrder    = "Dauerauftrag einrichten"
	menuBalance  = "Kontostand anzeigen"
	menuHistory  = "Verlauf dieser Sitzung"
	menuPayees   = "Hinterlegte Empfänger"
	menuQuit     = "Beenden"
)

// runSession is the page session: one account, many form submissions, until
// the user leaves.
func runSession() error {
	ui.PrintTitle("giro – Online-Banking Simulation")
	if err := views.RenderAccountPanel(application.State.BalanceCents(), application.State.LimitCents()); err != nil {
		return err
	}

	for {
		ui.PrintSeparator()

		choice, err := prompts.PromptSelect("Was möchten Sie tun?", []string{
			menuTransfer,
			menuOrder,
			menuBalance,
			menuHistory,
			menuPayees,
			menuQuit,
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuTransfer:
			err = submitInteractive(prompts.PromptTransfer)
		case menuOrder:
			err = submitInteractive(prompts.PromptStandingOrder)
		case menuBalance:
			err = views.RenderAccountPanel(application.State.BalanceCents(), application.State.LimitCents())
		case menuHistory:
			err = renderHistory(0)
		case menuPayees:
			err = renderPayees()
		case menuQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GIRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".giro"), nil
	}

	return filepath.Join(configDir, "giro"), nil
}
