package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hance08/cashbook/internal/app"
	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/constants"
	"github.com/hance08/cashbook/internal/errhandler"
	"github.com/hance08/cashbook/internal/shell"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// environment is filled by the root command before any subcommand runs.
type environment struct {
	cfgFile string
	cfg     *config.Config
	viper   *viper.Viper
	app     *app.App
	cleanup func()
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, cleanup := NewRootCmd()
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

// NewRootCmd returns the command tree and a cleanup that ends the session.
// The cleanup must run after Execute whether or not a command failed.
func NewRootCmd() (*cobra.Command, func()) {
	env := &environment{}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "cashbook is a console personal income and expense tracker",
		Long: `cashbook records dated income and expense transactions for the current session,
loads them from comma separated ledger files and prints monthly summaries.

Run without a subcommand to start the interactive menu.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), env.app.Service).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env.cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewReportCmd(env))
	rootCmd.AddCommand(NewInfoCmd(env))
	rootCmd.AddCommand(NewInitCmd(env))

	return rootCmd, env.close
}

func (e *environment) init(logOut io.Writer) error {
	if err := e.initConfig(); err != nil {
		return err
	}

	e.app, e.cleanup = app.NewApp(e.cfg, logOut)
	return nil
}

func (e *environment) close() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

func (e *environment) initConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("defaults.currency", constants.DefaultCurrency)
	v.SetDefault("log.level", constants.DefaultLogLevel)

	if e.cfgFile != "" {
		v.SetConfigFile(e.cfgFile)
	} else {
		appDir, err := config.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if e.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	e.cfg = cfg
	e.viper = v
	return nil
}
