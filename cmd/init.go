package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type initRunner struct {
	cfg            *config.Config
	viper          *viper.Viper
	confirm        func(path string) (bool, error)
	chooseCurrency func(current string) (string, error)
}

func NewInitCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Choose the display currency and write the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &initRunner{
				cfg:            env.cfg,
				viper:          env.viper,
				confirm:        prompts.PromptOverwrite,
				chooseCurrency: prompts.PromptInitCurrency,
			}
			return runner.Run()
		},
	}
}

func (r *initRunner) Run() error {
	path := r.cfg.ConfigPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil {
		overwrite, err := r.confirm(path)
		if err != nil {
			return err
		}
		if !overwrite {
			pterm.Info.Println("Configuration left unchanged")
			return nil
		}
	}

	currency, err := r.chooseCurrency(r.cfg.Defaults.Currency)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	r.viper.Set("defaults.currency", currency)
	if err := r.viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved to %s. Currency set to: %s\n", path, currency)
	return nil
}
