package cmd

import (
	"os"

	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/ui/views"
	"github.com/hance08/cashbook/internal/utils"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
	cmd *cobra.Command
}

func NewInfoCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, display currency and log level.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: env.cfg,
				cmd: cmd,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	configExists := configPath != ""
	if !configExists {
		configPath = defaultConfigPathOrUnknown()
	} else if _, err := os.Stat(configPath); err != nil {
		configExists = false
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		ConfigExists:    configExists,
		DefaultCurrency: r.cfg.Defaults.Currency,
		CurrencyGlyph:   utils.CurrencyGlyph(r.cfg.Defaults.Currency),
		LogLevel:        r.cfg.Log.Level,
		AppDataDir:      appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(r.cmd.OutOrStdout(), items)
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

func defaultConfigPathOrUnknown() string {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "Unknown"
	}
	return path
}
