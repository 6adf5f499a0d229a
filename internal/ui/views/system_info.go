package views

import (
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	ConfigExists    bool
	DefaultCurrency string
	CurrencyGlyph   string
	LogLevel        string
	AppDataDir      string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	configStatus := pterm.Green("Found")
	if !data.ConfigExists {
		configStatus = pterm.Yellow("Not Found (using defaults)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Configuration Status", configStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Currency Symbol", data.CurrencyGlyph},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithWriter(w).WithData(tableData).Render()
}
