package views

import (
	"io"

	"github.com/pterm/pterm"
)

func RenderSuccess(w io.Writer, format string, a ...interface{}) {
	pterm.Success.WithWriter(w).Printfln(format, a...)
}

func RenderWarning(w io.Writer, format string, a ...interface{}) {
	pterm.Warning.WithWriter(w).Printfln(format, a...)
}

func RenderError(w io.Writer, format string, a ...interface{}) {
	pterm.Error.WithWriter(w).Printfln(format, a...)
}

func RenderInfo(w io.Writer, format string, a ...interface{}) {
	pterm.Info.WithWriter(w).Printfln(format, a...)
}
