package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/cashbook/internal/ui"
)

// OverwriteQuestion asks before replacing an existing file; it defaults to No.
func OverwriteQuestion(path string) *survey.Confirm {
	return &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite it?", path),
		Default: false,
		Help:    "Answering No leaves the current configuration untouched",
	}
}

// PromptOverwrite returns terminal.InterruptErr when the user presses Ctrl+C.
func PromptOverwrite(path string) (bool, error) {
	overwrite := false
	err := survey.AskOne(OverwriteQuestion(path), &overwrite, ui.IconOption())
	return overwrite, err
}
