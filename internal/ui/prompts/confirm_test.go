package prompts

import (
	"strings"
	"testing"
)

func TestOverwriteQuestionDefaultsToNo(t *testing.T) {
	q := OverwriteQuestion("/tmp/cashbook/config.yaml")
	if q.Default {
		t.Error("overwrite confirmation must default to No")
	}
	if !strings.Contains(q.Message, "/tmp/cashbook/config.yaml") {
		t.Errorf("message should name the file, got %q", q.Message)
	}
}
