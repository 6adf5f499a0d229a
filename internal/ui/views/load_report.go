package views

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/service"
)

const maxListedLines = 10

// RenderLoadResult reports a finished, partial or failed load.
func RenderLoadResult(w io.Writer, report *service.LoadReport, err error) {
	var ferr *model.FileAccessError
	var perr *model.ParseError

	switch {
	case errors.As(err, &ferr):
		RenderError(w, "Error reading file: %v", ferr.Err)
		return
	case errors.As(err, &perr):
		RenderError(w, "Error parsing file: %v", perr)
		if report != nil && report.Loaded > 0 {
			RenderWarning(w, "%s transactions loaded before the error were kept", humanize.Comma(int64(report.Loaded)))
		}
		return
	case err != nil:
		RenderError(w, "Error loading file: %v", err)
		return
	}

	RenderSuccess(w, "Transactions loaded successfully from %s (%s loaded)", report.Path, humanize.Comma(int64(report.Loaded)))
	if n := len(report.Skipped); n > 0 {
		RenderWarning(w, "Skipped %s %s without 4 fields: %s",
			humanize.Comma(int64(n)), plural(n, "line", "lines"), listLines(report.Skipped))
	}
}

// RenderSaveResult reports the outcome of writing the store to a file.
func RenderSaveResult(w io.Writer, path string, saved int, err error) {
	var ferr *model.FileAccessError
	if errors.As(err, &ferr) {
		RenderError(w, "Error writing file: %v", ferr.Err)
		return
	}
	if err != nil {
		RenderError(w, "Error saving file: %v", err)
		return
	}
	RenderSuccess(w, "%s transactions saved to %s", humanize.Comma(int64(saved)), path)
}

func listLines(lines []int) string {
	parts := make([]string, 0, maxListedLines+1)
	for i, l := range lines {
		if i == maxListedLines {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, strconv.Itoa(l))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
