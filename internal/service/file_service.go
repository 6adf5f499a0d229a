package service

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hance08/cashbook/internal/ledgerfile"
	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
)

// LoadReport describes the outcome of a load, including a partial one.
type LoadReport struct {
	Path    string
	Loaded  int
	Skipped []int
}

type FileService struct {
	repo   store.Repository
	logger *pterm.Logger
}

func NewFileService(repo store.Repository, logger *pterm.Logger) *FileService {
	return &FileService{repo: repo, logger: logger}
}

// Load appends every record of the ledger file at path to the store, in file
// order. Lines without exactly four fields are skipped. The first four-field
// line that fails to parse aborts the rest of the file with a
// *model.ParseError; records appended before it stay in the store and are
// counted in the returned report. An unreadable file yields a
// *model.FileAccessError and loads nothing.
func (fs *FileService) Load(path string) (*LoadReport, error) {
	report := &LoadReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return report, &model.FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	dec := ledgerfile.NewDecoder(f)
	for {
		tx, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			report.Skipped = dec.Skipped()
			var perr *model.ParseError
			if errors.As(err, &perr) {
				fs.logger.Warn("load aborted", fs.logger.Args("path", path, "line", perr.Line, "loaded", report.Loaded))
				return report, err
			}
			return report, &model.FileAccessError{Path: path, Err: err}
		}

		fs.repo.Add(tx)
		report.Loaded++
	}

	report.Skipped = dec.Skipped()
	for _, line := range report.Skipped {
		fs.logger.Debug("skipped line", fs.logger.Args("path", path, "line", line))
	}
	fs.logger.Info("transactions loaded", fs.logger.Args("path", path, "loaded", report.Loaded, "skipped", len(report.Skipped)))

	return report, nil
}

// Save writes every transaction in the store to path in the ledger format,
// replacing the file. It returns the number of records written.
func (fs *FileService) Save(path string) (int, error) {
	txs := fs.repo.All()

	f, err := os.Create(path)
	if err != nil {
		return 0, &model.FileAccessError{Path: path, Err: err}
	}

	if err := ledgerfile.NewEncoder(f).Encode(txs); err != nil {
		f.Close()
		return 0, &model.FileAccessError{Path: path, Err: fmt.Errorf("failed to write ledger: %w", err)}
	}
	if err := f.Close(); err != nil {
		return 0, &model.FileAccessError{Path: path, Err: err}
	}

	fs.logger.Info("transactions saved", fs.logger.Args("path", path, "saved", len(txs)))
	return len(txs), nil
}
