package service

import (
	"github.com/hance08/cashbook/internal/config"
	"github.com/hance08/cashbook/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Transaction *TransactionService
	Summary     *SummaryService
	File        *FileService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(repo, logger),
		Summary:     NewSummaryService(repo),
		File:        NewFileService(repo, logger),
		Config:      cfg,
	}
}
