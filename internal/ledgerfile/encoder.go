package ledgerfile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hance08/cashbook/internal/model"
)

type Encoder struct {
	w *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode writes one record line per transaction and flushes.
func (e *Encoder) Encode(txs []model.Transaction) error {
	for i, tx := range txs {
		if _, err := fmt.Fprintln(e.w, tx.String()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}
	return e.w.Flush()
}
