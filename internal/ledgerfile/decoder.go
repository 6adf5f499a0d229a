// Package ledgerfile reads and writes the plain-text ledger format, one
// record per line:
//
//	YYYY-MM-DD,<INCOME|EXPENSE>,<category>,<amount>
//
// Fields are split on every comma; quoting is not supported.
package ledgerfile

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/hance08/cashbook/internal/constants"
	"github.com/hance08/cashbook/internal/model"
	"github.com/hance08/cashbook/internal/validation"
)

// Decoder reads records line by line. Lines that do not have exactly four
// fields are skipped; the first four-field line that fails to parse stops the
// decoder with a *model.ParseError.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
	skipped []int
	err     error
}

// maxLineSize bounds a single line; longer lines stop the decoder with
// bufio.ErrTooLong.
const maxLineSize = 16 * 1024 * 1024

func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner}
}

// Next returns the next record. It returns io.EOF once the input is exhausted
// and keeps returning the same error after any failure.
func (d *Decoder) Next() (model.Transaction, error) {
	if d.err != nil {
		return model.Transaction{}, d.err
	}

	for d.scanner.Scan() {
		d.line++
		fields := splitFields(strings.TrimRight(d.scanner.Text(), "\r"))
		if len(fields) != constants.RecordFields {
			d.skipped = append(d.skipped, d.line)
			continue
		}

		tx, err := ParseRecord(fields)
		if err != nil {
			var perr *model.ParseError
			if errors.As(err, &perr) {
				perr.Line = d.line
			}
			d.err = err
			return model.Transaction{}, err
		}
		return tx, nil
	}

	if err := d.scanner.Err(); err != nil {
		d.err = err
		return model.Transaction{}, err
	}
	d.err = io.EOF
	return model.Transaction{}, io.EOF
}

// Skipped lists the 1-based numbers of lines ignored for having the wrong field count.
func (d *Decoder) Skipped() []int { return d.skipped }

// splitFields splits on every delimiter and drops trailing empty fields, so
// "a,b,c," has three fields and "a,b,c,d,," has four.
func splitFields(line string) []string {
	fields := strings.Split(line, constants.FieldDelimiter)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// ParseRecord builds a transaction from the four fields of a record.
func ParseRecord(fields []string) (model.Transaction, error) {
	if len(fields) != constants.RecordFields {
		return model.Transaction{}, &model.ParseError{
			Field: "record",
			Value: strings.Join(fields, constants.FieldDelimiter),
			Err:   errors.New("expected 4 comma separated fields"),
		}
	}

	date, err := validation.ParseDate(fields[0])
	if err != nil {
		return model.Transaction{}, err
	}
	kind, err := validation.ParseKind(fields[1])
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := validation.ParseAmount(fields[3])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(date, kind, fields[2], amount), nil
}
