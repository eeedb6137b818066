// Package dataset loads the regional agricultural CSV datasets (yield,
// market price, cultivation cost, climate vulnerability) into tiered
// lookup tables.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// CSVOptions configures the streaming CSV parser.
type CSVOptions struct {
	Delimiter  rune            // default ','
	HeaderCh   chan<- []string // receives the header row
	LazyQuotes bool
}

// StreamCSV reads a CSV file and sends data rows to a channel. The
// first row is treated as the header and delivered on HeaderCh. Fields
// are whitespace-trimmed. Caller must consume the returned row channel;
// both channels are closed when processing completes.
func StreamCSV(ctx context.Context, r io.Reader, opts CSVOptions) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		reader.LazyQuotes = opts.LazyQuotes
		reader.FieldsPerRecord = -1 // allow variable fields

		first := true
		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "dataset: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "dataset: read csv row")
				return
			}

			for i, field := range record {
				record[i] = strings.TrimSpace(field)
			}

			if first {
				first = false
				if opts.HeaderCh != nil {
					select {
					case opts.HeaderCh <- record:
					case <-ctx.Done():
						errCh <- eris.Wrap(ctx.Err(), "dataset: context cancelled sending header")
						return
					}
				}
				continue
			}

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "dataset: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}
