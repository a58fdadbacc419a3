// Package export renders the record collection as CSV.
//
// The format is fixed: ID,Date,Time,Amount,Subject header, amount as a
// plain decimal number, and the subject always wrapped in double quotes
// with embedded quotes doubled. encoding/csv quotes fields only when it
// must, so the rows are written by hand to keep the subject quoting
// unconditional.
package export

import (
	"fmt"
	"io"
	"strings"

	"tally/internal/core"
)

// Filename is the download name offered to the user.
const Filename = "expense_data.csv"

const header = "ID,Date,Time,Amount,Subject"

// WriteCSV writes the header plus one row per record in the given order.
func WriteCSV(w io.Writer, records []core.Record) error {
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := fmt.Sprintf("%d,%s,%s,%s,%s\n",
			r.ID, r.Date, r.Time, r.Amount.Plain(), quoteSubject(r.Subject))
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func quoteSubject(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
