package gestor

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSV writes the transactions as CSV, one row per record, with a
// header line. Amounts keep their exact decimal representation.
func ExportCSV(w io.Writer, transactions []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "kind", "category", "amount", "note"}); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}
	for _, t := range transactions {
		row := []string{t.ID, t.Date.String(), string(t.Kind), t.Category, t.Amount.String(), t.Note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write csv row for %q: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
