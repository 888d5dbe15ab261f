package gestor

import (
	"strings"
	"testing"

	"github.com/gfpro/gestor/date"
)

func TestExportCSV(t *testing.T) {
	tx := NewTransaction(date.MustParse("2025-08-10"), Expense, "Groceries", amount("450.75"))
	tx.ID = "tx-1"
	tx.Note = "weekly run, with a comma"

	var buf strings.Builder
	if err := ExportCSV(&buf, []Transaction{tx}); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	want := "id,date,kind,category,amount,note\n" +
		"tx-1,2025-08-10,expense,Groceries,450.75,\"weekly run, with a comma\"\n"
	if got := buf.String(); got != want {
		t.Errorf("ExportCSV =\n%q\nwant\n%q", got, want)
	}
}

func TestExportCSV_Empty(t *testing.T) {
	var buf strings.Builder
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if got := buf.String(); got != "id,date,kind,category,amount,note\n" {
		t.Errorf("ExportCSV on empty = %q, want header only", got)
	}
}
