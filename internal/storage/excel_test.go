package storage

import (
	"testing"

	"signquote/internal/quote"
)

func TestPriceTableRowsCoverEveryConfiguredPrice(t *testing.T) {
	rows := priceTableRows(quote.DefaultPricing())

	// 4 adhesive + 3 lona + 2 PS + 2 ACM + 5 box letter + 6 glass (incl.
	// extensor) + 5 facade + 5 luminoso + 4 percentages + 6 regions.
	const want = 42
	if len(rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(rows))
	}

	for _, row := range rows {
		if row.Section == "" || row.Item == "" || row.Unit == "" {
			t.Fatalf("incomplete row: %+v", row)
		}
	}

	if rows[0].Section != "Adesivo" || rows[len(rows)-1].Item != string(quote.RegionGrandeSP) {
		t.Fatalf("rows out of order: first %+v, last %+v", rows[0], rows[len(rows)-1])
	}
}

func TestExportPriceTableBuildsWorkbook(t *testing.T) {
	f, err := ExportPriceTable(quote.DefaultPricing())
	if err != nil {
		t.Fatalf("ExportPriceTable returned error: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Tabela de preços", "A1")
	if err != nil {
		t.Fatalf("failed to read header cell: %v", err)
	}
	if got != "Categoria" {
		t.Fatalf("unexpected header cell: %q", got)
	}

	price, err := f.GetCellValue("Tabela de preços", "C2")
	if err != nil {
		t.Fatalf("failed to read first price cell: %v", err)
	}
	if price != "25" {
		t.Fatalf("unexpected first price: %q", price)
	}
}
