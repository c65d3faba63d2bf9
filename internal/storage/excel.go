package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"signquote/internal/quote"
)

type priceRow struct {
	Section string
	Item    string
	Price   float64
	Unit    string
}

// priceTableRows flattens the configuration into a deterministic row order
// for the spreadsheet: categories in menu order, keys in their fixed
// vocabulary order.
func priceTableRows(cfg quote.PricingConfig) []priceRow {
	var rows []priceRow

	appendOptions := func(section string, table quote.OptionTable, keys []quote.Option, unit string) {
		for _, key := range keys {
			rows = append(rows, priceRow{Section: section, Item: string(key), Price: table[key], Unit: unit})
		}
	}

	appendOptions("Adesivo", cfg.Adhesive,
		[]quote.Option{quote.AdhesivePlain, quote.AdhesiveContourCut, quote.AdhesivePerforated, quote.AdhesiveLaminated}, "m²")
	appendOptions("Lona", cfg.Banner,
		[]quote.Option{quote.Banner440g, quote.BannerMesh, quote.BannerBacklight}, "m²")
	appendOptions("Placa PS", cfg.PSPanel, []quote.Option{quote.PS1mm, quote.PS2mm}, "m²")
	appendOptions("Placa ACM", cfg.ACMPanel, []quote.Option{quote.ACM3mm, quote.ACM4mm}, "m²")
	appendOptions("Letra caixa", cfg.BoxLetter.Thickness,
		[]quote.Option{quote.BoxLetter10mm, quote.BoxLetter15mm, quote.BoxLetter20mm}, "m²")
	appendOptions("Letra caixa", cfg.BoxLetter.AddOns,
		[]quote.Option{quote.BoxLetterPaint, quote.BoxLetterACMBack}, "m²")
	appendOptions("Vidro", cfg.Glass.Thickness,
		[]quote.Option{quote.Glass6mm, quote.Glass8mm, quote.Glass10mm}, "m²")
	appendOptions("Vidro", cfg.Glass.AddOns,
		[]quote.Option{quote.GlassFrostedFilm, quote.GlassEtchedLogo}, "m²")
	rows = append(rows, priceRow{Section: "Vidro", Item: "extensor", Price: cfg.Glass.ExtensorPrice, Unit: "un"})

	appendStructured := func(section string, sc quote.StructuredConfig, materials []quote.Material) {
		rows = append(rows, priceRow{Section: section, Item: "lona_m2", Price: sc.TarpRatePerM2, Unit: "m²"})
		for _, m := range materials {
			rows = append(rows, priceRow{Section: section, Item: string(m), Price: sc.Materials[m], Unit: "un"})
		}
		rows = append(rows, priceRow{Section: section, Item: "metalon_barra", Price: sc.BarPrice, Unit: fmt.Sprintf("barra %.0fm", sc.BarLengthM)})
	}

	appendStructured("Fachada", cfg.Facade,
		[]quote.Material{quote.MaterialCornerBracket, quote.MaterialAnchorScrew, quote.MaterialEyelet})
	appendStructured("Luminoso", cfg.LightSign,
		[]quote.Material{quote.MaterialLEDModule, quote.MaterialPowerSupply, quote.MaterialLEDLamp})

	rows = append(rows, priceRow{Section: "Acréscimos", Item: "nota_fiscal", Price: cfg.Surcharges.InvoicePercent, Unit: "%"})
	for _, tier := range []quote.CardTier{quote.Card3x, quote.Card6x, quote.Card12x} {
		rows = append(rows, priceRow{
			Section: "Acréscimos",
			Item:    fmt.Sprintf("cartao_%dx", tier),
			Price:   cfg.Surcharges.CardPercent[tier],
			Unit:    "%",
		})
	}
	for _, region := range []quote.Region{
		quote.RegionCentro, quote.RegionZonaNorte, quote.RegionZonaSul,
		quote.RegionZonaLeste, quote.RegionZonaOeste, quote.RegionGrandeSP,
	} {
		rows = append(rows, priceRow{
			Section: "Instalação",
			Item:    string(region),
			Price:   cfg.Surcharges.InstallationFee[region],
			Unit:    "taxa fixa",
		})
	}
	return rows
}

// ExportPriceTable renders the configuration as an Excel workbook.
func ExportPriceTable(cfg quote.PricingConfig) (*excelize.File, error) {
	const sheet = "Tabela de preços"

	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Categoria", "Item", "Preço", "Unidade"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range priceTableRows(cfg) {
		values := []interface{}{row.Section, row.Item, row.Price, row.Unit}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "D1", style)
	f.SetActiveSheet(index)

	return f, nil
}
