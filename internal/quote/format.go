package quote

import (
	"fmt"
	"strings"
)

var optionLabels = map[Option]string{
	AdhesivePlain:      "Adesivo comum",
	AdhesiveContourCut: "Adesivo com recorte eletrônico",
	AdhesivePerforated: "Adesivo perfurado",
	AdhesiveLaminated:  "Adesivo laminado",
	Banner440g:         "Lona 440g",
	BannerMesh:         "Lona mesh",
	BannerBacklight:    "Lona backlight",
	PS1mm:              "Placa PS 1mm",
	PS2mm:              "Placa PS 2mm",
	ACM3mm:             "Placa ACM 3mm",
	ACM4mm:             "Placa ACM 4mm",
	BoxLetter10mm:      "Letra caixa PS 10mm",
	BoxLetter15mm:      "Letra caixa PS 15mm",
	BoxLetter20mm:      "Letra caixa PS 20mm",
	BoxLetterPaint:     "pintura automotiva",
	BoxLetterACMBack:   "fundo em ACM",
	Glass6mm:           "Vidro temperado 6mm",
	Glass8mm:           "Vidro temperado 8mm",
	Glass10mm:          "Vidro temperado 10mm",
	GlassFrostedFilm:   "película jateada",
	GlassEtchedLogo:    "logo jateado",
}

var materialLabels = map[Material]string{
	MaterialCornerBracket: "Cantoneira",
	MaterialAnchorScrew:   "Parafuso com bucha",
	MaterialEyelet:        "Ilhós",
	MaterialLEDModule:     "Módulo LED",
	MaterialPowerSupply:   "Fonte chaveada",
	MaterialLEDLamp:       "Lâmpada LED",
}

var regionLabels = map[Region]string{
	RegionCentro:    "Centro",
	RegionZonaNorte: "Zona Norte",
	RegionZonaSul:   "Zona Sul",
	RegionZonaLeste: "Zona Leste",
	RegionZonaOeste: "Zona Oeste",
	RegionGrandeSP:  "Grande SP",
}

var categoryLabels = map[Category]string{
	CategoryAdhesive:  "Adesivo",
	CategoryBanner:    "Lona",
	CategoryPSPanel:   "Placa PS",
	CategoryACMPanel:  "Placa ACM",
	CategoryBoxLetter: "Letra caixa",
	CategoryGlass:     "Vidro temperado",
	CategoryFacade:    "Fachada",
	CategoryLightSign: "Luminoso",
}

func optionLabel(o Option) string {
	if l, ok := optionLabels[o]; ok {
		return l
	}
	return string(o)
}

func materialLabel(m Material) string {
	if l, ok := materialLabels[m]; ok {
		return l
	}
	return string(m)
}

func regionLabel(r Region) string {
	if l, ok := regionLabels[r]; ok {
		return l
	}
	return string(r)
}

// BudgetOptions are the ancillary display fields of a budget text.
type BudgetOptions struct {
	DeliveryDays int
	Note         string
}

// IncompletePrompt is rendered instead of a price while the input is still
// being filled in.
const IncompletePrompt = "Preencha as medidas e opções para calcular o orçamento."

// FormatBudgetText renders a budget as plain text for copy/export. Every
// number comes verbatim from the QuoteResult; nothing is recomputed here.
func FormatBudgetText(in QuoteInput, res QuoteResult, opts BudgetOptions) string {
	if !res.Valid {
		return IncompletePrompt
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Orçamento — %s\n", categoryLabels[in.Category])
	if in.WidthM > 0 && in.HeightM > 0 {
		fmt.Fprintf(&b, "📐 Medidas: %.2f x %.2f m", in.WidthM, in.HeightM)
		if in.Quantity > 1 {
			fmt.Fprintf(&b, " (%d un)", in.Quantity)
		}
		b.WriteString("\n")
	}
	b.WriteString("──────────────────\n")

	for _, item := range res.Items {
		if item.Detail != "" {
			fmt.Fprintf(&b, "- %s (%s): R$ %.2f\n", item.Label, item.Detail, item.Amount)
		} else {
			fmt.Fprintf(&b, "- %s: R$ %.2f\n", item.Label, item.Amount)
		}
	}

	b.WriteString("──────────────────\n")
	fmt.Fprintf(&b, "💵 Total: R$ %.2f\n", res.Total)

	if opts.DeliveryDays > 0 {
		fmt.Fprintf(&b, "🚚 Prazo de entrega: %d dias úteis\n", opts.DeliveryDays)
	}
	if opts.Note != "" {
		fmt.Fprintf(&b, "%s\n", opts.Note)
	}
	return b.String()
}
