// Package quote computes sign/print shop budgets. Every function is a pure
// computation over the caller-supplied input and pricing configuration: no
// I/O, no shared state, safe for concurrent use.
package quote

import "fmt"

// MinimumCharge is the floor for a per-unit area-rate cost. It applies
// before quantity multiplication and only to area-rate pricing; discrete
// items (extensors, hardware materials, metalon bars) are billed as counted.
const MinimumCharge = 20.0

// ApplyMinimumCharge clamps an area-rate per-unit cost to the shop floor.
func ApplyMinimumCharge(amount float64) float64 {
	if amount < MinimumCharge {
		return MinimumCharge
	}
	return amount
}

// Category is a product line with its own pricing rule.
type Category string

const (
	CategoryAdhesive  Category = "adesivo"
	CategoryBanner    Category = "lona"
	CategoryPSPanel   Category = "placa_ps"
	CategoryACMPanel  Category = "placa_acm"
	CategoryBoxLetter Category = "letra_caixa"
	CategoryGlass     Category = "vidro"
	CategoryFacade    Category = "fachada"
	CategoryLightSign Category = "luminoso"
)

// TarpInput is the printed tarp component of a structured category.
type TarpInput struct {
	WidthM   float64 `json:"largura_m"`
	HeightM  float64 `json:"altura_m"`
	Quantity int     `json:"quantidade"`
}

// FrameInput is the metalon frame of a structured category.
type FrameInput struct {
	WidthM           float64 `json:"largura_m"`
	HeightM          float64 `json:"altura_m"`
	HorizontalBraces int     `json:"travessas_horizontais"`
	VerticalBraces   int     `json:"travessas_verticais"`
}

// QuoteInput carries the raw user entries for one computation. Fields that
// do not apply to the selected category are ignored by its rule.
type QuoteInput struct {
	Category Category `json:"categoria"`

	WidthM   float64 `json:"largura_m"`
	HeightM  float64 `json:"altura_m"`
	Quantity int     `json:"quantidade"`

	// Variant is the single-select option: lona type or thickness tier.
	Variant Option `json:"variante,omitempty"`
	// Options are stackable selections: adhesive finishes or add-ons.
	Options []Option `json:"opcoes,omitempty"`

	// Extensors is the count of inox standoffs, glass only.
	Extensors int `json:"extensores,omitempty"`

	Tarp      TarpInput        `json:"lona,omitempty"`
	Frame     FrameInput       `json:"estrutura,omitempty"`
	Materials map[Material]int `json:"materiais,omitempty"`
}

// SurchargeSelection are the optional additions chosen by the user. At most
// one card tier and one region are expected; the UI enforces that.
type SurchargeSelection struct {
	Invoice  bool     `json:"nota_fiscal"`
	CardTier CardTier `json:"cartao"`
	Region   Region   `json:"instalacao"`
}

// LineItem is one contribution to the total, in display order.
type LineItem struct {
	Label  string  `json:"descricao"`
	Detail string  `json:"detalhe,omitempty"`
	Amount float64 `json:"valor"`
}

// QuoteResult is the computed budget. Valid is false while the input is
// still incomplete; that is a normal mid-entry state, not an error.
type QuoteResult struct {
	Valid    bool       `json:"valido"`
	Subtotal float64    `json:"subtotal"`
	Items    []LineItem `json:"itens"`
	Total    float64    `json:"total"`
}

// ruleFunc prices one category. It reports valid=false with a zero subtotal
// when required inputs are absent or non-positive, and an error only for a
// broken configuration.
type ruleFunc func(QuoteInput, PricingConfig) (float64, []LineItem, bool, error)

var rules = map[Category]ruleFunc{
	CategoryAdhesive:  priceAdhesive,
	CategoryBanner:    priceBanner,
	CategoryPSPanel:   pricePSPanel,
	CategoryACMPanel:  priceACMPanel,
	CategoryBoxLetter: priceBoxLetter,
	CategoryGlass:     priceGlass,
	CategoryFacade:    priceFacade,
	CategoryLightSign: priceLightSign,
}

// ComputeQuote runs the category rule and stacks the selected surcharges on
// the base subtotal. It allocates a fresh result on every call and can be
// invoked repeatedly with identical inputs for identical output.
func ComputeQuote(in QuoteInput, sel SurchargeSelection, cfg PricingConfig) (QuoteResult, error) {
	rule, ok := rules[in.Category]
	if !ok {
		return QuoteResult{}, fmt.Errorf("unknown category %q", in.Category)
	}

	subtotal, items, valid, err := rule(in, cfg)
	if err != nil {
		return QuoteResult{}, err
	}
	if !valid {
		return QuoteResult{}, nil
	}

	total, surcharges := ApplySurcharges(subtotal, sel, cfg.Surcharges)
	return QuoteResult{
		Valid:    true,
		Subtotal: subtotal,
		Items:    append(items, surcharges...),
		Total:    total,
	}, nil
}
