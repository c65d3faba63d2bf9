package quote

import (
	"fmt"
	"math"
)

// StructureResult breaks down the metalon frame cost. CostPerSquareMeter is
// informational only and never feeds back into a price.
type StructureResult struct {
	LinearMeters       float64 `json:"metros_lineares"`
	BarsNeeded         float64 `json:"barras_necessarias"`
	BarsToCharge       int     `json:"barras_cobradas"`
	TotalCost          float64 `json:"custo_total"`
	CostPerSquareMeter float64 `json:"custo_m2"`
}

// ComputeStructure converts a rectangular frame plus bracing into whole
// metalon bars. Partial bars are billed whole: the shop cannot buy a
// fraction of a bar. Negative brace counts are treated as zero.
func ComputeStructure(frame FrameInput, barLengthM, barPrice float64) StructureResult {
	if frame.WidthM <= 0 || frame.HeightM <= 0 || barLengthM <= 0 {
		return StructureResult{}
	}

	hBraces := max(frame.HorizontalBraces, 0)
	vBraces := max(frame.VerticalBraces, 0)

	perimeter := 2 * (frame.WidthM + frame.HeightM)
	linear := perimeter + float64(hBraces)*frame.WidthM + float64(vBraces)*frame.HeightM

	barsNeeded := linear / barLengthM
	barsToCharge := int(math.Ceil(barsNeeded))
	totalCost := float64(barsToCharge) * barPrice

	area := frame.WidthM * frame.HeightM
	costPerM2 := 0.0
	if area > 0 {
		costPerM2 = totalCost / area
	}

	return StructureResult{
		LinearMeters:       linear,
		BarsNeeded:         barsNeeded,
		BarsToCharge:       barsToCharge,
		TotalCost:          totalCost,
		CostPerSquareMeter: costPerM2,
	}
}

// priceStructured aggregates the three independent components of a facade or
// illuminated sign: printed tarp, discrete materials, and the metalon frame.
// The quote is valid once any component is present.
func priceStructured(in QuoteInput, sc StructuredConfig, order []Material, section string) (float64, []LineItem, bool, error) {
	var subtotal float64
	var items []LineItem

	if in.Tarp.WidthM > 0 && in.Tarp.HeightM > 0 && in.Tarp.Quantity > 0 {
		if !validPrice(sc.TarpRatePerM2) {
			return 0, nil, false, &ConfigError{Key: section + ".lona_m2"}
		}
		area := in.Tarp.WidthM * in.Tarp.HeightM
		perUnit := ApplyMinimumCharge(area * sc.TarpRatePerM2)
		amount := perUnit * float64(in.Tarp.Quantity)
		subtotal += amount
		items = append(items, LineItem{
			Label:  "Lona impressa",
			Detail: fmt.Sprintf("%.2f x %.2f m, %d un (R$ %.2f/m²)", in.Tarp.WidthM, in.Tarp.HeightM, in.Tarp.Quantity, sc.TarpRatePerM2),
			Amount: amount,
		})
	}

	for _, m := range order {
		qty := in.Materials[m]
		if qty <= 0 {
			continue
		}
		price, err := priceFor(sc.Materials, m, section+".materiais")
		if err != nil {
			return 0, nil, false, err
		}
		amount := float64(qty) * price
		subtotal += amount
		items = append(items, LineItem{
			Label:  materialLabel(m),
			Detail: fmt.Sprintf("%d un (R$ %.2f/un)", qty, price),
			Amount: amount,
		})
	}

	if in.Frame.WidthM > 0 && in.Frame.HeightM > 0 {
		if math.IsNaN(sc.BarLengthM) || sc.BarLengthM <= 0 {
			return 0, nil, false, &ConfigError{Key: section + ".metalon_barra_m"}
		}
		if !validPrice(sc.BarPrice) {
			return 0, nil, false, &ConfigError{Key: section + ".metalon_preco"}
		}
		st := ComputeStructure(in.Frame, sc.BarLengthM, sc.BarPrice)
		subtotal += st.TotalCost
		items = append(items, LineItem{
			Label:  "Estrutura em metalon",
			Detail: fmt.Sprintf("%.2f m lineares, %d barra(s) de %.0f m", st.LinearMeters, st.BarsToCharge, sc.BarLengthM),
			Amount: st.TotalCost,
		})
	}

	if len(items) == 0 {
		return 0, nil, false, nil
	}
	return subtotal, items, true, nil
}

func priceFacade(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	return priceStructured(in, cfg.Facade, facadeMaterials, "fachada")
}

func priceLightSign(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	return priceStructured(in, cfg.LightSign, lightMaterials, "luminoso")
}
