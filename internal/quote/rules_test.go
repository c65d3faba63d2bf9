package quote

import (
	"errors"
	"math"
	"testing"
)

func TestAdhesive_AppliesMaxRateNotSum(t *testing.T) {
	cfg := DefaultPricing()
	cfg.Adhesive = OptionTable{
		AdhesivePlain:      25,
		AdhesiveContourCut: 35,
		AdhesivePerforated: 45,
		AdhesiveLaminated:  70,
	}

	in := QuoteInput{
		Category: CategoryAdhesive,
		WidthM:   2,
		HeightM:  1,
		Quantity: 1,
		Options:  []Option{AdhesivePlain, AdhesiveContourCut},
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	// max(25, 35) * 2m², never (25+35) * 2m².
	nearlyEqual(t, "subtotal", res.Subtotal, 70)
}

func TestAdhesive_SingleOptionMatchesMaxOfItself(t *testing.T) {
	in := QuoteInput{
		Category: CategoryAdhesive,
		WidthM:   2,
		HeightM:  1,
		Quantity: 1,
		Options:  []Option{AdhesiveLaminated},
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, DefaultPricing())
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	nearlyEqual(t, "subtotal", res.Subtotal, 140)
}

func TestBoxLetter_AddOnsStackOntoThicknessRate(t *testing.T) {
	cfg := DefaultPricing()
	in := QuoteInput{
		Category: CategoryBoxLetter,
		WidthM:   1,
		HeightM:  1,
		Quantity: 2,
		Variant:  BoxLetter10mm,
		Options:  []Option{BoxLetterPaint, BoxLetterACMBack},
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	// (260 + 45 + 75) * 1m² per letter, two letters.
	nearlyEqual(t, "subtotal", res.Subtotal, 760)
}

func TestGlass_ExtensorsBypassFloorAndQuantity(t *testing.T) {
	cfg := DefaultPricing()
	in := QuoteInput{
		Category:  CategoryGlass,
		WidthM:    0.3,
		HeightM:   0.3,
		Quantity:  3,
		Variant:   Glass6mm,
		Extensors: 4,
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	// Panes: 0.09m² * 60 = 5.40 floored to 20, times 3. Extensors: 4 * 25,
	// neither floored nor multiplied by the pane count.
	nearlyEqual(t, "subtotal", res.Subtotal, 160)
}

func TestMissingConfigKeyIsAConfigError(t *testing.T) {
	cfg := DefaultPricing()
	delete(cfg.Banner, BannerMesh)

	in := QuoteInput{Category: CategoryBanner, WidthM: 1, HeightM: 1, Quantity: 1, Variant: BannerMesh}
	_, err := ComputeQuote(in, SurchargeSelection{}, cfg)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Key != "lona.lona_mesh" {
		t.Fatalf("unexpected key in config error: %q", cfgErr.Key)
	}
}

func TestNaNConfigValueIsAConfigError(t *testing.T) {
	cfg := DefaultPricing()
	cfg.PSPanel[PS1mm] = math.NaN()

	in := QuoteInput{Category: CategoryPSPanel, WidthM: 1, HeightM: 1, Quantity: 1, Variant: PS1mm}
	_, err := ComputeQuote(in, SurchargeSelection{}, cfg)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError for NaN rate, got %v", err)
	}
}

func TestFacade_ComponentsAreIndependentlyOptional(t *testing.T) {
	cfg := DefaultPricing()

	tarpOnly := QuoteInput{
		Category: CategoryFacade,
		Tarp:     TarpInput{WidthM: 4, HeightM: 2, Quantity: 1},
	}
	res, err := ComputeQuote(tarpOnly, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("tarp only: %v", err)
	}
	nearlyEqual(t, "tarp only subtotal", res.Subtotal, 280)

	materialsOnly := QuoteInput{
		Category:  CategoryFacade,
		Materials: map[Material]int{MaterialCornerBracket: 4, MaterialAnchorScrew: 20},
	}
	res, err = ComputeQuote(materialsOnly, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("materials only: %v", err)
	}
	nearlyEqual(t, "materials only subtotal", res.Subtotal, 78)

	combined := QuoteInput{
		Category:  CategoryFacade,
		Tarp:      TarpInput{WidthM: 4, HeightM: 2, Quantity: 1},
		Materials: map[Material]int{MaterialCornerBracket: 4, MaterialAnchorScrew: 20},
		Frame:     FrameInput{WidthM: 4, HeightM: 2},
	}
	res, err = ComputeQuote(combined, SurchargeSelection{}, cfg)
	if err != nil {
		t.Fatalf("combined: %v", err)
	}
	// Frame: perimeter 12m / 6m bars = 2 bars at 38.
	nearlyEqual(t, "combined subtotal", res.Subtotal, 280+78+76)
	if len(res.Items) != 4 {
		t.Fatalf("expected tarp + 2 materials + structure items, got %+v", res.Items)
	}
}

func TestFacade_NegativeMaterialQuantityChargesNothing(t *testing.T) {
	in := QuoteInput{
		Category:  CategoryFacade,
		Tarp:      TarpInput{WidthM: 1, HeightM: 1, Quantity: 1},
		Materials: map[Material]int{MaterialCornerBracket: -3},
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, DefaultPricing())
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	nearlyEqual(t, "subtotal", res.Subtotal, 35)
	if len(res.Items) != 1 {
		t.Fatalf("negative quantity must not produce a line item: %+v", res.Items)
	}
}

func TestLightSign_UsesOwnMaterialList(t *testing.T) {
	in := QuoteInput{
		Category: CategoryLightSign,
		Tarp:     TarpInput{WidthM: 2, HeightM: 1, Quantity: 1},
		Materials: map[Material]int{
			MaterialLEDModule:   10,
			MaterialPowerSupply: 1,
			// A facade material must be ignored here.
			MaterialCornerBracket: 99,
		},
	}

	res, err := ComputeQuote(in, SurchargeSelection{}, DefaultPricing())
	if err != nil {
		t.Fatalf("ComputeQuote returned error: %v", err)
	}
	// Tarp 2m² * 120 + 10 modules * 4.5 + one power supply * 90.
	nearlyEqual(t, "subtotal", res.Subtotal, 240+45+90)
}
