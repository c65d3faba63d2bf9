package quote

import "fmt"

// checkAreaInput validates the shared area-rate fields. A zero return means
// the user has not finished entering the quote yet.
func checkAreaInput(in QuoteInput) (float64, bool) {
	if in.WidthM <= 0 || in.HeightM <= 0 || in.Quantity < 1 {
		return 0, false
	}
	return in.WidthM * in.HeightM, true
}

func containsOption(keys []Option, o Option) bool {
	for _, k := range keys {
		if k == o {
			return true
		}
	}
	return false
}

func areaDetail(in QuoteInput, rate float64) string {
	return fmt.Sprintf("%.2f x %.2f m, %d un (R$ %.2f/m²)", in.WidthM, in.HeightM, in.Quantity, rate)
}

// priceAreaRate is the shared shape of the single-select area categories:
// per-unit cost is the area times the selected rate, floored at the minimum
// charge, then multiplied by quantity.
func priceAreaRate(in QuoteInput, table OptionTable, allowed []Option, section string) (float64, []LineItem, bool, error) {
	area, ok := checkAreaInput(in)
	if !ok || !containsOption(allowed, in.Variant) {
		return 0, nil, false, nil
	}

	rate, err := priceFor(table, in.Variant, section)
	if err != nil {
		return 0, nil, false, err
	}

	perUnit := ApplyMinimumCharge(area * rate)
	subtotal := perUnit * float64(in.Quantity)
	item := LineItem{
		Label:  optionLabel(in.Variant),
		Detail: areaDetail(in, rate),
		Amount: subtotal,
	}
	return subtotal, []LineItem{item}, true, nil
}

func priceBanner(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	return priceAreaRate(in, cfg.Banner, bannerTypes, "lona")
}

func pricePSPanel(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	return priceAreaRate(in, cfg.PSPanel, psThickness, "placa_ps")
}

func priceACMPanel(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	return priceAreaRate(in, cfg.ACMPanel, acmThickness, "placa_acm")
}

// priceAdhesive picks the highest rate among the selected finishes. Finishes
// never stack: cutting a laminated adhesive charges the laminated rate only.
func priceAdhesive(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	area, ok := checkAreaInput(in)
	if !ok {
		return 0, nil, false, nil
	}

	var applied Option
	maxRate := 0.0
	for _, o := range in.Options {
		if !containsOption(adhesiveOptions, o) {
			continue
		}
		rate, err := priceFor(cfg.Adhesive, o, "adesivo")
		if err != nil {
			return 0, nil, false, err
		}
		if applied == "" || rate > maxRate {
			applied = o
			maxRate = rate
		}
	}
	if applied == "" {
		return 0, nil, false, nil
	}

	perUnit := ApplyMinimumCharge(area * maxRate)
	subtotal := perUnit * float64(in.Quantity)
	item := LineItem{
		Label:  optionLabel(applied),
		Detail: areaDetail(in, maxRate),
		Amount: subtotal,
	}
	return subtotal, []LineItem{item}, true, nil
}

// stackedRate sums the thickness-tier rate with the selected per-m² add-ons.
func stackedRate(in QuoteInput, thickness OptionTable, thicknessKeys []Option, addOns OptionTable, addOnKeys []Option, section string) (float64, []Option, bool, error) {
	if !containsOption(thicknessKeys, in.Variant) {
		return 0, nil, false, nil
	}
	rate, err := priceFor(thickness, in.Variant, section+".espessura")
	if err != nil {
		return 0, nil, false, err
	}

	var selected []Option
	for _, o := range in.Options {
		if !containsOption(addOnKeys, o) {
			continue
		}
		add, err := priceFor(addOns, o, section+".adicionais")
		if err != nil {
			return 0, nil, false, err
		}
		rate += add
		selected = append(selected, o)
	}
	return rate, selected, true, nil
}

func stackedDetail(in QuoteInput, rate float64, addOns []Option) string {
	detail := areaDetail(in, rate)
	for _, o := range addOns {
		detail += ", " + optionLabel(o)
	}
	return detail
}

func priceBoxLetter(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	area, ok := checkAreaInput(in)
	if !ok {
		return 0, nil, false, nil
	}
	rate, addOns, ok, err := stackedRate(in, cfg.BoxLetter.Thickness, boxThickness, cfg.BoxLetter.AddOns, boxAddOns, "letra_caixa")
	if err != nil || !ok {
		return 0, nil, false, err
	}

	perUnit := ApplyMinimumCharge(area * rate)
	subtotal := perUnit * float64(in.Quantity)
	item := LineItem{
		Label:  optionLabel(in.Variant),
		Detail: stackedDetail(in, rate, addOns),
		Amount: subtotal,
	}
	return subtotal, []LineItem{item}, true, nil
}

// priceGlass prices the panes at an area rate and adds the inox extensors as
// counted pieces. Extensors are not floored at the minimum charge and are
// not multiplied by the pane quantity.
func priceGlass(in QuoteInput, cfg PricingConfig) (float64, []LineItem, bool, error) {
	area, ok := checkAreaInput(in)
	if !ok {
		return 0, nil, false, nil
	}
	rate, addOns, ok, err := stackedRate(in, cfg.Glass.Thickness, glassThickness, cfg.Glass.AddOns, glassAddOns, "vidro")
	if err != nil || !ok {
		return 0, nil, false, err
	}

	perUnit := ApplyMinimumCharge(area * rate)
	subtotal := perUnit * float64(in.Quantity)
	items := []LineItem{{
		Label:  optionLabel(in.Variant),
		Detail: stackedDetail(in, rate, addOns),
		Amount: subtotal,
	}}

	if in.Extensors > 0 {
		if !validPrice(cfg.Glass.ExtensorPrice) {
			return 0, nil, false, &ConfigError{Key: "vidro.extensor"}
		}
		amount := float64(in.Extensors) * cfg.Glass.ExtensorPrice
		subtotal += amount
		items = append(items, LineItem{
			Label:  "Extensor inox",
			Detail: fmt.Sprintf("%d un (R$ %.2f/un)", in.Extensors, cfg.Glass.ExtensorPrice),
			Amount: amount,
		})
	}
	return subtotal, items, true, nil
}
