package quote

import "fmt"

// ApplySurcharges stacks the selected surcharges on the base subtotal. Each
// one is computed against the base, never against another surcharge, so
// toggling one does not move the others. Unknown or absent selections
// contribute zero. Line order is fixed: invoice, card fee, installation.
func ApplySurcharges(base float64, sel SurchargeSelection, cfg SurchargeConfig) (float64, []LineItem) {
	total := base
	var items []LineItem

	if sel.Invoice && validPrice(cfg.InvoicePercent) {
		amount := base * cfg.InvoicePercent / 100
		total += amount
		items = append(items, LineItem{
			Label:  "Nota fiscal",
			Detail: fmt.Sprintf("%.1f%%", cfg.InvoicePercent),
			Amount: amount,
		})
	}

	if sel.CardTier != CardNone {
		if pct, ok := cfg.CardPercent[sel.CardTier]; ok && validPrice(pct) {
			amount := base * pct / 100
			total += amount
			items = append(items, LineItem{
				Label:  fmt.Sprintf("Cartão %dx", sel.CardTier),
				Detail: fmt.Sprintf("%.1f%%", pct),
				Amount: amount,
			})
		}
	}

	if sel.Region != RegionNone {
		if fee, ok := cfg.InstallationFee[sel.Region]; ok && validPrice(fee) {
			total += fee
			items = append(items, LineItem{
				Label:  "Instalação",
				Detail: regionLabel(sel.Region),
				Amount: fee,
			})
		}
	}

	return total, items
}
