package quote

import (
	"fmt"
	"math"
)

// Option identifies a selectable price key inside a category: a lona type,
// a thickness tier, or a finishing add-on.
type Option string

// Adhesive finishes. When several are selected the priciest one wins,
// they are never stacked.
const (
	AdhesivePlain      Option = "adesivo_comum"
	AdhesiveContourCut Option = "adesivo_recorte"
	AdhesivePerforated Option = "adesivo_perfurado"
	AdhesiveLaminated  Option = "adesivo_laminado"
)

// Lona (banner) types.
const (
	Banner440g      Option = "lona_440"
	BannerMesh      Option = "lona_mesh"
	BannerBacklight Option = "lona_backlight"
)

// Panel thickness tiers.
const (
	PS1mm  Option = "ps_1mm"
	PS2mm  Option = "ps_2mm"
	ACM3mm Option = "acm_3mm"
	ACM4mm Option = "acm_4mm"
)

// Box letter thickness tiers and per-m² add-ons.
const (
	BoxLetter10mm    Option = "letra_10mm"
	BoxLetter15mm    Option = "letra_15mm"
	BoxLetter20mm    Option = "letra_20mm"
	BoxLetterPaint   Option = "pintura_automotiva"
	BoxLetterACMBack Option = "fundo_acm"
)

// Tempered glass thickness tiers and per-m² add-ons.
const (
	Glass6mm         Option = "vidro_6mm"
	Glass8mm         Option = "vidro_8mm"
	Glass10mm        Option = "vidro_10mm"
	GlassFrostedFilm Option = "pelicula_jateada"
	GlassEtchedLogo  Option = "logo_jateado"
)

// Material is a discrete hardware item priced per unit, used by the facade
// and illuminated sign categories.
type Material string

const (
	MaterialCornerBracket Material = "cantoneira"
	MaterialAnchorScrew   Material = "parafuso_bucha"
	MaterialEyelet        Material = "ilhos"
	MaterialLEDModule     Material = "modulo_led"
	MaterialPowerSupply   Material = "fonte_chaveada"
	MaterialLEDLamp       Material = "lampada_led"
)

// CardTier is the number of credit-card installments.
type CardTier int

const (
	CardNone CardTier = 0
	Card3x   CardTier = 3
	Card6x   CardTier = 6
	Card12x  CardTier = 12
)

// Region is an installation area with a flat fee.
type Region string

const (
	RegionNone      Region = ""
	RegionCentro    Region = "centro"
	RegionZonaNorte Region = "zona_norte"
	RegionZonaSul   Region = "zona_sul"
	RegionZonaLeste Region = "zona_leste"
	RegionZonaOeste Region = "zona_oeste"
	RegionGrandeSP  Region = "grande_sp"
)

// PricingConfig holds every unit price the engine can charge. It is loaded
// once per session, treated as read-only during a computation, and validated
// eagerly: a missing or non-numeric required key is a configuration error,
// never a silent zero price.
type PricingConfig struct {
	Adhesive   OptionTable      `json:"adesivo"`
	Banner     OptionTable      `json:"lona"`
	PSPanel    OptionTable      `json:"placa_ps"`
	ACMPanel   OptionTable      `json:"placa_acm"`
	BoxLetter  AddOnTable       `json:"letra_caixa"`
	Glass      GlassConfig      `json:"vidro"`
	Facade     StructuredConfig `json:"fachada"`
	LightSign  StructuredConfig `json:"luminoso"`
	Surcharges SurchargeConfig  `json:"acrescimos"`
}

// OptionTable maps an option key to its price per m².
type OptionTable map[Option]float64

// AddOnTable splits single-select thickness tiers from stackable per-m²
// add-ons.
type AddOnTable struct {
	Thickness OptionTable `json:"espessura"`
	AddOns    OptionTable `json:"adicionais"`
}

// GlassConfig extends the add-on table with the per-piece extensor price.
type GlassConfig struct {
	Thickness     OptionTable `json:"espessura"`
	AddOns        OptionTable `json:"adicionais"`
	ExtensorPrice float64     `json:"extensor"`
}

// StructuredConfig prices a multi-component category: tarp per m², discrete
// materials per unit, and metalon bars bought whole.
type StructuredConfig struct {
	TarpRatePerM2 float64              `json:"lona_m2"`
	Materials     map[Material]float64 `json:"materiais"`
	BarLengthM    float64              `json:"metalon_barra_m"`
	BarPrice      float64              `json:"metalon_preco"`
}

// SurchargeConfig holds the cross-cutting surcharge tables.
type SurchargeConfig struct {
	InvoicePercent  float64              `json:"nota_fiscal_pct"`
	CardPercent     map[CardTier]float64 `json:"cartao_pct"`
	InstallationFee map[Region]float64   `json:"instalacao"`
}

// ConfigError reports a required price key that is absent or not a number.
// It is distinct from incomplete user input so callers can prompt for a
// configuration repair instead of showing a blank price.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pricing config: missing or invalid price for %q", e.Key)
}

// validPrice reports whether v is a usable unit price.
func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// priceFor resolves a required key from a price table.
func priceFor[K ~string](table map[K]float64, key K, section string) (float64, error) {
	v, ok := table[key]
	if !ok || !validPrice(v) {
		return 0, &ConfigError{Key: section + "." + string(key)}
	}
	return v, nil
}

// Option keys every configuration must price.
var (
	adhesiveOptions = []Option{AdhesivePlain, AdhesiveContourCut, AdhesivePerforated, AdhesiveLaminated}
	bannerTypes     = []Option{Banner440g, BannerMesh, BannerBacklight}
	psThickness     = []Option{PS1mm, PS2mm}
	acmThickness    = []Option{ACM3mm, ACM4mm}
	boxThickness    = []Option{BoxLetter10mm, BoxLetter15mm, BoxLetter20mm}
	boxAddOns       = []Option{BoxLetterPaint, BoxLetterACMBack}
	glassThickness  = []Option{Glass6mm, Glass8mm, Glass10mm}
	glassAddOns     = []Option{GlassFrostedFilm, GlassEtchedLogo}
	facadeMaterials = []Material{MaterialCornerBracket, MaterialAnchorScrew, MaterialEyelet}
	lightMaterials  = []Material{MaterialLEDModule, MaterialPowerSupply, MaterialLEDLamp}
	cardTiers       = []CardTier{Card3x, Card6x, Card12x}
	installRegions  = []Region{RegionCentro, RegionZonaNorte, RegionZonaSul, RegionZonaLeste, RegionZonaOeste, RegionGrandeSP}
)

// Validate checks that every key a category rule can ask for is present and
// numeric. It returns the first problem found as a *ConfigError.
func (c PricingConfig) Validate() error {
	checks := []struct {
		section string
		table   OptionTable
		keys    []Option
	}{
		{"adesivo", c.Adhesive, adhesiveOptions},
		{"lona", c.Banner, bannerTypes},
		{"placa_ps", c.PSPanel, psThickness},
		{"placa_acm", c.ACMPanel, acmThickness},
		{"letra_caixa.espessura", c.BoxLetter.Thickness, boxThickness},
		{"letra_caixa.adicionais", c.BoxLetter.AddOns, boxAddOns},
		{"vidro.espessura", c.Glass.Thickness, glassThickness},
		{"vidro.adicionais", c.Glass.AddOns, glassAddOns},
	}
	for _, ch := range checks {
		for _, key := range ch.keys {
			if _, err := priceFor(ch.table, key, ch.section); err != nil {
				return err
			}
		}
	}

	if !validPrice(c.Glass.ExtensorPrice) {
		return &ConfigError{Key: "vidro.extensor"}
	}

	if err := c.Facade.validate("fachada", facadeMaterials); err != nil {
		return err
	}
	if err := c.LightSign.validate("luminoso", lightMaterials); err != nil {
		return err
	}

	if !validPrice(c.Surcharges.InvoicePercent) {
		return &ConfigError{Key: "acrescimos.nota_fiscal_pct"}
	}
	for _, tier := range cardTiers {
		v, ok := c.Surcharges.CardPercent[tier]
		if !ok || !validPrice(v) {
			return &ConfigError{Key: fmt.Sprintf("acrescimos.cartao_pct.%d", tier)}
		}
	}
	for _, region := range installRegions {
		if _, err := priceFor(c.Surcharges.InstallationFee, region, "acrescimos.instalacao"); err != nil {
			return err
		}
	}
	return nil
}

func (c StructuredConfig) validate(section string, materials []Material) error {
	if !validPrice(c.TarpRatePerM2) {
		return &ConfigError{Key: section + ".lona_m2"}
	}
	for _, m := range materials {
		if _, err := priceFor(c.Materials, m, section+".materiais"); err != nil {
			return err
		}
	}
	if math.IsNaN(c.BarLengthM) || c.BarLengthM <= 0 {
		return &ConfigError{Key: section + ".metalon_barra_m"}
	}
	if !validPrice(c.BarPrice) {
		return &ConfigError{Key: section + ".metalon_preco"}
	}
	return nil
}

// DefaultPricing is the fallback price table used until a configuration has
// been saved. Values are the shop's current list prices.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		Adhesive: OptionTable{
			AdhesivePlain:      25.0,
			AdhesiveContourCut: 35.0,
			AdhesivePerforated: 45.0,
			AdhesiveLaminated:  70.0,
		},
		Banner: OptionTable{
			Banner440g:      35.0,
			BannerMesh:      60.0,
			BannerBacklight: 120.0,
		},
		PSPanel: OptionTable{
			PS1mm: 90.0,
			PS2mm: 140.0,
		},
		ACMPanel: OptionTable{
			ACM3mm: 180.0,
			ACM4mm: 220.0,
		},
		BoxLetter: AddOnTable{
			Thickness: OptionTable{
				BoxLetter10mm: 260.0,
				BoxLetter15mm: 310.0,
				BoxLetter20mm: 370.0,
			},
			AddOns: OptionTable{
				BoxLetterPaint:   45.0,
				BoxLetterACMBack: 75.0,
			},
		},
		Glass: GlassConfig{
			Thickness: OptionTable{
				Glass6mm:  60.0,
				Glass8mm:  85.0,
				Glass10mm: 110.0,
			},
			AddOns: OptionTable{
				GlassFrostedFilm: 28.0,
				GlassEtchedLogo:  40.0,
			},
			ExtensorPrice: 25.0,
		},
		Facade: StructuredConfig{
			TarpRatePerM2: 35.0,
			Materials: map[Material]float64{
				MaterialCornerBracket: 12.0,
				MaterialAnchorScrew:   1.5,
				MaterialEyelet:        0.9,
			},
			BarLengthM: 6.0,
			BarPrice:   38.0,
		},
		LightSign: StructuredConfig{
			TarpRatePerM2: 120.0,
			Materials: map[Material]float64{
				MaterialLEDModule:   4.5,
				MaterialPowerSupply: 90.0,
				MaterialLEDLamp:     18.0,
			},
			BarLengthM: 6.0,
			BarPrice:   38.0,
		},
		Surcharges: SurchargeConfig{
			InvoicePercent: 8.0,
			CardPercent: map[CardTier]float64{
				Card3x:  5.0,
				Card6x:  7.0,
				Card12x: 10.0,
			},
			InstallationFee: map[Region]float64{
				RegionCentro:    100.0,
				RegionZonaNorte: 150.0,
				RegionZonaSul:   150.0,
				RegionZonaLeste: 150.0,
				RegionZonaOeste: 150.0,
				RegionGrandeSP:  250.0,
			},
		},
	}
}
