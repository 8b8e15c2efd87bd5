package models

// Currency codes accepted by the external property API.
const (
	CurrencyUSD = "U$D"
	CurrencyARS = "AR$"
)

// Operation type codes accepted by the external property API.
const (
	OperationSale          = "VENTA"
	OperationRent          = "ALQUILER_PERMANENTE"
	OperationTemporaryRent = "ALQUILER_TEMPORARIO"
)

// OperationTypes maps every valid operation code to its display label.
var OperationTypes = map[string]string{
	OperationSale:          "Venta",
	OperationRent:          "Alquiler",
	OperationTemporaryRent: "Alquiler Temporal",
}

// PropertyTypes maps the external API's property type IDs to display labels.
var PropertyTypes = map[string]string{
	"5781": "Casa quinta",
	"5785": "Departamento",
	"5791": "Casa",
	"5794": "Terreno / Lote",
	"5786": "Galpón",
	"5780": "Local comercial",
	"5790": "Oficina",
	"5784": "Cochera",
	"5793": "Chalet",
	"5787": "Depósito",
	"5795": "Dúplex",
	"5796": "Campo",
	"5797": "Fondo de comercio",
	"5798": "Hotel",
	"5799": "Finca",
	"5803": "Edificio",
	"5805": "Cabaña",
	"5806": "Chacra",
	"5792": "PH",
}

// Filter is the canonical, sparse search filter. Zero-valued fields mean
// "no constraint". Multi-value fields carry the external API's string
// vocabulary; for bedroom/room counts the value "5" means "5 or more".
//
// Prices stay as the exact strings the user typed.
type Filter struct {
	OperationTypes  []string
	PropertyTypes   []string
	MinPrice        string
	MaxPrice        string
	Currency        string
	Bedrooms        []string
	Rooms           []string
	Location        string
	NeighborhoodIDs []string
	CityIDs         []string
}

// SetLocationText replaces the free-text location and clears any resolved
// neighborhood/city identifiers. A resolved identifier is a precise pointer
// set when the user picked an autocomplete suggestion; once the text is
// edited, a stale identifier paired with new text would be incoherent.
func (f *Filter) SetLocationText(text string) {
	f.Location = text
	f.NeighborhoodIDs = nil
	f.CityIDs = nil
}

// SetLocationSuggestion applies a picked autocomplete suggestion: the
// display name becomes the free text and the identifier is recorded
// according to its kind.
func (f *Filter) SetLocationSuggestion(s LocationSuggestion) {
	f.Location = s.Name
	f.NeighborhoodIDs = nil
	f.CityIDs = nil
	switch s.Kind {
	case LocationKindNeighborhood:
		f.NeighborhoodIDs = []string{s.RawID()}
	case LocationKindCity:
		f.CityIDs = []string{s.RawID()}
	}
}

// IsZero reports whether the filter carries no constraints at all.
func (f Filter) IsZero() bool {
	return len(f.OperationTypes) == 0 &&
		len(f.PropertyTypes) == 0 &&
		f.MinPrice == "" &&
		f.MaxPrice == "" &&
		f.Currency == "" &&
		len(f.Bedrooms) == 0 &&
		len(f.Rooms) == 0 &&
		f.Location == "" &&
		len(f.NeighborhoodIDs) == 0 &&
		len(f.CityIDs) == 0
}
