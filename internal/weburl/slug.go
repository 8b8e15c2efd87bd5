package weburl

import (
	"strings"

	"github.com/homez-ar/api/internal/models"
)

// SlugSearch is a pretty URL path decoded into the search vocabulary.
// LocationTitle is display text only; it is never validated against the
// location index.
type SlugSearch struct {
	PropertyTypeID string
	OperationCode  string
	LocationTitle  string
	DisplayTitle   string
}

// URL path keys for property types, mapped to the external API's IDs.
var slugPropertyTypes = map[string]string{
	"casas":               "5791",
	"departamentos":       "5785",
	"oficinas":            "5790",
	"chalets":             "5793",
	"casas-quinta":        "5781",
	"duplex":              "5795",
	"ph":                  "5792",
	"terrenos":            "5794",
	"locales-comerciales": "5780",
}

var slugPropertyTitles = map[string]string{
	"casas":               "Casas",
	"departamentos":       "Departamentos",
	"oficinas":            "Oficinas",
	"chalets":             "Chalets",
	"casas-quinta":        "Casas Quinta",
	"duplex":              "Dúplex",
	"ph":                  "PH",
	"terrenos":            "Terrenos",
	"locales-comerciales": "Locales Comerciales",
}

// URL path keys for operations.
var slugOperations = map[string]string{
	"venta":               models.OperationSale,
	"alquiler":            models.OperationRent,
	"alquiler-temporario": models.OperationTemporaryRent,
}

var slugOperationTitles = map[string]string{
	"venta":               "en Venta",
	"alquiler":            "en Alquiler",
	"alquiler-temporario": "Alquiler Temporario",
}

// Standalone operation-only phrases.
var slugOperationOnly = map[string]SlugSearch{
	"propiedades-en-venta": {
		OperationCode: models.OperationSale,
		DisplayTitle:  "Propiedades en Venta",
	},
	"propiedades-en-alquiler": {
		OperationCode: models.OperationRent,
		DisplayTitle:  "Propiedades en Alquiler",
	},
	"propiedades-alquiler-temporario": {
		OperationCode: models.OperationTemporaryRent,
		DisplayTitle:  "Propiedades Alquiler Temporario",
	},
}

// ParseSlug decodes hyphenated path segments into a canned search. The
// grammar is closed: an operation-only phrase, or a property+operation pair
// ("casas-en-venta"; temporary rent drops the "en": "casas-alquiler-
// temporario"), optionally followed by "-en-{location}". Anything else is
// not a search page and the caller must answer with a 404, never a silent
// empty-filter fallback.
func ParseSlug(segments []string) (SlugSearch, bool) {
	if len(segments) == 0 {
		return SlugSearch{}, false
	}
	slug := strings.Join(segments, "/")

	if s, ok := slugOperationOnly[slug]; ok {
		return s, true
	}

	for propertyKey, typeID := range slugPropertyTypes {
		for operationKey, operationCode := range slugOperations {
			base := propertyKey + "-en-" + operationKey
			if operationKey == "alquiler-temporario" {
				base = propertyKey + "-" + operationKey
			}

			title := slugPropertyTitles[propertyKey] + " " + slugOperationTitles[operationKey]

			if slug == base {
				return SlugSearch{
					PropertyTypeID: typeID,
					OperationCode:  operationCode,
					DisplayTitle:   title,
				}, true
			}

			if rest, ok := strings.CutPrefix(slug, base+"-en-"); ok && rest != "" {
				location := titleCase(rest)
				return SlugSearch{
					PropertyTypeID: typeID,
					OperationCode:  operationCode,
					LocationTitle:  location,
					DisplayTitle:   title + " en " + location,
				}, true
			}
		}
	}

	return SlugSearch{}, false
}

// Filter converts the decoded slug into the canonical search filter.
func (s SlugSearch) Filter() models.Filter {
	var f models.Filter
	if s.PropertyTypeID != "" {
		f.PropertyTypes = []string{s.PropertyTypeID}
	}
	if s.OperationCode != "" {
		f.OperationTypes = []string{s.OperationCode}
	}
	f.Location = s.LocationTitle
	return f
}

// titleCase converts a hyphenated location slug back to display text:
// each word capitalized, rejoined with spaces ("palermo-soho" → "Palermo Soho").
func titleCase(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
