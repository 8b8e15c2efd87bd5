// Package weburl keeps the canonical search filter and the site's shareable
// URLs mutually consistent: a query-string codec for the generic search page
// and a decoder for the SEO-friendly pretty slugs.
package weburl

import (
	"net/url"

	"github.com/homez-ar/api/internal/models"
)

// Query-string keys understood by the search page. They are intentionally
// short, Spanish, human-readable tokens.
const (
	keyOperation = "operacion"
	keyType      = "tipo"
	keyLocation  = "ubicacion"
	keyMinPrice  = "precio-min"
	keyMaxPrice  = "precio-max"
	keyCurrency  = "moneda"
	keyBedrooms  = "dormitorios"
	keyRooms     = "ambientes"
)

// The internal currency codes contain symbols that are unsafe and ugly in
// URLs, so they travel as plain ISO-like tokens.
var currencyToURL = map[string]string{
	models.CurrencyUSD: "USD",
	models.CurrencyARS: "ARS",
}

var currencyFromURL = map[string]string{
	"USD": models.CurrencyUSD,
	"ARS": models.CurrencyARS,
}

// EncodeFilter emits one query key per populated filter field. Resolved
// neighborhood/city identifiers are not part of the URL vocabulary and do
// not round-trip.
func EncodeFilter(f models.Filter) url.Values {
	values := url.Values{}

	for _, op := range f.OperationTypes {
		values.Add(keyOperation, op)
	}
	for _, pt := range f.PropertyTypes {
		values.Add(keyType, pt)
	}
	if f.Location != "" {
		values.Set(keyLocation, f.Location)
	}
	if f.MinPrice != "" {
		values.Set(keyMinPrice, f.MinPrice)
	}
	if f.MaxPrice != "" {
		values.Set(keyMaxPrice, f.MaxPrice)
	}
	if f.Currency != "" {
		if token, ok := currencyToURL[f.Currency]; ok {
			values.Set(keyCurrency, token)
		}
	}
	for _, b := range f.Bedrooms {
		values.Add(keyBedrooms, b)
	}
	for _, r := range f.Rooms {
		values.Add(keyRooms, r)
	}

	return values
}

// DecodeFilter is the inverse of EncodeFilter. Unknown or missing keys are
// simply absent from the result; defaults belong to the UI layer, not here.
func DecodeFilter(values url.Values) models.Filter {
	var f models.Filter

	if ops := values[keyOperation]; len(ops) > 0 {
		f.OperationTypes = ops
	}
	if types := values[keyType]; len(types) > 0 {
		f.PropertyTypes = types
	}
	f.Location = values.Get(keyLocation)
	f.MinPrice = values.Get(keyMinPrice)
	f.MaxPrice = values.Get(keyMaxPrice)
	if token := values.Get(keyCurrency); token != "" {
		f.Currency = currencyFromURL[token]
	}
	if bedrooms := values[keyBedrooms]; len(bedrooms) > 0 {
		f.Bedrooms = bedrooms
	}
	if rooms := values[keyRooms]; len(rooms) > 0 {
		f.Rooms = rooms
	}

	return f
}
