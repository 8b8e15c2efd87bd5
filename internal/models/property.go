package models

// Property represents a listing as returned by the external property API.
// The external system owns these records entirely: the application never
// persists or mutates a Property, it re-fetches on every page load.
//
// Prices and area measurements are decimal strings to avoid float rounding
// on currency values. Counts of zero mean "not applicable/unknown".
type Property struct {
	PropertyID    string         `json:"propertyId"`
	Address       string         `json:"address"`
	Price         string         `json:"price"`
	Currency      string         `json:"currency"`
	OperationType string         `json:"operationType"`
	AmountRoom    int            `json:"amountRoom"`
	AmountBedroom int            `json:"amountBedroom"`
	CoveredArea   string         `json:"coveredArea,omitempty"`
	UncoveredArea string         `json:"uncoveredArea,omitempty"`
	TotalArea     string         `json:"totalArea,omitempty"`
	Lat           float64        `json:"lat,omitempty"`
	Long          float64        `json:"long,omitempty"`
	Neighborhood  Neighborhood   `json:"neighborhood"`
	City          City           `json:"city"`
	State         State          `json:"state"`
	PropertyType  PropertyType   `json:"propertyType"`
	Images        []Image        `json:"images"`
	MetaData      []PropertyMeta `json:"meta_data"`
}

// Neighborhood identifies the neighborhood a property belongs to.
type Neighborhood struct {
	NeighborhoodID int    `json:"neighborhoodId"`
	Name           string `json:"name"`
}

// City identifies the city a property belongs to.
type City struct {
	CityID int    `json:"cityId"`
	Name   string `json:"name"`
}

// State identifies the province/state a property belongs to.
type State struct {
	StateID int    `json:"stateId"`
	Name    string `json:"name"`
}

// PropertyType is the categorical kind of real estate, keyed by the
// external API's numeric-string identifiers.
type PropertyType struct {
	TypeID string `json:"typeId"`
	Name   string `json:"name"`
}

// Image is one entry of a property's ordered image list.
type Image struct {
	ImageID      string `json:"imageId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// PropertyMeta is a flexible key-value entry attached to a property.
// The external API carries the human title and plain-text description
// here rather than as first-class fields.
type PropertyMeta struct {
	MetaID    string `json:"metaId"`
	MetaKey   string `json:"metaKey"`
	MetaValue string `json:"metaValue"`
}

// MetaValue returns the value for the given meta key, or "" when absent.
func (p *Property) MetaValue(key string) string {
	for _, m := range p.MetaData {
		if m.MetaKey == key {
			return m.MetaValue
		}
	}
	return ""
}

// Title returns the human title carried in meta data, falling back to the
// street address when the external system did not set one.
func (p *Property) Title() string {
	if t := p.MetaValue("title"); t != "" {
		return t
	}
	return p.Address
}
