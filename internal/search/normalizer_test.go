package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homez-ar/api/internal/models"
)

func TestRemoteFilters_EmptyFilterYieldsNil(t *testing.T) {
	assert.Nil(t, RemoteFilters(models.Filter{}))
}

func TestRemoteFilters_MapsSetFields(t *testing.T) {
	f := models.Filter{
		OperationTypes: []string{models.OperationSale},
		PropertyTypes:  []string{"5785", "5791"},
		MinPrice:       "50000",
		MaxPrice:       "120000",
		Currency:       models.CurrencyUSD,
		Bedrooms:       []string{"2", "3"},
		Rooms:          []string{"3"},
		Location:       "palermo",
	}

	payload := RemoteFilters(f)

	require.NotNil(t, payload)
	assert.Equal(t, []string{"VENTA"}, payload.OperationType)
	assert.Equal(t, []string{"5785", "5791"}, payload.PropertyType)
	assert.Equal(t, "50000", payload.MinPrice)
	assert.Equal(t, "120000", payload.MaxPrice)
	assert.Equal(t, "U$D", payload.Currency)
	assert.Equal(t, []string{"2", "3"}, payload.AmountBedroom)
	assert.Equal(t, []string{"3"}, payload.AmountRoom)
	assert.Equal(t, "palermo", payload.Location)
}

func TestRemoteFilters_StripsResolvedIdentifiers(t *testing.T) {
	// Identifiers from a picked suggestion must never reach the wire; only
	// the display text travels.
	f := models.Filter{
		Location:        "Palermo",
		NeighborhoodIDs: []string{"101"},
		CityIDs:         []string{"7"},
	}

	payload := RemoteFilters(f)

	require.NotNil(t, payload)
	assert.Equal(t, "Palermo", payload.Location)
}

func TestRemoteFilters_IdentifiersAloneYieldNil(t *testing.T) {
	// A filter carrying only identifiers has nothing the remote API can
	// use, so the payload is omitted entirely.
	f := models.Filter{
		NeighborhoodIDs: []string{"101"},
	}

	assert.Nil(t, RemoteFilters(f))
}

func locationFixture() []models.Property {
	return []models.Property{
		{PropertyID: "1", Neighborhood: models.Neighborhood{Name: "Palermo"}, City: models.City{Name: "Capital Federal"}},
		{PropertyID: "2", Neighborhood: models.Neighborhood{Name: "Palermo Hollywood"}, City: models.City{Name: "Capital Federal"}},
		{PropertyID: "3", Neighborhood: models.Neighborhood{Name: "Belgrano"}, City: models.City{Name: "Capital Federal"}},
		{PropertyID: "4", Neighborhood: models.Neighborhood{Name: "Centro"}, City: models.City{Name: "Mar del Plata"}},
	}
}

func TestFilterByLocation_NoLocationIsIdentity(t *testing.T) {
	properties := locationFixture()

	filtered := FilterByLocation(properties, models.Filter{})

	assert.Equal(t, properties, filtered)
}

func TestFilterByLocation_MatchesNeighborhoodSubstring(t *testing.T) {
	filtered := FilterByLocation(locationFixture(), models.Filter{Location: "palermo"})

	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].PropertyID)
	assert.Equal(t, "2", filtered[1].PropertyID)
}

func TestFilterByLocation_MatchesCityName(t *testing.T) {
	filtered := FilterByLocation(locationFixture(), models.Filter{Location: "mar del plata"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "4", filtered[0].PropertyID)
}

func TestFilterByLocation_CaseInsensitive(t *testing.T) {
	filtered := FilterByLocation(locationFixture(), models.Filter{Location: "BELGRANO"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].PropertyID)
}

func TestFilterByLocation_NoMatchYieldsEmpty(t *testing.T) {
	filtered := FilterByLocation(locationFixture(), models.Filter{Location: "rosario"})

	assert.Empty(t, filtered)
}

func TestFilterByLocation_Idempotent(t *testing.T) {
	f := models.Filter{Location: "palermo"}

	once := FilterByLocation(locationFixture(), f)
	twice := FilterByLocation(once, f)

	assert.Equal(t, once, twice)
}
