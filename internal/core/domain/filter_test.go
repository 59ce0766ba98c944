package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin *float64
		wantMax *float64
	}{
		{name: "empty string", input: "", wantMin: nil, wantMax: nil},
		{name: "all sentinel", input: "all", wantMin: nil, wantMax: nil},
		{name: "full range", input: "1000-2500", wantMin: f64(1000), wantMax: f64(2500)},
		{name: "open max", input: "3000-", wantMin: f64(3000), wantMax: nil},
		{name: "zero max means unbounded", input: "3000-0", wantMin: f64(3000), wantMax: nil},
		{name: "lone number is lower bound", input: "1500", wantMin: f64(1500), wantMax: nil},
		{name: "garbage degrades to no-op", input: "cheap-expensive", wantMin: nil, wantMax: nil},
		{name: "garbage min keeps max", input: "abc-2000", wantMin: nil, wantMax: f64(2000)},
		{name: "whitespace tolerated", input: " 500 - 900 ", wantMin: f64(500), wantMax: f64(900)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePriceRange(tt.input)
			if tt.wantMin == nil {
				assert.Nil(t, got.Min)
			} else {
				require.NotNil(t, got.Min)
				assert.Equal(t, *tt.wantMin, *got.Min)
			}
			if tt.wantMax == nil {
				assert.Nil(t, got.Max)
			} else {
				require.NotNil(t, got.Max)
				assert.Equal(t, *tt.wantMax, *got.Max)
			}
		})
	}
}

func makeListing(title string, lt ListingType, price float64, city string, bedrooms, bathrooms float64) Listing {
	return Listing{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Title:     title,
		Type:      lt,
		Price:     price,
		City:      city,
		Address:   "12 Main St",
		Bedrooms:  bedrooms,
		Bathrooms: bathrooms,
		Status:    StatusPublished,
	}
}

func TestFilterListingsEmptyCriteriaReturnsInputAsIs(t *testing.T) {
	pool := []Listing{
		makeListing("A", TypeHouse, 1400, "Austin", 3, 2),
		makeListing("B", TypeApartment, 2400, "Dallas", 1, 1),
	}

	got := FilterListings(pool, FilterCriteria{})

	assert.Equal(t, pool, got)
	// Пустые критерии не должны даже копировать срез
	assert.Same(t, &pool[0], &got[0])
}

func TestFilterListingsByPriceRange(t *testing.T) {
	prices := []float64{1400, 2400, 3200, 4500, 6000}
	pool := make([]Listing, 0, len(prices))
	for _, p := range prices {
		pool = append(pool, makeListing("L", TypeHouse, p, "Austin", 2, 1))
	}

	got := FilterListings(pool, FilterCriteria{Price: PriceRange{Max: f64(5000)}})

	require.Len(t, got, 4)
	for _, l := range got {
		assert.LessOrEqual(t, l.Price, 5000.0)
	}

	got = FilterListings(pool, FilterCriteria{Price: PriceRange{Min: f64(2400), Max: f64(4500)}})
	require.Len(t, got, 3)
	assert.Equal(t, 2400.0, got[0].Price)
	assert.Equal(t, 4500.0, got[2].Price)
}

func TestFilterListingsPreservesOrder(t *testing.T) {
	pool := []Listing{
		makeListing("first", TypeHouse, 1000, "Austin", 2, 1),
		makeListing("second", TypeApartment, 2000, "Austin", 2, 1),
		makeListing("third", TypeHouse, 3000, "Austin", 2, 1),
	}

	tt := TypeHouse
	got := FilterListings(pool, FilterCriteria{Type: &tt})

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "third", got[1].Title)
}

func TestFilterListingsCombinesCriteriaWithAnd(t *testing.T) {
	pool := []Listing{
		makeListing("match", TypeApartment, 1800, "Austin", 2, 2),
		makeListing("wrong type", TypeHouse, 1800, "Austin", 2, 2),
		makeListing("too few bedrooms", TypeApartment, 1800, "Austin", 1, 2),
		makeListing("wrong city", TypeApartment, 1800, "Dallas", 2, 2),
	}

	tt := TypeApartment
	got := FilterListings(pool, FilterCriteria{
		Type:         &tt,
		MinBedrooms:  f64(2),
		MinBathrooms: f64(2),
		LocationText: "austin",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "match", got[0].Title)
}

func TestFilterCriteriaLocationMatchesAnyOfThreeFields(t *testing.T) {
	l := makeListing("Cozy downtown loft", TypeApartment, 2000, "Portland", 1, 1)
	l.Address = "500 Oak Avenue"

	assert.True(t, FilterCriteria{LocationText: "portland"}.Matches(l), "city match")
	assert.True(t, FilterCriteria{LocationText: "OAK"}.Matches(l), "address match, case-insensitive")
	assert.True(t, FilterCriteria{LocationText: "loft"}.Matches(l), "title match")
	assert.False(t, FilterCriteria{LocationText: "seattle"}.Matches(l))
}

func TestFilterListingsIsIdempotent(t *testing.T) {
	pool := []Listing{
		makeListing("A", TypeHouse, 1400, "Austin", 3, 2),
		makeListing("B", TypeApartment, 2400, "Dallas", 1, 1),
		makeListing("C", TypeHouse, 4500, "Austin", 4, 3),
	}
	criteria := FilterCriteria{Price: PriceRange{Max: f64(3000)}}

	once := FilterListings(pool, criteria)
	twice := FilterListings(once, criteria)

	assert.Equal(t, once, twice)
}
