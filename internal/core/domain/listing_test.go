package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingTypeRejectsUnknownValues(t *testing.T) {
	for _, valid := range []string{"house", "apartment", "condo", "studio", "office", "land", "other"} {
		got, err := ParseListingType(valid)
		require.NoError(t, err)
		assert.Equal(t, ListingType(valid), got)
	}

	for _, invalid := range []string{"", "castle", "House", "all"} {
		_, err := ParseListingType(invalid)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "value %q", invalid)
	}
}

func TestParseListingStatusRejectsUnknownValues(t *testing.T) {
	for _, valid := range []string{"draft", "published", "archived"} {
		got, err := ParseListingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, ListingStatus(valid), got)
	}

	_, err := ParseListingStatus("deleted")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestListingValidate(t *testing.T) {
	valid := makeListing("ok", TypeHouse, 1500, "Austin", 3, 2)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Listing)
	}{
		{name: "empty title", mutate: func(l *Listing) { l.Title = "" }},
		{name: "unknown type", mutate: func(l *Listing) { l.Type = "castle" }},
		{name: "unknown status", mutate: func(l *Listing) { l.Status = "hidden" }},
		{name: "negative price", mutate: func(l *Listing) { l.Price = -10 }},
		{name: "negative bedrooms", mutate: func(l *Listing) { l.Bedrooms = -1 }},
		{name: "negative sqft", mutate: func(l *Listing) { l.Sqft = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := makeListing("ok", TypeHouse, 1500, "Austin", 3, 2)
			tt.mutate(&l)
			assert.Error(t, l.Validate())
		})
	}
}

func TestEnsureCoverImage(t *testing.T) {
	l := makeListing("no images", TypeHouse, 1500, "Austin", 3, 2)
	require.Empty(t, l.Images)

	l.EnsureCoverImage()
	require.Len(t, l.Images, 1)
	assert.Equal(t, PlaceholderImageURL, l.Images[0])

	// Существующие изображения не трогаем
	l.Images = []string{"https://example.com/1.jpg"}
	l.EnsureCoverImage()
	assert.Equal(t, []string{"https://example.com/1.jpg"}, l.Images)
}

func TestCanBeEditedBy(t *testing.T) {
	l := makeListing("owned", TypeHouse, 1500, "Austin", 3, 2)
	stranger := uuid.New()

	assert.True(t, l.CanBeEditedBy(l.OwnerID, RoleLandlord))
	assert.True(t, l.CanBeEditedBy(stranger, RoleAdmin))
	assert.False(t, l.CanBeEditedBy(stranger, RoleLandlord))
	assert.False(t, l.CanBeEditedBy(stranger, RoleTenant))
}
