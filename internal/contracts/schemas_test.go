package contracts

import (
	"testing"

	"listing-service/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "events/listing-saved/v1.json", want: "ListingSavedEvent/1.0.0"},
		{path: "events/listing-status-changed/v1.json", want: "ListingStatusChangedEvent/1.0.0"},
		{path: "events/listing-deleted/v1.json", want: "ListingDeletedEvent/1.0.0"},
		{path: "requests/save-listing/v1.json", want: "SaveListingRequest/1.0.0"},
		{path: "events/broken.json", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, generateKeyFromPath(tt.path), tt.path)
	}
}

func TestValidateRequestAcceptsValidPayload(t *testing.T) {
	body := []byte(`{
		"title": "Sunny two-bedroom",
		"type": "apartment",
		"price": 1850,
		"city": "Austin",
		"bedrooms": 2,
		"bathrooms": 1,
		"status": "published"
	}`)

	err := ValidateRequest(constants.RequestTypeSaveListing, constants.RequestVersion, body)
	assert.NoError(t, err)
}

// Нулевая цена допустима: Validate объявления ее пропускает,
// и контракт запроса не должен быть строже домена.
func TestValidateRequestAcceptsZeroPrice(t *testing.T) {
	body := []byte(`{"title":"Free seasonal sublet","type":"other","price":0}`)

	err := ValidateRequest(constants.RequestTypeSaveListing, constants.RequestVersion, body)
	assert.NoError(t, err)
}

func TestValidateRequestRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing required title", body: `{"type":"apartment","price":1850}`},
		{name: "unknown listing type", body: `{"title":"x","type":"castle","price":1850}`},
		{name: "negative price", body: `{"title":"x","type":"house","price":-1}`},
		{name: "unknown field", body: `{"title":"x","type":"house","price":10,"geo":"48.8,2.3"}`},
		{name: "not json at all", body: `title=x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(constants.RequestTypeSaveListing, constants.RequestVersion, []byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidateEventAcceptsPublishedEvent(t *testing.T) {
	body := []byte(`{
		"listing_id": "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"owner_id": "550e8400-e29b-41d4-a716-446655440000",
		"title": "Sunny two-bedroom",
		"type": "apartment",
		"price": 1850,
		"status": "published"
	}`)

	err := ValidateEvent(constants.EventTypeListingSaved, constants.EventVersion, body)
	assert.NoError(t, err)
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("NoSuchEvent", "9.9.9", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
