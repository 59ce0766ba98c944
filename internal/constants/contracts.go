package constants

// Имена схем входящих запросов (см. schemas/requests).
const (
	RequestTypeSaveListing = "SaveListingRequest"

	RequestVersion = "1.0.0"
)
