package constants

// Имена обменника и ключей маршрутизации для событий жизненного цикла
// объявлений. Потребители (индексация, уведомления) биндятся на эти ключи.
const (
	ListingExchange = "listing_exchange"

	RoutingKeyListingSaved   = "listing.saved"
	RoutingKeyStatusChanged  = "listing.status_changed"
	RoutingKeyListingDeleted = "listing.deleted"

	EventTypeListingSaved   = "ListingSavedEvent"
	EventTypeStatusChanged  = "ListingStatusChangedEvent"
	EventTypeListingDeleted = "ListingDeletedEvent"

	EventVersion = "1.0.0"
)
