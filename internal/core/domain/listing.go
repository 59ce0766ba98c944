package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListingType - закрытый перечислимый тип недвижимости.
// Неизвестные значения отклоняются при парсинге, а не проглатываются.
type ListingType string

const (
	TypeHouse     ListingType = "house"
	TypeApartment ListingType = "apartment"
	TypeCondo     ListingType = "condo"
	TypeStudio    ListingType = "studio"
	TypeOffice    ListingType = "office"
	TypeLand      ListingType = "land"
	TypeOther     ListingType = "other"
)

// ParseListingType валидирует строку из внешнего мира (API, БД).
func ParseListingType(s string) (ListingType, error) {
	switch t := ListingType(s); t {
	case TypeHouse, TypeApartment, TypeCondo, TypeStudio, TypeOffice, TypeLand, TypeOther:
		return t, nil
	}
	return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown listing type %q", s)}
}

// ListingStatus - статус жизненного цикла объявления.
type ListingStatus string

const (
	StatusDraft     ListingStatus = "draft"
	StatusPublished ListingStatus = "published"
	StatusArchived  ListingStatus = "archived"
)

func ParseListingStatus(s string) (ListingStatus, error) {
	switch st := ListingStatus(s); st {
	case StatusDraft, StatusPublished, StatusArchived:
		return st, nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown listing status %q", s)}
}

// PlaceholderImageURL подставляется, если у объявления нет ни одного фото
// на момент публикации. Первое изображение в списке - обложка.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&q=80"

// Listing - основная доменная сущность: объявление о сдаче недвижимости.
type Listing struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Type        ListingType
	Price       float64
	Currency    string
	Address     string
	City        string
	State       string
	Zip         string
	Bedrooms    float64
	Bathrooms   float64
	Sqft        float64
	Description string
	Images      []string
	Status      ListingStatus
	CreatedAt   time.Time
}

// Validate проверяет инварианты сущности перед сохранением.
func (l *Listing) Validate() error {
	if l.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if _, err := ParseListingType(string(l.Type)); err != nil {
		return err
	}
	if _, err := ParseListingStatus(string(l.Status)); err != nil {
		return err
	}
	if l.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	if l.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Reason: "must be non-negative"}
	}
	if l.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Reason: "must be non-negative"}
	}
	if l.Sqft < 0 {
		return &ValidationError{Field: "sqft", Reason: "must be non-negative"}
	}
	return nil
}

// EnsureCoverImage гарантирует непустой список изображений:
// публикуемое объявление всегда имеет хотя бы обложку-заглушку.
func (l *Listing) EnsureCoverImage() {
	if len(l.Images) == 0 {
		l.Images = []string{PlaceholderImageURL}
	}
}

// CanBeEditedBy - правило доступа: редактировать может владелец или админ.
// Само решение (403) принимает вызывающая сторона.
func (l *Listing) CanBeEditedBy(userID uuid.UUID, role UserRole) bool {
	return l.OwnerID == userID || role == RoleAdmin
}

// UserRole - роль пользователя, разрешенная внешним auth-сервисом.
// Ядро не хранит сессий, роль приходит параметром.
type UserRole string

const (
	RoleTenant   UserRole = "tenant"
	RoleLandlord UserRole = "landlord"
	RoleAgent    UserRole = "agent"
	RoleAdmin    UserRole = "admin"
)

func ParseUserRole(s string) (UserRole, error) {
	switch r := UserRole(s); r {
	case RoleTenant, RoleLandlord, RoleAgent, RoleAdmin:
		return r, nil
	}
	return "", &ValidationError{Field: "role", Reason: fmt.Sprintf("unknown user role %q", s)}
}
