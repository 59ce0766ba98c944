package domain

import (
	"strconv"
	"strings"
)

// PriceRange - единое представление ценового фильтра.
// Вариант с одним "max" (слайдер) и вариант со строкой "min-max"
// сводятся к нему на границе API. nil-границы не ограничивают.
type PriceRange struct {
	Min *float64
	Max *float64
}

// ParsePriceRange разбирает историческую строку вида "1000-2500".
// Отсутствующий или нулевой максимум ("3000-" / "3000-0") означает
// "без верхней границы". Мусор на любом из концов игнорируется:
// фильтрация деградирует до no-op, а не падает.
func ParsePriceRange(s string) PriceRange {
	var r PriceRange
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return r
	}

	minPart, maxPart, found := strings.Cut(s, "-")
	if !found {
		// Одиночное число трактуем как нижнюю границу, как в исходных данных
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			r.Min = &v
		}
		return r
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(minPart), 64); err == nil {
		r.Min = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(maxPart), 64); err == nil && v > 0 {
		r.Max = &v
	}
	return r
}

// FilterCriteria - набор необязательных предикатов, объединяемых по AND.
// Нулевые значения означают отсутствие ограничения.
type FilterCriteria struct {
	Type         *ListingType
	Price        PriceRange
	MinBedrooms  *float64
	MinBathrooms *float64
	LocationText string
}

// IsEmpty сообщает, что ни один предикат не задан.
func (c FilterCriteria) IsEmpty() bool {
	return c.Type == nil &&
		c.Price.Min == nil && c.Price.Max == nil &&
		c.MinBedrooms == nil && c.MinBathrooms == nil &&
		c.LocationText == ""
}

// Matches проверяет одно объявление против всех заданных критериев.
func (c FilterCriteria) Matches(l Listing) bool {
	if c.Type != nil && l.Type != *c.Type {
		return false
	}
	if c.Price.Min != nil && l.Price < *c.Price.Min {
		return false
	}
	if c.Price.Max != nil && l.Price > *c.Price.Max {
		return false
	}
	if c.MinBedrooms != nil && l.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.MinBathrooms != nil && l.Bathrooms < *c.MinBathrooms {
		return false
	}
	if c.LocationText != "" {
		needle := strings.ToLower(c.LocationText)
		// Достаточно совпадения по любому из трех полей
		if !strings.Contains(strings.ToLower(l.Address), needle) &&
			!strings.Contains(strings.ToLower(l.City), needle) &&
			!strings.Contains(strings.ToLower(l.Title), needle) {
			return false
		}
	}
	return true
}

// FilterListings применяет критерии к коллекции объявлений.
// Порядок входа сохраняется, вход не мутируется, функция тотальна:
// пустые критерии возвращают вход как есть. Предполагается, что
// пул уже ограничен опубликованными объявлениями вызывающей стороной.
func FilterListings(listings []Listing, criteria FilterCriteria) []Listing {
	if criteria.IsEmpty() {
		return listings
	}

	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.Matches(l) {
			result = append(result, l)
		}
	}
	return result
}
