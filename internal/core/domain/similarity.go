package domain

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultSimilarLimit - сколько похожих объявлений показываем по умолчанию.
const DefaultSimilarLimit = 4

// FindSimilar ранжирует пул кандидатов по близости к объявлению refID.
// Составной ключ сортировки (старшие уровни доминируют):
//  1. совпадение типа с образцом;
//  2. совпадение города;
//  3. модуль разницы в цене (меньше - ближе);
//  4. id по возрастанию - детерминированный тай-брейк.
//
// Сам образец и неопубликованные объявления исключаются. Если кандидатов
// меньше limit, возвращаются все - без ошибок и добивки.
func FindSimilar(pool []Listing, refID uuid.UUID, limit int) ([]Listing, error) {
	var ref *Listing
	for i := range pool {
		if pool[i].ID == refID {
			ref = &pool[i]
			break
		}
	}
	if ref == nil {
		return nil, ErrListingNotFound
	}

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	candidates := make([]Listing, 0, len(pool))
	for _, l := range pool {
		if l.ID == refID || l.Status != StatusPublished {
			continue
		}
		candidates = append(candidates, l)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		aType, bType := a.Type == ref.Type, b.Type == ref.Type
		if aType != bType {
			return aType
		}

		aCity, bCity := strings.EqualFold(a.City, ref.City), strings.EqualFold(b.City, ref.City)
		if aCity != bCity {
			return aCity
		}

		aDiff, bDiff := math.Abs(a.Price-ref.Price), math.Abs(b.Price-ref.Price)
		if aDiff != bDiff {
			return aDiff < bDiff
		}

		return a.ID.String() < b.ID.String()
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
