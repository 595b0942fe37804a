// Package rank reorders normalized search results before they are returned.
// Strategies are pluggable so the transport layer can map a sort key straight
// to one.
package rank

import "sort"

type Strategy[T any] interface {
	Apply(items []T)
}

// CheapestFirst orders by ascending price. Stable, so provider order breaks
// ties.
type CheapestFirst[T any] struct {
	Price func(T) float64
}

func (s CheapestFirst[T]) Apply(items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return s.Price(items[i]) < s.Price(items[j])
	})
}

// TopRated orders by descending rating. Stable, so provider order breaks
// ties.
type TopRated[T any] struct {
	Rating func(T) float64
}

func (s TopRated[T]) Apply(items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return s.Rating(items[i]) > s.Rating(items[j])
	})
}

// Select maps a sort key to a strategy. An unknown key, or a key whose
// accessor the item kind does not have, selects nothing.
func Select[T any](key string, price, rating func(T) float64) (Strategy[T], bool) {
	switch key {
	case "price":
		if price == nil {
			return nil, false
		}

		return CheapestFirst[T]{Price: price}, true
	case "rating":
		if rating == nil {
			return nil, false
		}

		return TopRated[T]{Rating: rating}, true
	default:
		return nil, false
	}
}
