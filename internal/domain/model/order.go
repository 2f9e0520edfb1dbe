package model

import (
	"fmt"
	"sort"
	"strings"
)

// Order maps recognized item type keys to non-negative quantities.
// Missing keys mean zero.
type Order map[string]int

// UnknownItemsError reports item keys in a request that are not part of the
// recognized item type set. The caller can recover by correcting the request.
type UnknownItemsError struct {
	Keys []string
}

func (e *UnknownItemsError) Error() string {
	return fmt.Sprintf("unknown item types: [%s]", strings.Join(e.Keys, ", "))
}

// InvalidQuantityError reports item keys carrying negative quantities.
type InvalidQuantityError struct {
	Keys []string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("negative quantity for item types: [%s]", strings.Join(e.Keys, ", "))
}

// NormalizeOrder validates raw item counts against the catalog's recognized
// item keys and returns a complete Order with every recognized key present.
func NormalizeOrder(items map[string]int, catalog Catalog) (Order, error) {
	var unknown, negative []string
	for k, v := range items {
		if _, ok := catalog.UnitPrices[k]; !ok {
			unknown = append(unknown, k)
			continue
		}
		if v < 0 {
			negative = append(negative, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownItemsError{Keys: unknown}
	}
	if len(negative) > 0 {
		sort.Strings(negative)
		return nil, &InvalidQuantityError{Keys: negative}
	}

	order := make(Order, len(catalog.UnitPrices))
	for k := range catalog.UnitPrices {
		order[k] = items[k]
	}
	return order, nil
}

// Total returns the total number of items in the order.
func (o Order) Total() int {
	var sum int
	for _, v := range o {
		sum += v
	}
	return sum
}
