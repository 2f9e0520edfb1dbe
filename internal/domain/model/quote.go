package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// LabelCount is a pack label with the number of packs purchased.
type LabelCount struct {
	Label string
	Count int
}

// LabelCounts is an ordered label-to-count mapping. It marshals to a JSON
// object with keys in ascending numeric label order, matching the order the
// price list presents packs in.
type LabelCounts []LabelCount

// Get returns the count for a label, or zero when absent.
func (lc LabelCounts) Get(label string) int {
	for _, e := range lc {
		if e.Label == label {
			return e.Count
		}
	}
	return 0
}

// sorted returns a copy ordered by ascending numeric label. Non-numeric
// labels sort after numeric ones, lexicographically.
func (lc LabelCounts) sorted() LabelCounts {
	out := make(LabelCounts, len(lc))
	copy(out, lc)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := strconv.Atoi(out[i].Label)
		b, errB := strconv.Atoi(out[j].Label)
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return out[i].Label < out[j].Label
		}
	})
	return out
}

// MarshalJSON renders the counts as a JSON object in numeric label order.
func (lc LabelCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range lc.sorted() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object of label-to-count pairs.
func (lc *LabelCounts) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(LabelCounts, 0, len(m))
	for label, count := range m {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	*lc = out.sorted()
	return nil
}

// SingleCounts holds the items paid à la carte, per pack-eligible family.
type SingleCounts struct {
	MiscGarments int `json:"peca_variada"`
	Shirts       int `json:"camisa"`
	Sheets       int `json:"lencol"`
}

// CostBreakdown attributes spend to each part of the quote. All figures are
// EUR rounded to 2 decimal places.
type CostBreakdown struct {
	Specials   float64 `json:"pecas_especiais"`
	MixedPacks float64 `json:"packs_mistos"`
	ShirtPacks float64 `json:"packs_camisas"`
	SheetPacks float64 `json:"packs_lencois"`
	Singles    float64 `json:"avulso"`
	Delivery   float64 `json:"entrega"`
}

// Quote is the result of a cost optimization: the minimum total cost for the
// order plus the allocation that achieves it. Pack and sub-allocation maps
// only carry non-zero entries.
//
// @Description Minimum-cost laundering quote with the allocation breakdown
type Quote struct {
	// TotalCost is the minimum achievable cost in EUR, delivery included
	TotalCost float64 `json:"total_cost" example:"9.0"`
	// MixedPacks counts purchased mixed packs per pack label
	MixedPacks LabelCounts `json:"packs_mistos" swaggertype:"object,integer"`
	// ShirtPacks counts purchased shirt-only packs per pack label
	ShirtPacks LabelCounts `json:"packs_camisas" swaggertype:"object,integer"`
	// SheetPacks counts purchased sheet-only packs per pack label
	SheetPacks LabelCounts `json:"packs_lencois" swaggertype:"object,integer"`
	// Singles counts items paid à la carte
	Singles SingleCounts `json:"avulso"`
	// ShirtsInMixed counts shirts absorbed into each mixed pack type
	ShirtsInMixed LabelCounts `json:"camisas_nos_mistos" swaggertype:"object,integer"`
	// Costs attributes spend to specials, pack families, singles and delivery
	Costs CostBreakdown `json:"custos"`
	// RawVariables exposes the solver's decision variables for diagnostics.
	RawVariables map[string]int `json:"-"`
}
