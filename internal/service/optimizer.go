package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/laundry-service/internal/domain/model"
	"github.com/guttosm/laundry-service/internal/service/cache"
)

// maxSolverStates bounds the size of the mixed-pack search space. The state
// space grows with the ordered quantities, not the catalog, so the bound acts
// as the per-call solve budget: exceeding it fails the request instead of
// returning a non-optimal result.
const maxSolverStates = 8 << 20

// SolverError reports that the optimizer could not certify a minimum-cost
// allocation. À-la-carte variables are unbounded, so every valid order is
// feasible; a solver error signals a configuration defect or an exhausted
// solve budget, never a legitimately unsatisfiable order.
type SolverError struct {
	Reason string
}

func (e *SolverError) Error() string {
	return "solver: " + e.Reason
}

// QuoteOptimizer defines the interface for cost optimization operations.
type QuoteOptimizer interface {
	// Optimize computes the minimum-cost quote for the raw item counts and
	// delivery location using the service's own catalog.
	Optimize(items map[string]int, deliveryLocation string) (model.Quote, error)
	// OptimizeWithCatalog computes a quote against a caller-provided catalog.
	OptimizeWithCatalog(items map[string]int, deliveryLocation string, catalog model.Catalog) (model.Quote, error)
	// InvalidateCache clears the quote cache (useful when the catalog changes).
	InvalidateCache()
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// OptimizerService implements QuoteOptimizer with an exact integer search.
//
// The shirt sub-limit inside mixed packs couples two resource dimensions of
// the same purchasable unit, so per-unit price comparison is not sufficient.
// The search enumerates mixed-pack purchase plans as states in a
// (capacity, shirt allowance) table, both dimensions clamped at the largest
// useful value, and completes each state with two one-dimensional coverage
// subproblems (shirt packs, sheet packs) that are solved exactly by dynamic
// programming. The cheapest completion over all states is a certified global
// minimum.
type OptimizerService struct {
	catalog model.Catalog
	prices  catalogCents
	cache   cache.Cache
}

// NewOptimizerService creates an OptimizerService for the given catalog.
func NewOptimizerService(catalog model.Catalog, opts ...Option) (*OptimizerService, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	s := &OptimizerService{
		catalog: catalog,
		prices:  toCents(catalog),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WithQuoteCache enables result caching with the specified capacity and TTL.
func WithQuoteCache(capacity int, ttl time.Duration) Option {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = newQuoteCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// Optimize computes the minimum-cost quote using the service catalog.
func (s *OptimizerService) Optimize(items map[string]int, deliveryLocation string) (model.Quote, error) {
	order, err := model.NormalizeOrder(items, s.catalog)
	if err != nil {
		return model.Quote{}, err
	}

	key := quoteCacheKey(order, deliveryLocation)
	if s.cache != nil {
		if quote, ok := s.cache.Get(key); ok {
			return quote, nil
		}
	}

	quote, err := s.optimize(order, deliveryLocation, s.catalog, s.prices)
	if err != nil {
		return model.Quote{}, err
	}

	if s.cache != nil {
		s.cache.Set(key, quote)
	}
	return quote, nil
}

// OptimizeWithCatalog computes a quote against a caller-provided catalog.
// Results are not cached; the caller owns the catalog's lifecycle.
func (s *OptimizerService) OptimizeWithCatalog(items map[string]int, deliveryLocation string, catalog model.Catalog) (model.Quote, error) {
	if err := catalog.Validate(); err != nil {
		return model.Quote{}, err
	}
	order, err := model.NormalizeOrder(items, catalog)
	if err != nil {
		return model.Quote{}, err
	}
	return s.optimize(order, deliveryLocation, catalog, toCents(catalog))
}

// InvalidateCache clears the quote cache.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// optimize runs the exact search and assembles the quote.
func (s *OptimizerService) optimize(order model.Order, deliveryLocation string, catalog model.Catalog, prices catalogCents) (model.Quote, error) {
	fee := catalog.ResolveDeliveryFee(deliveryLocation)
	feeCents := decimalToCents(fee)

	log.Info().
		Interface("order", order).
		Str("delivery_location", deliveryLocation).
		Str("delivery_fee", fee.StringFixed(2)).
		Msg("Optimizing order")

	specialsCents := int64(0)
	for _, key := range model.SpecialItems {
		if unit, ok := prices.specials[key]; ok {
			specialsCents += unit * int64(order[key])
		}
	}

	sol, err := solve(order, prices)
	if err != nil {
		return model.Quote{}, err
	}

	return assembleQuote(order, sol, prices, specialsCents, feeCents), nil
}

// catalogCents is the catalog with all prices converted to integer cents.
// The search compares costs in cents, so currency arithmetic is exact.
type catalogCents struct {
	mixed     []mixedPackCents
	shirt     []coverPack
	sheet     []coverPack
	unitMisc  int64
	unitShirt int64
	unitSheet int64
	specials  map[string]int64
}

type mixedPackCents struct {
	label      string
	capacity   int
	shirtLimit int
	price      int64
}

func toCents(c model.Catalog) catalogCents {
	p := catalogCents{
		unitMisc:  decimalToCents(c.UnitPrices[model.ItemMiscGarment]),
		unitShirt: decimalToCents(c.UnitPrices[model.ItemShirt]),
		unitSheet: decimalToCents(c.UnitPrices[model.ItemSheet]),
		specials:  make(map[string]int64, len(model.SpecialItems)),
	}
	for _, m := range c.MixedPacks {
		p.mixed = append(p.mixed, mixedPackCents{
			label:      m.Label,
			capacity:   m.Capacity,
			shirtLimit: m.ShirtLimit,
			price:      decimalToCents(m.Price),
		})
	}
	for _, sp := range c.ShirtPacks {
		p.shirt = append(p.shirt, coverPack{label: sp.Label, capacity: sp.Capacity, price: decimalToCents(sp.Price)})
	}
	for _, sp := range c.SheetPacks {
		p.sheet = append(p.sheet, coverPack{label: sp.Label, capacity: sp.Capacity, price: decimalToCents(sp.Price)})
	}
	for _, key := range model.SpecialItems {
		if d, ok := c.UnitPrices[key]; ok {
			p.specials[key] = decimalToCents(d)
		}
	}
	return p
}

func decimalToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func centsToEuros(c int64) float64 {
	return float64(c) / 100
}

// solution is the optimizer's allocation in solver terms: purchase counts per
// catalog pack, à-la-carte counts, and shirts absorbed per mixed pack type.
type solution struct {
	mixedCounts   []int
	shirtCounts   []int
	sheetCounts   []int
	shirtsInMixed []int
	singleMisc    int
	singleShirt   int
	singleSheet   int
	objective     int64 // cents; packs plus à-la-carte over the three families
}

const infCost = int64(1) << 62

// solve finds a cost-minimal covering of the three pack-eligible families.
//
// Sheets never interact with the other families, so their coverage is an
// independent one-dimensional subproblem. Misc garments and shirts couple
// through mixed packs: a purchase plan for mixed packs provides total
// capacity and a shirt allowance, and for a chosen number s of absorbed
// shirts the remainder is covered by à-la-carte misc garments and the shirt
// coverage subproblem at demand shirts-s. Capacity beyond misc+allowance and
// allowance beyond the shirt demand are never useful, so both dimensions are
// clamped, keeping the table finite without losing any optimal plan.
func solve(order model.Order, prices catalogCents) (solution, error) {
	qtyMisc := order[model.ItemMiscGarment]
	qtyShirts := order[model.ItemShirt]
	qtySheets := order[model.ItemSheet]

	aMax := qtyShirts
	capMax := qtyMisc + aMax
	states := (capMax + 1) * (aMax + 1)
	if states > maxSolverStates || qtySheets > maxSolverStates {
		return solution{}, &SolverError{
			Reason: fmt.Sprintf("order exceeds solve budget (%d states)", states),
		}
	}

	sheetTable := buildCoverTable(qtySheets, prices.sheet, prices.unitSheet)
	shirtTable := buildCoverTable(qtyShirts, prices.shirt, prices.unitShirt)

	idx := func(c, a int) int { return c*(aMax+1) + a }

	cost := make([]int64, states)
	prevState := make([]int32, states)
	prevPack := make([]int16, states)
	for i := range cost {
		cost[i] = infCost
		prevState[i] = -1
	}
	cost[0] = 0

	// Forward relaxation. Buying a pack moves strictly up in capacity
	// (or, once capacity is clamped, strictly up in allowance), so states
	// visited in (capacity, allowance) order are final when read.
	for c := 0; c <= capMax; c++ {
		for a := 0; a <= aMax; a++ {
			from := idx(c, a)
			cur := cost[from]
			if cur == infCost {
				continue
			}
			for i, p := range prices.mixed {
				c2 := c + p.capacity
				if c2 > capMax {
					c2 = capMax
				}
				a2 := a + p.shirtLimit
				if a2 > aMax {
					a2 = aMax
				}
				if c2 == c && a2 == a {
					continue
				}
				to := idx(c2, a2)
				if next := cur + p.price; next < cost[to] {
					cost[to] = next
					prevState[to] = int32(from)
					prevPack[to] = int16(i)
				}
			}
		}
	}

	// Complete every reachable purchase plan with the best shirt absorption
	// and the exact coverage costs of the remaining demand.
	best := infCost
	bestC, bestA, bestS := 0, 0, 0
	for c := 0; c <= capMax; c++ {
		for a := 0; a <= aMax; a++ {
			cur := cost[idx(c, a)]
			if cur == infCost {
				continue
			}
			for s := 0; s <= a; s++ {
				shortfall := qtyMisc - (c - s)
				if shortfall < 0 {
					shortfall = 0
				}
				total := cur + shirtTable.cost[qtyShirts-s] + prices.unitMisc*int64(shortfall)
				if total < best {
					best = total
					bestC, bestA, bestS = c, a, s
				}
			}
		}
	}
	if best == infCost {
		return solution{}, &SolverError{Reason: "no feasible allocation found"}
	}

	sol := solution{
		mixedCounts: make([]int, len(prices.mixed)),
		objective:   best + sheetTable.cost[qtySheets],
	}

	// Backtrack the mixed-pack purchase plan.
	for at := int32(idx(bestC, bestA)); prevState[at] >= 0; at = prevState[at] {
		sol.mixedCounts[prevPack[at]]++
	}

	// Distribute the absorbed shirts over the purchased mixed packs. Any
	// split within the per-type limits is optimal; fill in catalog order.
	sol.shirtsInMixed = make([]int, len(prices.mixed))
	remaining := bestS
	for i, p := range prices.mixed {
		room := p.shirtLimit * sol.mixedCounts[i]
		if room > remaining {
			room = remaining
		}
		sol.shirtsInMixed[i] = room
		remaining -= room
	}

	shortfall := qtyMisc - (bestC - bestS)
	if shortfall > 0 {
		sol.singleMisc = shortfall
	}
	sol.shirtCounts, sol.singleShirt = shirtTable.reconstruct(qtyShirts-bestS, prices.shirt)
	sol.sheetCounts, sol.singleSheet = sheetTable.reconstruct(qtySheets, prices.sheet)

	return sol, nil
}

// assembleQuote turns a solver solution into the wire-level breakdown.
func assembleQuote(order model.Order, sol solution, prices catalogCents, specialsCents, feeCents int64) model.Quote {
	var mixedCost, shirtCost, sheetCost int64

	mixedPacks := make(model.LabelCounts, 0, len(prices.mixed))
	shirtsInMixed := make(model.LabelCounts, 0, len(prices.mixed))
	for i, p := range prices.mixed {
		mixedCost += p.price * int64(sol.mixedCounts[i])
		if sol.mixedCounts[i] > 0 {
			mixedPacks = append(mixedPacks, model.LabelCount{Label: p.label, Count: sol.mixedCounts[i]})
		}
		if sol.shirtsInMixed[i] > 0 {
			shirtsInMixed = append(shirtsInMixed, model.LabelCount{Label: p.label, Count: sol.shirtsInMixed[i]})
		}
	}
	shirtPacks := make(model.LabelCounts, 0, len(prices.shirt))
	for i, p := range prices.shirt {
		shirtCost += p.price * int64(sol.shirtCounts[i])
		if sol.shirtCounts[i] > 0 {
			shirtPacks = append(shirtPacks, model.LabelCount{Label: p.label, Count: sol.shirtCounts[i]})
		}
	}
	sheetPacks := make(model.LabelCounts, 0, len(prices.sheet))
	for i, p := range prices.sheet {
		sheetCost += p.price * int64(sol.sheetCounts[i])
		if sol.sheetCounts[i] > 0 {
			sheetPacks = append(sheetPacks, model.LabelCount{Label: p.label, Count: sol.sheetCounts[i]})
		}
	}

	singlesCost := prices.unitMisc*int64(sol.singleMisc) +
		prices.unitShirt*int64(sol.singleShirt) +
		prices.unitSheet*int64(sol.singleSheet)

	raw := make(map[string]int, 2*len(prices.mixed)+len(prices.shirt)+len(prices.sheet)+3)
	for i, p := range prices.mixed {
		raw["x_misto_"+p.label] = sol.mixedCounts[i]
		raw["s_cam_"+p.label] = sol.shirtsInMixed[i]
	}
	for i, p := range prices.shirt {
		raw["y_cam_"+p.label] = sol.shirtCounts[i]
	}
	for i, p := range prices.sheet {
		raw["z_len_"+p.label] = sol.sheetCounts[i]
	}
	raw["a_variada"] = sol.singleMisc
	raw["a_camisa"] = sol.singleShirt
	raw["a_lencol"] = sol.singleSheet

	return model.Quote{
		TotalCost:     centsToEuros(specialsCents + sol.objective + feeCents),
		MixedPacks:    mixedPacks,
		ShirtPacks:    shirtPacks,
		SheetPacks:    sheetPacks,
		ShirtsInMixed: shirtsInMixed,
		Singles: model.SingleCounts{
			MiscGarments: sol.singleMisc,
			Shirts:       sol.singleShirt,
			Sheets:       sol.singleSheet,
		},
		Costs: model.CostBreakdown{
			Specials:   centsToEuros(specialsCents),
			MixedPacks: centsToEuros(mixedCost),
			ShirtPacks: centsToEuros(shirtCost),
			SheetPacks: centsToEuros(sheetCost),
			Singles:    centsToEuros(singlesCost),
			Delivery:   centsToEuros(feeCents),
		},
		RawVariables: raw,
	}
}

// quoteCacheKey builds a canonical cache key from the normalized order and
// delivery location.
func quoteCacheKey(order model.Order, deliveryLocation string) string {
	keys := make([]string, 0, len(order))
	for k, v := range order {
		if v > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%d;", k, order[k])
	}
	b.WriteByte('|')
	b.WriteString(strings.ToLower(strings.TrimSpace(deliveryLocation)))
	return b.String()
}
