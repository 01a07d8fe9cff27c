package game

// ResourceItem is one draggable resource in the allocation game. Items
// live only for the duration of a session.
type ResourceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Category string `json:"category"`
}

// maxDrawnResources caps how many items a session is dealt.
const maxDrawnResources = 6

var baseResources = []ResourceItem{
	{ID: "budget", Name: "Budget Allocation", Value: 25, Category: "finance"},
	{ID: "workforce", Name: "Skilled Workforce", Value: 20, Category: "people"},
	{ID: "tech", Name: "Technology", Value: 15, Category: "equipment"},
	{ID: "materials", Name: "Raw Materials", Value: 15, Category: "supplies"},
	{ID: "time", Name: "Time Investment", Value: 10, Category: "planning"},
	{ID: "community", Name: "Community Support", Value: 15, Category: "people"},
}

var sectorResources = map[string][]ResourceItem{
	"Agriculture": {
		{ID: "seeds", Name: "Quality Seeds", Value: 20, Category: "supplies"},
		{ID: "water", Name: "Water Resources", Value: 25, Category: "supplies"},
	},
	"Education": {
		{ID: "teachers", Name: "Qualified Teachers", Value: 25, Category: "people"},
		{ID: "books", Name: "Learning Materials", Value: 15, Category: "supplies"},
	},
	"Health": {
		{ID: "doctors", Name: "Medical Staff", Value: 25, Category: "people"},
		{ID: "medicines", Name: "Medical Supplies", Value: 20, Category: "supplies"},
	},
	"Rural Roads": {
		{ID: "machinery", Name: "Construction Equipment", Value: 20, Category: "equipment"},
		{ID: "cement", Name: "Building Materials", Value: 25, Category: "supplies"},
	},
}

var defaultSectorResources = []ResourceItem{
	{ID: "innovation", Name: "Innovation Ideas", Value: 20, Category: "planning"},
	{ID: "policy", Name: "Policy Support", Value: 15, Category: "planning"},
}

// DrawResources deals the item pool for one allocation session: the base
// pool plus the sector's extras, shuffled, truncated to six.
func DrawResources(sector string, rng Rand) []ResourceItem {
	extra, ok := sectorResources[sector]
	if !ok {
		extra = defaultSectorResources
	}

	pool := make([]ResourceItem, 0, len(baseResources)+len(extra))
	pool = append(pool, baseResources...)
	pool = append(pool, extra...)

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > maxDrawnResources {
		pool = pool[:maxDrawnResources]
	}
	return pool
}

// criticalTiers maps each sector's critical resource ids to the bonus
// awarded per rank position (index 0 = top priority).
var criticalTiers = map[string]map[string][]int{
	"Agriculture": {
		"water": {20, 15, 10},
		"seeds": {15, 15},
	},
	"Education": {
		"teachers": {20, 15},
	},
	"Health": {
		"doctors": {20, 15},
	},
}

func rankOf(items []ResourceItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// AllocationScore scores a finished priority order for a sector.
// Base is 10 per prioritized item capped at 50, plus sector-specific
// critical-resource tiers, a community-priority bonus, and an anti-greed
// bonus for not putting budget first. The result is clamped to [0, 100].
func AllocationScore(sector string, prioritized []ResourceItem) int {
	if len(prioritized) == 0 {
		return 0
	}

	score := len(prioritized) * 10
	if score > 50 {
		score = 50
	}

	for id, tiers := range criticalTiers[sector] {
		if rank := rankOf(prioritized, id); rank >= 0 && rank < len(tiers) {
			score += tiers[rank]
		}
	}

	if rank := rankOf(prioritized, "community"); rank >= 0 && rank < 3 {
		score += 10
	}
	if rank := rankOf(prioritized, "budget"); rank > 0 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
