package planner

import (
	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

// RecommendPlansInput defines the request for ranking farm plans
type RecommendPlansInput struct {
	// PlayerID selects the stored ownership state; empty means none
	PlayerID string
	ItemName string

	// TopN of 0 uses the configured default; negative returns no plans
	TopN int

	ExcludeUnowned bool
	ExcludeDone    bool
}

// RecommendPlansOutput defines the response for ranking farm plans
type RecommendPlansOutput struct {
	// SearchID is empty when the search was not cached
	SearchID string
	ItemName string
	Plans    []entities.FarmPlan

	// Suggestions holds near catalog names when ItemName is not in the catalog
	Suggestions []string
}

// FindItemsInput defines the request for an exact attribute lookup
type FindItemsInput struct {
	PlayerID string
	Base     entities.AttributeCode
	Bonus    entities.AttributeCode
	Skill    entities.AttributeCode

	ExcludeUnowned bool
	ExcludeDone    bool
}

// FindItemsOutput defines the response for an exact attribute lookup
type FindItemsOutput struct {
	Items []entities.Item
}

// GetLastSearchInput defines the request for a player's cached search
type GetLastSearchInput struct {
	PlayerID string
}

// GetLastSearchOutput defines the response for a player's cached search
type GetLastSearchOutput struct {
	Search *searchcache.Search
}

// ListItemsInput defines the request for browsing the catalog
type ListItemsInput struct {
	// Category restricts the listing; empty lists every category
	Category string
}

// CategoryItems is one category and its items sorted by name
type CategoryItems struct {
	Category string
	Items    []entities.Item
}

// ListItemsOutput defines the response for browsing the catalog
type ListItemsOutput struct {
	Categories []CategoryItems
}

// GetOwnershipInput defines the request for a player's ownership state
type GetOwnershipInput struct {
	PlayerID string
}

// GetOwnershipOutput defines the response for a player's ownership state
type GetOwnershipOutput struct {
	State *entities.OwnershipState
}

// UpdateOwnershipInput sets the flags of one item. Done implies owned.
type UpdateOwnershipInput struct {
	PlayerID string
	ItemName string
	Owned    bool
	Done     bool
}

// UpdateOwnershipOutput returns the state after the update
type UpdateOwnershipOutput struct {
	State *entities.OwnershipState
}

// ResetOwnershipInput defines the request for clearing a player's state
type ResetOwnershipInput struct {
	PlayerID string
}

// ResetOwnershipOutput defines the response for clearing a player's state
type ResetOwnershipOutput struct{}

// ExportOwnershipInput defines the request for a JSON export
type ExportOwnershipInput struct {
	PlayerID string
}

// ExportOwnershipOutput holds {"owned": {...}, "done": {...}} over every catalog item
type ExportOwnershipOutput struct {
	JSON []byte
}

// ImportOwnershipInput replaces a player's state from an export document
type ImportOwnershipInput struct {
	PlayerID string
	JSON     []byte
}

// ImportOwnershipOutput returns the imported state
type ImportOwnershipOutput struct {
	State *entities.OwnershipState

	// Ignored lists names in the document that are not in the catalog
	Ignored []string
}

// SimulatePlanInput picks one plan of a fresh recommendation and rolls it
type SimulatePlanInput struct {
	PlayerID string
	ItemName string

	// PlanIndex is zero based into the ranked plans
	PlanIndex int
	Runs      int

	ExcludeUnowned bool
	ExcludeDone    bool
}

// SimulatePlanOutput defines the response for a simulation
type SimulatePlanOutput struct {
	Plan   entities.FarmPlan
	Result *essence.SimulationResult
}
