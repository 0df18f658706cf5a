// Package planner implements the orchestrator behind farm-plan searches,
// reverse lookups and per-player ownership tracking
package planner

//go:generate mockgen -destination=mock/mock_service.go -package=plannermock github.com/KirkDiggler/essence-api/internal/orchestrators/planner Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/pkg/idgen"
	"github.com/KirkDiggler/essence-api/internal/repositories/ownership"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

// MaxSimulationRuns bounds a single SimulatePlan call
const MaxSimulationRuns = 10000

// Service defines the planner operations
type Service interface {
	// Searches
	RecommendPlans(ctx context.Context, input *RecommendPlansInput) (*RecommendPlansOutput, error)
	FindItems(ctx context.Context, input *FindItemsInput) (*FindItemsOutput, error)
	GetLastSearch(ctx context.Context, input *GetLastSearchInput) (*GetLastSearchOutput, error)
	SimulatePlan(ctx context.Context, input *SimulatePlanInput) (*SimulatePlanOutput, error)

	// Catalog
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// Ownership
	GetOwnership(ctx context.Context, input *GetOwnershipInput) (*GetOwnershipOutput, error)
	UpdateOwnership(ctx context.Context, input *UpdateOwnershipInput) (*UpdateOwnershipOutput, error)
	ResetOwnership(ctx context.Context, input *ResetOwnershipInput) (*ResetOwnershipOutput, error)
	ExportOwnership(ctx context.Context, input *ExportOwnershipInput) (*ExportOwnershipOutput, error)
	ImportOwnership(ctx context.Context, input *ImportOwnershipInput) (*ImportOwnershipOutput, error)
}

// Config holds the dependencies for the planner orchestrator
type Config struct {
	Catalog       *catalog.Catalog
	OwnershipRepo ownership.Repository
	SearchCache   searchcache.Repository
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
	Roller        essence.Roller

	// TopN is the plan count used when a request leaves it at 0
	TopN int

	// MaxBaseCandidates caps the base subsets tried per dungeon
	MaxBaseCandidates int

	// SearchTTL is how long a search stays cached
	SearchTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.OwnershipRepo == nil {
		vb.RequiredField("OwnershipRepo")
	}
	if c.SearchCache == nil {
		vb.RequiredField("SearchCache")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.TopN < 0 {
		vb.Field("TopN", "must not be negative")
	}
	if c.MaxBaseCandidates < 0 {
		vb.Field("MaxBaseCandidates", "must not be negative")
	}
	if c.SearchTTL < 0 {
		vb.Field("SearchTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog       *catalog.Catalog
	ownershipRepo ownership.Repository
	searchCache   searchcache.Repository
	idGen         idgen.Generator
	eventBus      events.EventBus
	roller        essence.Roller
	generations   *searchGenerations

	topN      int
	maxBase   int
	searchTTL time.Duration
}

// NewOrchestrator creates a new planner orchestrator and subscribes it to
// ownership updates on the event bus
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		catalog:       cfg.Catalog,
		ownershipRepo: cfg.OwnershipRepo,
		searchCache:   cfg.SearchCache,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
		roller:        cfg.Roller,
		generations:   newSearchGenerations(),
		topN:          cfg.TopN,
		maxBase:       cfg.MaxBaseCandidates,
		searchTTL:     cfg.SearchTTL,
	}
	if o.topN == 0 {
		o.topN = essence.DefaultTopN
	}
	if o.maxBase == 0 {
		o.maxBase = essence.DefaultMaxBaseCandidates
	}
	if o.searchTTL == 0 {
		o.searchTTL = searchcache.DefaultTTL
	}

	o.eventBus.SubscribeFunc(EventOwnershipUpdated, 0, o.invalidateSearch)

	return o, nil
}

// RecommendPlans ranks the farm plans for one target against the player's pool
func (o *orchestrator) RecommendPlans(ctx context.Context, input *RecommendPlansInput) (*RecommendPlansOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	itemName := strings.TrimSpace(input.ItemName)
	if itemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}

	filter := entities.PoolFilter{ExcludeUnowned: input.ExcludeUnowned, ExcludeDone: input.ExcludeDone}
	generation := o.generations.current(input.PlayerID)
	pool, err := o.snapshotPool(ctx, input.PlayerID, filter)
	if err != nil {
		return nil, err
	}

	topN := input.TopN
	if topN == 0 {
		topN = o.topN
	}

	plans := essence.RecommendPlans(itemName, pool, o.catalog.Dungeons(), essence.Options{
		TopN:              topN,
		MaxBaseCandidates: o.maxBase,
	})

	output := &RecommendPlansOutput{
		ItemName: itemName,
		Plans:    plans,
	}
	if _, known := o.catalog.Item(itemName); !known {
		output.Suggestions = suggestNames(itemName, o.catalog.Names())
	}

	if input.PlayerID != "" {
		searchID := o.idGen.Generate()
		cached, err := o.generations.writeIfCurrent(input.PlayerID, generation, func() error {
			_, err := o.searchCache.Put(ctx, searchcache.PutInput{
				Search: &searchcache.Search{
					SearchID: searchID,
					PlayerID: input.PlayerID,
					ItemName: itemName,
					Filter:   filter,
					TopN:     topN,
					Plans:    plans,
				},
				TTL: o.searchTTL,
			})
			return err
		})
		switch {
		case err != nil:
			slog.Warn("Failed to cache search",
				"player_id", input.PlayerID,
				"item", itemName,
				"error", err)
		case !cached:
			slog.Info("Skipped caching search computed before an ownership change",
				"player_id", input.PlayerID,
				"item", itemName)
		default:
			output.SearchID = searchID
		}
	}

	slog.Info("Plans recommended",
		"player_id", input.PlayerID,
		"item", itemName,
		"pool_size", len(pool),
		"plans", len(plans))

	return output, nil
}

// FindItems returns the pool items carrying exactly the given attributes
func (o *orchestrator) FindItems(ctx context.Context, input *FindItemsInput) (*FindItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	pool, err := o.snapshotPool(ctx, input.PlayerID, entities.PoolFilter{
		ExcludeUnowned: input.ExcludeUnowned,
		ExcludeDone:    input.ExcludeDone,
	})
	if err != nil {
		return nil, err
	}

	return &FindItemsOutput{
		Items: essence.FindByExactAttributes(input.Base, input.Bonus, input.Skill, pool),
	}, nil
}

// GetLastSearch returns the player's cached search
func (o *orchestrator) GetLastSearch(ctx context.Context, input *GetLastSearchInput) (*GetLastSearchOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.searchCache.Get(ctx, searchcache.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get last search")
	}
	return &GetLastSearchOutput{Search: out.Search}, nil
}

// SimulatePlan recomputes the target's plans and rolls the chosen one
func (o *orchestrator) SimulatePlan(ctx context.Context, input *SimulatePlanInput) (*SimulatePlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("item_name", input.ItemName, vb)
	if input.PlanIndex < 0 {
		vb.Field("plan_index", "must not be negative")
	}
	if input.Runs <= 0 || input.Runs > MaxSimulationRuns {
		vb.Fieldf("runs", "must be between 1 and %d", MaxSimulationRuns)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	itemName := strings.TrimSpace(input.ItemName)
	pool, err := o.snapshotPool(ctx, input.PlayerID, entities.PoolFilter{
		ExcludeUnowned: input.ExcludeUnowned,
		ExcludeDone:    input.ExcludeDone,
	})
	if err != nil {
		return nil, err
	}

	plans := essence.RecommendPlans(itemName, pool, o.catalog.Dungeons(), essence.Options{
		TopN:              input.PlanIndex + 1,
		MaxBaseCandidates: o.maxBase,
	})
	if len(plans) == 0 {
		return nil, errors.NotFoundf("no plans for %s", itemName)
	}
	if input.PlanIndex >= len(plans) {
		return nil, errors.InvalidArgumentf("plan index %d out of range, %d plans", input.PlanIndex, len(plans))
	}

	plan := plans[input.PlanIndex]
	dungeon, ok := o.catalog.Dungeon(plan.Dungeon)
	if !ok {
		return nil, errors.Internalf("plan dungeon %s missing from catalog", plan.Dungeon)
	}

	result, err := essence.SimulateRuns(&plan, dungeon, input.Runs, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate plan")
	}

	slog.Info("Plan simulated",
		"item", itemName,
		"dungeon", plan.Dungeon,
		"runs", input.Runs)

	return &SimulatePlanOutput{Plan: plan, Result: result}, nil
}

// ListItems groups catalog items by category
func (o *orchestrator) ListItems(_ context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		input = &ListItemsInput{}
	}

	categories := o.catalog.Categories()
	if input.Category != "" {
		found := false
		for _, c := range categories {
			if c == input.Category {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.NotFoundf("category %s not found", input.Category).
				WithMeta("categories", strings.Join(categories, ","))
		}
		categories = []string{input.Category}
	}

	output := &ListItemsOutput{Categories: make([]CategoryItems, 0, len(categories))}
	for _, c := range categories {
		output.Categories = append(output.Categories, CategoryItems{
			Category: c,
			Items:    o.catalog.ItemsInCategory(c),
		})
	}
	return output, nil
}

// GetOwnership returns the player's stored flags
func (o *orchestrator) GetOwnership(ctx context.Context, input *GetOwnershipInput) (*GetOwnershipOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.ownershipRepo.Get(ctx, ownership.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ownership")
	}
	return &GetOwnershipOutput{State: out.State}, nil
}

// UpdateOwnership sets the flags of one catalog item
func (o *orchestrator) UpdateOwnership(ctx context.Context, input *UpdateOwnershipInput) (*UpdateOwnershipOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}
	if _, ok := o.catalog.Item(input.ItemName); !ok {
		return nil, errors.NotFoundf("item %s not found", input.ItemName).
			WithMeta("suggestions", strings.Join(suggestNames(input.ItemName, o.catalog.Names()), ","))
	}

	current, err := o.ownershipRepo.Get(ctx, ownership.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ownership")
	}

	state := current.State.Clone()
	state.PlayerID = input.PlayerID
	state.Set(input.ItemName, input.Owned, input.Done)

	if _, err := o.ownershipRepo.Save(ctx, ownership.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to save ownership")
	}

	o.publishOwnershipUpdated(ctx, input.PlayerID, input.ItemName)

	slog.Info("Ownership updated",
		"player_id", input.PlayerID,
		"item", input.ItemName,
		"owned", state.IsOwned(input.ItemName),
		"done", state.IsDone(input.ItemName))

	return &UpdateOwnershipOutput{State: state}, nil
}

// ResetOwnership clears every flag for the player
func (o *orchestrator) ResetOwnership(ctx context.Context, input *ResetOwnershipInput) (*ResetOwnershipOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	if _, err := o.ownershipRepo.Delete(ctx, ownership.DeleteInput{PlayerID: input.PlayerID}); err != nil {
		return nil, errors.Wrap(err, "failed to reset ownership")
	}

	o.publishOwnershipUpdated(ctx, input.PlayerID, wholeState)

	slog.Info("Ownership reset", "player_id", input.PlayerID)
	return &ResetOwnershipOutput{}, nil
}

// ownershipDocument is the export/import shape
type ownershipDocument struct {
	Owned map[string]bool `json:"owned"`
	Done  map[string]bool `json:"done"`
}

// ExportOwnership renders every catalog item's flags as JSON
func (o *orchestrator) ExportOwnership(ctx context.Context, input *ExportOwnershipInput) (*ExportOwnershipOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.ownershipRepo.Get(ctx, ownership.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ownership")
	}

	names := o.catalog.Names()
	doc := ownershipDocument{
		Owned: make(map[string]bool, len(names)),
		Done:  make(map[string]bool, len(names)),
	}
	for _, name := range names {
		doc.Owned[name] = out.State.IsOwned(name)
		doc.Done[name] = out.State.IsDone(name)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal ownership")
	}
	return &ExportOwnershipOutput{JSON: data}, nil
}

// ImportOwnership replaces the player's state with an export document.
// Missing entries read as false and unknown names are skipped.
func (o *orchestrator) ImportOwnership(ctx context.Context, input *ImportOwnershipInput) (*ImportOwnershipOutput, error) {
	if input == nil || strings.TrimSpace(input.PlayerID) == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	var doc ownershipDocument
	if err := json.Unmarshal(input.JSON, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid ownership document")
	}

	state := entities.NewOwnershipState(input.PlayerID)
	ignored := make(map[string]bool)
	for _, name := range o.catalog.Names() {
		state.Set(name, doc.Owned[name], doc.Done[name])
	}
	for _, flags := range []map[string]bool{doc.Owned, doc.Done} {
		for name := range flags {
			if _, ok := o.catalog.Item(name); !ok {
				ignored[name] = true
			}
		}
	}

	if _, err := o.ownershipRepo.Save(ctx, ownership.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to save ownership")
	}

	o.publishOwnershipUpdated(ctx, input.PlayerID, wholeState)

	output := &ImportOwnershipOutput{State: state, Ignored: make([]string, 0, len(ignored))}
	for name := range ignored {
		output.Ignored = append(output.Ignored, name)
	}
	sort.Strings(output.Ignored)

	slog.Info("Ownership imported",
		"player_id", input.PlayerID,
		"ignored", len(output.Ignored))

	return output, nil
}

// snapshotPool filters the catalog by the player's current flags. The
// state is copied so the search sees one consistent view.
func (o *orchestrator) snapshotPool(ctx context.Context, playerID string, filter entities.PoolFilter) ([]entities.Item, error) {
	state := entities.NewOwnershipState(playerID)
	if strings.TrimSpace(playerID) != "" {
		out, err := o.ownershipRepo.Get(ctx, ownership.GetInput{PlayerID: playerID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load ownership")
		}
		state = out.State.Clone()
	}

	items := o.catalog.Items()
	pool := make([]entities.Item, 0, len(items))
	for _, item := range items {
		if filter.Admits(state, item.Name) {
			pool = append(pool, item)
		}
	}
	return pool, nil
}
