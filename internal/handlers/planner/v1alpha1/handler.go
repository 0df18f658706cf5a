package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/errors"
	"github.com/KirkDiggler/essence-api/internal/orchestrators/planner"
)

// HandlerConfig holds dependencies for the planner handler
type HandlerConfig struct {
	PlannerService planner.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.PlannerService == nil {
		return errors.InvalidArgument("planner service is required")
	}
	return nil
}

// Handler implements PlannerServiceServer on top of the planner orchestrator
type Handler struct {
	planner planner.Service
}

var _ PlannerServiceServer = (*Handler)(nil)

// NewHandler creates a new planner handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{planner: cfg.PlannerService}, nil
}

// RecommendPlans ranks farm plans for item_name
func (h *Handler) RecommendPlans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.RecommendPlansInput{
		PlayerID:       r.str("player_id"),
		ItemName:       r.require("item_name"),
		TopN:           r.integer("top_n"),
		ExcludeUnowned: r.boolean("exclude_unowned"),
		ExcludeDone:    r.boolean("exclude_done"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.RecommendPlans(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]interface{}{
		"search_id":   out.SearchID,
		"item_name":   out.ItemName,
		"plans":       planList(out.Plans),
		"suggestions": stringList(out.Suggestions),
	})
}

// FindItems returns the items with exactly base, bonus and skill. Each
// attribute may be a code or a label.
func (h *Handler) FindItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.FindItemsInput{
		PlayerID:       r.str("player_id"),
		Base:           r.attribute("base", catalog.DimensionBase),
		Bonus:          r.attribute("bonus", catalog.DimensionBonus),
		Skill:          r.attribute("skill", catalog.DimensionSkill),
		ExcludeUnowned: r.boolean("exclude_unowned"),
		ExcludeDone:    r.boolean("exclude_done"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.FindItems(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]interface{}{
		"items": itemList(out.Items),
	})
}

// GetLastSearch returns the player's cached search
func (h *Handler) GetLastSearch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.GetLastSearchInput{PlayerID: r.require("player_id")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.GetLastSearch(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(searchValue(out.Search))
}

// SimulatePlan rolls runs drops under one of item_name's plans
func (h *Handler) SimulatePlan(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.SimulatePlanInput{
		PlayerID:       r.str("player_id"),
		ItemName:       r.require("item_name"),
		PlanIndex:      r.integer("plan_index"),
		Runs:           r.integer("runs"),
		ExcludeUnowned: r.boolean("exclude_unowned"),
		ExcludeDone:    r.boolean("exclude_done"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.SimulatePlan(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]interface{}{
		"plan":   planValue(out.Plan),
		"result": simulationValue(out.Result),
	})
}

// ListItems lists catalog items by category
func (h *Handler) ListItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.ListItemsInput{Category: r.str("category")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.ListItems(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	categories := make([]interface{}, 0, len(out.Categories))
	for _, c := range out.Categories {
		categories = append(categories, map[string]interface{}{
			"category": c.Category,
			"items":    itemList(c.Items),
		})
	}
	return response(map[string]interface{}{"categories": categories})
}

// GetOwnership returns the player's owned and done flags
func (h *Handler) GetOwnership(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.GetOwnershipInput{PlayerID: r.require("player_id")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.GetOwnership(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return response(stateValue(out.State))
}

// UpdateOwnership sets one item's flags
func (h *Handler) UpdateOwnership(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.UpdateOwnershipInput{
		PlayerID: r.require("player_id"),
		ItemName: r.require("item_name"),
		Owned:    r.boolean("owned"),
		Done:     r.boolean("done"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.UpdateOwnership(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return response(stateValue(out.State))
}

// ResetOwnership clears the player's flags
func (h *Handler) ResetOwnership(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.ResetOwnershipInput{PlayerID: r.require("player_id")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.planner.ResetOwnership(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return response(map[string]interface{}{"player_id": input.PlayerID})
}

// ExportOwnership returns the export document in the "json" field
func (h *Handler) ExportOwnership(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.ExportOwnershipInput{PlayerID: r.require("player_id")}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.ExportOwnership(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return response(map[string]interface{}{"json": string(out.JSON)})
}

// ImportOwnership replaces the player's flags from the "json" field
func (h *Handler) ImportOwnership(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &planner.ImportOwnershipInput{
		PlayerID: r.require("player_id"),
		JSON:     []byte(r.require("json")),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.planner.ImportOwnership(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := stateValue(out.State)
	fields["ignored"] = stringList(out.Ignored)
	return response(fields)
}
