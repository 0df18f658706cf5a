package v1alpha1

import (
	"math"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/essence-api/internal/catalog"
	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/entities"
	"github.com/KirkDiggler/essence-api/internal/errors"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

// request wraps a request document with typed field readers. Readers record
// type errors in a ValidationBuilder instead of failing one by one.
type request struct {
	fields map[string]*structpb.Value
	vb     *errors.ValidationBuilder
}

func newRequest(in *structpb.Struct) *request {
	return &request{fields: in.GetFields(), vb: errors.NewValidationBuilder()}
}

func (r *request) str(name string) string {
	v, ok := r.fields[name]
	if !ok {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.vb.Field(name, "must be a string")
		return ""
	}
	return strings.TrimSpace(s.StringValue)
}

func (r *request) boolean(name string) bool {
	v, ok := r.fields[name]
	if !ok {
		return false
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.vb.Field(name, "must be a bool")
		return false
	}
	return b.BoolValue
}

func (r *request) integer(name string) int {
	v, ok := r.fields[name]
	if !ok {
		return 0
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		r.vb.Field(name, "must be an integer")
		return 0
	}
	return int(n.NumberValue)
}

// attribute reads a code given either as a number or as a label
func (r *request) attribute(name string, dim catalog.Dimension) entities.AttributeCode {
	v, ok := r.fields[name]
	if !ok {
		r.vb.RequiredField(name)
		return 0
	}
	if s, isString := v.GetKind().(*structpb.Value_StringValue); isString {
		code, found := catalog.Table(dim).Code(strings.TrimSpace(s.StringValue))
		if !found {
			r.vb.Fieldf(name, "unknown %s label %q", dim, s.StringValue)
		}
		return code
	}
	return entities.AttributeCode(r.integer(name))
}

func (r *request) require(name string) string {
	s := r.str(name)
	if s == "" {
		r.vb.RequiredField(name)
	}
	return s
}

func (r *request) err() error {
	return r.vb.Build()
}

func codeList(codes []entities.AttributeCode) []interface{} {
	out := make([]interface{}, 0, len(codes))
	for _, c := range codes {
		out = append(out, int(c))
	}
	return out
}

func itemValue(item entities.Item) map[string]interface{} {
	return map[string]interface{}{
		"name":        item.Name,
		"category":    item.Category(),
		"base":        int(item.Base),
		"bonus":       int(item.Bonus),
		"skill":       int(item.Skill),
		"base_label":  catalog.BaseLabel(item.Base),
		"bonus_label": catalog.BonusLabel(item.Bonus),
		"skill_label": catalog.SkillLabel(item.Skill),
	}
}

func itemList(items []entities.Item) []interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, itemValue(item))
	}
	return out
}

func planValue(plan entities.FarmPlan) map[string]interface{} {
	baseLabels := make([]interface{}, 0, len(plan.Filter.BaseCandidates))
	for _, c := range plan.Filter.BaseCandidates {
		baseLabels = append(baseLabels, catalog.BaseLabel(c))
	}
	return map[string]interface{}{
		"dungeon":         plan.Dungeon,
		"base_candidates": codeList(plan.Filter.BaseCandidates),
		"base_labels":     baseLabels,
		"fixed_slot":      string(plan.Filter.FixedSlot),
		"fixed_value":     int(plan.Filter.FixedValue),
		"fixed_label":     catalog.SlotLabel(plan.Filter.FixedSlot, plan.Filter.FixedValue),
		"match_count":     plan.Score.MatchCount,
		"matched":         itemList(plan.Matched),
	}
}

func planList(plans []entities.FarmPlan) []interface{} {
	out := make([]interface{}, 0, len(plans))
	for _, plan := range plans {
		out = append(out, planValue(plan))
	}
	return out
}

func stringList(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func flagMap(flags map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(flags))
	for name, set := range flags {
		if set {
			out[name] = true
		}
	}
	return out
}

func stateValue(state *entities.OwnershipState) map[string]interface{} {
	return map[string]interface{}{
		"player_id": state.PlayerID,
		"owned":     flagMap(state.Owned),
		"done":      flagMap(state.Done),
	}
}

func searchValue(search *searchcache.Search) map[string]interface{} {
	return map[string]interface{}{
		"search_id":       search.SearchID,
		"player_id":       search.PlayerID,
		"item_name":       search.ItemName,
		"top_n":           search.TopN,
		"exclude_unowned": search.Filter.ExcludeUnowned,
		"exclude_done":    search.Filter.ExcludeDone,
		"plans":           planList(search.Plans),
		"created_at":      search.CreatedAt.Unix(),
		"expires_at":      search.ExpiresAt.Unix(),
	}
}

func simulationValue(result *essence.SimulationResult) map[string]interface{} {
	hits := make(map[string]interface{}, len(result.Hits))
	for name, n := range result.Hits {
		hits[name] = n
	}
	chance := make(map[string]interface{}, len(result.Chance))
	for name, p := range result.Chance {
		chance[name] = p
	}
	return map[string]interface{}{
		"runs":   result.Runs,
		"hits":   hits,
		"chance": chance,
	}
}

// response builds the reply document
func response(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}
