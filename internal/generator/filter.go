package generator

import (
	"fitforge/plan-generator/internal/catalog"
	"fitforge/plan-generator/internal/domain"
)

// FallbackStage records which stage of the filter fallback chain produced a
// pool, so the safety annotator can explain substitutions instead of
// guessing after the fact.
type FallbackStage int

const (
	// StagePrimary: the normal filters produced a non-empty pool.
	StagePrimary FallbackStage = iota
	// StageBodyweight: the primary pool was empty; bodyweight-only entries
	// for the same muscle were used, ignoring the difficulty-tier cap.
	StageBodyweight
	// StageAdjacent: still empty; an adjacent muscle group served the slot.
	StageAdjacent
	// StageExhausted: the whole chain produced nothing. The caller must
	// report InsufficientCatalogCoverage, never silently drop the slot.
	StageExhausted
)

func (s FallbackStage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageBodyweight:
		return "bodyweight_fallback"
	case StageAdjacent:
		return "adjacent_muscle"
	default:
		return "exhausted"
	}
}

// PoolResult is an ordered candidate pool plus the fallback stage that
// produced it. Muscle is the group that actually served the pool, which
// differs from the requested one at StageAdjacent.
type PoolResult struct {
	Entries []*domain.CatalogEntry
	Stage   FallbackStage
	Muscle  domain.MuscleGroup
}

// adjacentMuscle is the substitution neighbour used when a muscle group has
// no eligible exercises at all.
var adjacentMuscle = map[domain.MuscleGroup]domain.MuscleGroup{
	domain.MuscleChest:      domain.MuscleShoulders,
	domain.MuscleShoulders:  domain.MuscleChest,
	domain.MuscleArms:       domain.MuscleShoulders,
	domain.MuscleBack:       domain.MuscleArms,
	domain.MuscleQuads:      domain.MuscleGlutes,
	domain.MuscleHamstrings: domain.MuscleGlutes,
	domain.MuscleGlutes:     domain.MuscleHamstrings,
	domain.MuscleCalves:     domain.MuscleQuads,
	domain.MuscleCore:       domain.MuscleGlutes,
	domain.MuscleFullBody:   domain.MuscleCore,
}

// FilterEngine applies a constraint set to the catalog, producing eligible
// exercise pools per day-role and muscle group. It holds no per-day state
// and is safe to reuse across all days of one generation request.
type FilterEngine struct {
	catalog *catalog.Catalog
	cs      *domain.ConstraintSet
	maxTier int
}

func NewFilterEngine(cat *catalog.Catalog, cs *domain.ConstraintSet, experience domain.Experience) *FilterEngine {
	return &FilterEngine{catalog: cat, cs: cs, maxTier: experience.Tier()}
}

// scan walks the catalog in load order and applies the filters. Exclusion
// matching is never relaxed; bodyweightOnly additionally restricts required
// equipment to bodyweight (mat allowed) and lifts the tier cap.
func (f *FilterEngine) scan(role domain.ExerciseRole, muscle domain.MuscleGroup, bodyweightOnly bool) []*domain.CatalogEntry {
	entries := f.catalog.Entries()
	var pool []*domain.CatalogEntry
	for i := range entries {
		e := &entries[i]
		if !e.HasRole(role) || !e.Targets(muscle) {
			continue
		}
		if !f.cs.AllowsEntry(e) {
			continue
		}
		// Equipment availability is never relaxed; the bodyweight stage only
		// lifts the tier cap and narrows to bodyweight-style entries.
		if !f.cs.EquipmentSatisfied(e) {
			continue
		}
		if bodyweightOnly {
			if !isBodyweightOnly(e) {
				continue
			}
		} else if e.Tier > f.maxTier {
			continue
		}
		pool = append(pool, e)
	}
	return pool
}

func isBodyweightOnly(e *domain.CatalogEntry) bool {
	for _, eq := range e.Equipment {
		if eq != domain.EquipmentBodyweight && eq != domain.EquipmentYogaMat {
			return false
		}
	}
	return true
}

// Pool runs the documented fallback chain: primary filters, then
// bodyweight-only for the same muscle, then the adjacent muscle group.
// An empty StageExhausted result means the catalog cannot cover this slot
// under the current constraints.
func (f *FilterEngine) Pool(role domain.ExerciseRole, muscle domain.MuscleGroup) PoolResult {
	if pool := f.scan(role, muscle, false); len(pool) > 0 {
		return PoolResult{Entries: pool, Stage: StagePrimary, Muscle: muscle}
	}
	if pool := f.scan(role, muscle, true); len(pool) > 0 {
		return PoolResult{Entries: pool, Stage: StageBodyweight, Muscle: muscle}
	}
	if adj, ok := adjacentMuscle[muscle]; ok {
		if pool := f.scan(role, adj, false); len(pool) > 0 {
			return PoolResult{Entries: pool, Stage: StageAdjacent, Muscle: adj}
		}
		if pool := f.scan(role, adj, true); len(pool) > 0 {
			return PoolResult{Entries: pool, Stage: StageAdjacent, Muscle: adj}
		}
	}
	return PoolResult{Stage: StageExhausted, Muscle: muscle}
}
