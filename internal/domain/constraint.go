package domain

import "sort"

// ConstraintSet is the canonical, order-independent form of a profile's
// safety and equipment constraints. It is a pure function of the profile:
// extracting it twice from the same profile yields an identical set.
type ConstraintSet struct {
	excluded  map[MovementPattern]struct{}
	equipment map[Equipment]struct{}

	// IntensityCapRPE is the ceiling on perceived exertion (1-10).
	// Zero means no cap. Accumulation keeps the minimum of all caps.
	IntensityCapRPE int

	// GentleMode replaces the whole prescription table with a fixed
	// conservative scheme (late pregnancy and similar).
	GentleMode bool

	RequiresMedicalClearance bool

	warnings []string
	warnSeen map[string]struct{}
}

// NewConstraintSet returns an empty set with bodyweight always available.
func NewConstraintSet() *ConstraintSet {
	cs := &ConstraintSet{
		excluded:  make(map[MovementPattern]struct{}),
		equipment: make(map[Equipment]struct{}),
		warnSeen:  make(map[string]struct{}),
	}
	cs.equipment[EquipmentBodyweight] = struct{}{}
	return cs
}

// Exclude adds movement-pattern exclusions. Adding the same pattern twice is
// a no-op, so accumulation is commutative.
func (cs *ConstraintSet) Exclude(patterns ...MovementPattern) {
	for _, p := range patterns {
		cs.excluded[p] = struct{}{}
	}
}

// Excludes reports whether the pattern is excluded.
func (cs *ConstraintSet) Excludes(p MovementPattern) bool {
	_, ok := cs.excluded[p]
	return ok
}

// ExcludedPatterns returns the exclusions in sorted order.
func (cs *ConstraintSet) ExcludedPatterns() []MovementPattern {
	out := make([]MovementPattern, 0, len(cs.excluded))
	for p := range cs.excluded {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CapRPE lowers the intensity cap to rpe if it is stricter than the current
// cap (minimum wins, so rule order does not matter).
func (cs *ConstraintSet) CapRPE(rpe int) {
	if rpe <= 0 {
		return
	}
	if cs.IntensityCapRPE == 0 || rpe < cs.IntensityCapRPE {
		cs.IntensityCapRPE = rpe
	}
}

// AddEquipment marks equipment as available.
func (cs *ConstraintSet) AddEquipment(eq ...Equipment) {
	for _, e := range eq {
		cs.equipment[e] = struct{}{}
	}
}

// HasEquipment reports whether the user owns the given equipment.
func (cs *ConstraintSet) HasEquipment(eq Equipment) bool {
	_, ok := cs.equipment[eq]
	return ok
}

// EquipmentAvailable returns the normalized inventory in sorted order.
func (cs *ConstraintSet) EquipmentAvailable() []Equipment {
	out := make([]Equipment, 0, len(cs.equipment))
	for e := range cs.equipment {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddWarning appends a human-readable safety note, dropping duplicates while
// preserving first-seen order.
func (cs *ConstraintSet) AddWarning(w string) {
	if w == "" {
		return
	}
	if _, seen := cs.warnSeen[w]; seen {
		return
	}
	cs.warnSeen[w] = struct{}{}
	cs.warnings = append(cs.warnings, w)
}

// Warnings returns the deduplicated notes in insertion order.
func (cs *ConstraintSet) Warnings() []string {
	out := make([]string, len(cs.warnings))
	copy(out, cs.warnings)
	return out
}

// AllowsEntry reports whether none of the entry's pattern or contraindication
// tags intersect the exclusion set.
func (cs *ConstraintSet) AllowsEntry(e *CatalogEntry) bool {
	for _, tag := range e.RiskTags() {
		if cs.Excludes(tag) {
			return false
		}
	}
	return true
}

// EquipmentSatisfied reports whether the entry's required equipment is a
// subset of the available inventory.
func (cs *ConstraintSet) EquipmentSatisfied(e *CatalogEntry) bool {
	for _, eq := range e.Equipment {
		if !cs.HasEquipment(eq) {
			return false
		}
	}
	return true
}
