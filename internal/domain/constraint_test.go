package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintSet_ExcludeIsIdempotent(t *testing.T) {
	cs := NewConstraintSet()
	cs.Exclude(PatternSquat, PatternJumping)
	cs.Exclude(PatternSquat)

	assert.Equal(t, []MovementPattern{PatternJumping, PatternSquat}, cs.ExcludedPatterns())
	assert.True(t, cs.Excludes(PatternSquat))
	assert.False(t, cs.Excludes(PatternLunge))
}

func TestConstraintSet_CapRPEKeepsMinimum(t *testing.T) {
	cs := NewConstraintSet()
	assert.Zero(t, cs.IntensityCapRPE)

	cs.CapRPE(7)
	cs.CapRPE(6)
	cs.CapRPE(8) // looser cap never raises the ceiling
	assert.Equal(t, 6, cs.IntensityCapRPE)

	cs.CapRPE(0) // zero means "no cap requested", not "cap at zero"
	assert.Equal(t, 6, cs.IntensityCapRPE)
}

func TestConstraintSet_BodyweightAlwaysAvailable(t *testing.T) {
	cs := NewConstraintSet()
	assert.True(t, cs.HasEquipment(EquipmentBodyweight))
	assert.Equal(t, []Equipment{EquipmentBodyweight}, cs.EquipmentAvailable())

	cs.AddEquipment(EquipmentDumbbell, EquipmentBarbell)
	assert.Equal(t, []Equipment{EquipmentBarbell, EquipmentBodyweight, EquipmentDumbbell}, cs.EquipmentAvailable())
}

func TestConstraintSet_WarningsDedupInOrder(t *testing.T) {
	cs := NewConstraintSet()
	cs.AddWarning("first")
	cs.AddWarning("second")
	cs.AddWarning("first")
	cs.AddWarning("")

	assert.Equal(t, []string{"first", "second"}, cs.Warnings())

	// Warnings returns a copy; mutating it does not leak back.
	w := cs.Warnings()
	w[0] = "mutated"
	assert.Equal(t, []string{"first", "second"}, cs.Warnings())
}

func TestConstraintSet_AllowsEntryChecksContraindications(t *testing.T) {
	cs := NewConstraintSet()
	cs.Exclude(PatternWristLoad)

	pushUp := CatalogEntry{
		ID:                "push_up",
		Patterns:          []MovementPattern{PatternPush, PatternCompound},
		Contraindications: []MovementPattern{PatternWristLoad},
	}
	assert.False(t, cs.AllowsEntry(&pushUp), "contraindication tags count as risk tags")
}
