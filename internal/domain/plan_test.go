package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlannedExercise_JSONOmitsEmptyPrescription(t *testing.T) {
	warmup := PlannedExercise{ExerciseID: "wu_arm_circles", Name: "Arm Circles"}
	data, err := json.Marshal(warmup)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "prescription",
		"accessory items must not serialize a zero-valued prescription")

	main := PlannedExercise{
		ExerciseID:   "push_up",
		Name:         "Push-Up",
		Prescription: &Prescription{Sets: 3, Reps: 12, RestSeconds: 45},
	}
	data, err = json.Marshal(main)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prescription"`)
	assert.Contains(t, string(data), `"sets":3`)
}
