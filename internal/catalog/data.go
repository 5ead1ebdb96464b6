package catalog

import (
	"fitforge/plan-generator/internal/domain"
)

// defaultEntries returns the compiled-in exercise dataset. Tags here are the
// source of truth for constraint matching: an entry missing a risk tag will
// not be excluded for profiles that need it excluded, so curation errs on
// the side of tagging.
func defaultEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		// --- Warmups ---
		{ID: "wu_arm_circles", Name: "Arm Circles", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_leg_swings", Name: "Leg Swings", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_hip_circles", Name: "Hip Circles", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_march_in_place", Name: "March in Place", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_jumping_jacks", Name: "Jumping Jacks", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic, domain.PatternJumping}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_high_knees", Name: "High Knees", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic, domain.PatternJumping}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_torso_twists", Name: "Standing Torso Twists", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic, domain.PatternTwisting}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_shoulder_pass_through", Name: "Shoulder Pass-Through", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic, domain.PatternOverhead}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup}},
		{ID: "wu_inchworm", Name: "Inchworm Walkout", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleWarmup}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "wu_cat_cow", Name: "Cat-Cow", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleWarmup, domain.RoleCooldown}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},

		// --- Cooldowns ---
		{ID: "cd_hamstring_stretch", Name: "Standing Hamstring Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_quad_stretch", Name: "Standing Quad Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleQuads}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_calf_stretch", Name: "Wall Calf Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleCalves}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_doorway_chest_stretch", Name: "Doorway Chest Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleChest}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_cross_body_shoulder_stretch", Name: "Cross-Body Shoulder Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_triceps_stretch", Name: "Overhead Triceps Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch, domain.PatternOverhead}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_child_pose", Name: "Child's Pose", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_lat_stretch", Name: "Kneeling Lat Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_pigeon_pose", Name: "Pigeon Pose", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_figure_four_stretch", Name: "Standing Figure-Four Stretch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_cobra_stretch", Name: "Cobra Stretch", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternStretch, domain.PatternProne}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_standing_side_bend", Name: "Standing Side Bend", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_supine_twist", Name: "Supine Spinal Twist", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternStretch, domain.PatternSupine, domain.PatternTwisting}, Muscles: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},
		{ID: "cd_seated_forward_fold", Name: "Seated Forward Fold", Equipment: []domain.Equipment{domain.EquipmentYogaMat}, Patterns: []domain.MovementPattern{domain.PatternStretch}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleCooldown}},

		// --- Chest ---
		{ID: "push_up", Name: "Push-Up", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "incline_push_up", Name: "Incline Push-Up", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleChest}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "decline_push_up", Name: "Decline Push-Up", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "bench_press", Name: "Barbell Bench Press", Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_bench_press", Name: "Dumbbell Bench Press", Equipment: []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "incline_db_press", Name: "Incline Dumbbell Press", Equipment: []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_fly", Name: "Dumbbell Fly", Equipment: []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleChest}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "cable_fly", Name: "Cable Fly", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleChest}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Shoulders ---
		{ID: "overhead_press", Name: "Barbell Overhead Press", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternOverhead, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders, domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_shoulder_press", Name: "Dumbbell Shoulder Press", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternOverhead, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "arnold_press", Name: "Arnold Press", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternOverhead, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "pike_push_up", Name: "Pike Push-Up", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternOverhead, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "lateral_raise", Name: "Lateral Raise", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "front_raise", Name: "Front Raise", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "rear_delt_fly", Name: "Rear Delt Fly", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternHinge}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders, domain.MuscleBack}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "band_pull_apart", Name: "Band Pull-Apart", Equipment: []domain.Equipment{domain.EquipmentResistanceBand}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain, domain.RoleWarmup}},
		{ID: "face_pull", Name: "Cable Face Pull", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleShoulders, domain.MuscleBack}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Back ---
		{ID: "pull_up", Name: "Pull-Up", Equipment: []domain.Equipment{domain.EquipmentPullUpBar}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "chin_up", Name: "Chin-Up", Equipment: []domain.Equipment{domain.EquipmentPullUpBar}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "lat_pulldown", Name: "Lat Pulldown", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "barbell_row", Name: "Barbell Row", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternRow, domain.PatternHinge, domain.PatternCompound, domain.PatternSpinalLoad}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_row", Name: "One-Arm Dumbbell Row", Equipment: []domain.Equipment{domain.EquipmentDumbbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternRow, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "cable_row", Name: "Seated Cable Row", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternRow, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "inverted_row", Name: "Inverted Row", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternRow, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "band_row", Name: "Resistance Band Row", Equipment: []domain.Equipment{domain.EquipmentResistanceBand}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternRow, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "superman", Name: "Superman Hold", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternProne}, Muscles: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "good_morning", Name: "Barbell Good Morning", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternGoodMorning, domain.PatternSpinalLoad, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleBack}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Arms ---
		{ID: "barbell_curl", Name: "Barbell Curl", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_curl", Name: "Dumbbell Curl", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "hammer_curl", Name: "Hammer Curl", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "cable_curl", Name: "Cable Curl", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "triceps_pushdown", Name: "Cable Triceps Pushdown", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "overhead_triceps_extension", Name: "Overhead Triceps Extension", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternOverhead, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "skull_crusher", Name: "Skull Crusher", Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "bench_dip", Name: "Bench Dip", Equipment: []domain.Equipment{domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleArms, domain.MuscleChest}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "diamond_push_up", Name: "Diamond Push-Up", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleArms, domain.MuscleChest}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "band_curl", Name: "Resistance Band Curl", Equipment: []domain.Equipment{domain.EquipmentResistanceBand}, Patterns: []domain.MovementPattern{domain.PatternPull, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleArms}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Quads ---
		{ID: "bodyweight_squat", Name: "Bodyweight Squat", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "goblet_squat", Name: "Goblet Squat", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "kettlebell_goblet_squat", Name: "Kettlebell Goblet Squat", Equipment: []domain.Equipment{domain.EquipmentKettlebell}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "back_squat", Name: "Barbell Back Squat", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternCompound, domain.PatternSpinalLoad}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "front_squat", Name: "Barbell Front Squat", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternCompound, domain.PatternSpinalLoad}, Muscles: []domain.MuscleGroup{domain.MuscleQuads}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "walking_lunge", Name: "Walking Lunge", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternLunge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "reverse_lunge", Name: "Reverse Lunge", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternLunge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "split_squat", Name: "Split Squat", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternLunge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", Equipment: []domain.Equipment{domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternLunge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "step_up", Name: "Step-Up", Equipment: []domain.Equipment{domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternLunge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "jump_squat", Name: "Jump Squat", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternJumping, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleQuads, domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "wall_sit", Name: "Wall Sit", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternSquat, domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleQuads}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Hamstrings ---
		{ID: "romanian_deadlift", Name: "Barbell Romanian Deadlift", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternDeadlift, domain.PatternCompound, domain.PatternSpinalLoad}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_romanian_deadlift", Name: "Dumbbell Romanian Deadlift", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternDeadlift, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "conventional_deadlift", Name: "Conventional Deadlift", Equipment: []domain.Equipment{domain.EquipmentBarbell}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternDeadlift, domain.PatternCompound, domain.PatternSpinalLoad, domain.PatternMaxEffort}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleBack}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "kettlebell_swing", Name: "Kettlebell Swing", Equipment: []domain.Equipment{domain.EquipmentKettlebell}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternCompound, domain.PatternHIIT}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "single_leg_rdl", Name: "Single-Leg Romanian Deadlift", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings, domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "nordic_curl", Name: "Nordic Hamstring Curl", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "hamstring_walkout", Name: "Hamstring Walkout", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleHamstrings}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Glutes ---
		{ID: "hip_thrust", Name: "Barbell Hip Thrust", Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternSupine}},
		{ID: "glute_bridge", Name: "Glute Bridge", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternHinge, domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "cable_kickback", Name: "Cable Glute Kickback", Equipment: []domain.Equipment{domain.EquipmentCableMachine}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "banded_lateral_walk", Name: "Banded Lateral Walk", Equipment: []domain.Equipment{domain.EquipmentResistanceBand}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "donkey_kick", Name: "Donkey Kick", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "fire_hydrant", Name: "Fire Hydrant", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleGlutes}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},

		// --- Calves ---
		{ID: "standing_calf_raise", Name: "Standing Calf Raise", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCalves}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "db_calf_raise", Name: "Dumbbell Calf Raise", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCalves}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},

		// --- Core ---
		{ID: "plank", Name: "Plank", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternProne}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "side_plank", Name: "Side Plank", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "crunch", Name: "Crunch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "dead_bug", Name: "Dead Bug", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternSupine}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "bicycle_crunch", Name: "Bicycle Crunch", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternSupine, domain.PatternTwisting}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "russian_twist", Name: "Russian Twist", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation, domain.PatternTwisting}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "bird_dog", Name: "Bird Dog", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCore, domain.MuscleBack}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "standing_knee_raise", Name: "Standing Knee Raise", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "pallof_press", Name: "Pallof Press", Equipment: []domain.Equipment{domain.EquipmentResistanceBand}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "hanging_leg_raise", Name: "Hanging Leg Raise", Equipment: []domain.Equipment{domain.EquipmentPullUpBar}, Patterns: []domain.MovementPattern{domain.PatternIsolation}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 3, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "mountain_climbers", Name: "Mountain Climbers", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternHIIT, domain.PatternDynamic}, Muscles: []domain.MuscleGroup{domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},

		// --- Conditioning ---
		{ID: "burpee", Name: "Burpee", Equipment: []domain.Equipment{domain.EquipmentBodyweight}, Patterns: []domain.MovementPattern{domain.PatternJumping, domain.PatternHIIT, domain.PatternPush, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}, Contraindications: []domain.MovementPattern{domain.PatternWristLoad}},
		{ID: "farmer_carry", Name: "Farmer Carry", Equipment: []domain.Equipment{domain.EquipmentDumbbell}, Patterns: []domain.MovementPattern{domain.PatternCarry, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody}, Tier: 1, Roles: []domain.ExerciseRole{domain.RoleMain}},
		{ID: "kettlebell_carry", Name: "Suitcase Carry", Equipment: []domain.Equipment{domain.EquipmentKettlebell}, Patterns: []domain.MovementPattern{domain.PatternCarry, domain.PatternCompound}, Muscles: []domain.MuscleGroup{domain.MuscleFullBody, domain.MuscleCore}, Tier: 2, Roles: []domain.ExerciseRole{domain.RoleMain}},
	}
}
