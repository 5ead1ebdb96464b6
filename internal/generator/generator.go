package generator

import (
	"errors"
	"fmt"
	"time"

	"fitforge/plan-generator/internal/catalog"
	"fitforge/plan-generator/internal/domain"

	"github.com/google/uuid"
)

// Terminal error kinds. Generation is a pure function with no transient
// failure modes, so none of these are ever worth retrying with the same
// input.
var (
	// ErrInvalidProfile: structurally required fields missing or out of
	// range. The caller must fix the input.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInsufficientCatalogCoverage: the filter fallback chain could not
	// fill a slot. The error message names the day and muscle group so the
	// caller can prompt the user to relax constraints (e.g. add equipment).
	ErrInsufficientCatalogCoverage = errors.New("insufficient catalog coverage")

	// ErrConfigurationDefect: a rule table is missing an entry for a valid
	// input combination. Programming error; must be surfaced loudly.
	ErrConfigurationDefect = errors.New("configuration defect")
)

// Generator runs the rule-based pipeline over a shared read-only catalog.
// One Generator serves concurrent requests without locking: the catalog is
// immutable and all per-request state is local to Generate.
type Generator struct {
	catalog *catalog.Catalog
	now     func() time.Time
	newID   func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock injects the timestamp source, letting tests pin GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDSource injects the plan-id source, letting tests make output
// byte-identical across runs.
func WithIDSource(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func validateProfile(p domain.UserProfile) error {
	switch {
	case p.SessionsPerWeek < 1 || p.SessionsPerWeek > 7:
		return fmt.Errorf("%w: sessionsPerWeek must be between 1 and 7, got %d", ErrInvalidProfile, p.SessionsPerWeek)
	case p.SessionMinutes <= 0:
		return fmt.Errorf("%w: sessionMinutes must be positive, got %d", ErrInvalidProfile, p.SessionMinutes)
	case !p.Goal.Valid():
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	case !p.Experience.Valid():
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidProfile, p.Experience)
	case p.Pregnant && (p.PregnancyTrimester < 1 || p.PregnancyTrimester > 3):
		return fmt.Errorf("%w: pregnancyTrimester must be between 1 and 3, got %d", ErrInvalidProfile, p.PregnancyTrimester)
	}
	return nil
}

// Generate converts a profile into a weekly plan. Deterministic for a fixed
// clock and id source: identical profiles yield identical plans. CPU-only,
// no I/O; the catalog was loaded before this Generator existed.
func (g *Generator) Generate(profile domain.UserProfile) (*domain.WeeklyPlan, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	cs := ExtractConstraints(profile)

	split, err := SelectSplit(profile.SessionsPerWeek, profile.SessionMinutes, profile.Goal, profile.Experience)
	if err != nil {
		return nil, err
	}

	filter := NewFilterEngine(g.catalog, cs, profile.Experience)
	mobility := profile.Goal == domain.GoalFlexibility
	composer := NewComposer(filter, cs, profile.Experience, profile.SessionMinutes, split.Circuit, mobility)

	layout := trainingDayLayout[profile.SessionsPerWeek]
	days := make([]domain.WorkoutDay, 0, len(split.Days))
	for i, tpl := range split.Days {
		day, err := composer.ComposeDay(tpl, weekdays[layout[i]])
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	for d := range days {
		for m := range days[d].Main {
			entry, ok := g.catalog.ByID(days[d].Main[m].ExerciseID)
			if !ok {
				return nil, fmt.Errorf("%w: composed exercise %q missing from catalog", ErrConfigurationDefect, days[d].Main[m].ExerciseID)
			}
			prescription, err := Prescribe(entry, profile.Goal, profile.Experience, split.Circuit, cs)
			if err != nil {
				return nil, err
			}
			days[d].Main[m].Prescription = &prescription
		}
	}

	plan, err := assemblePlan(g.newID(), split, days, profile, cs, g.now().UTC())
	if err != nil {
		return nil, err
	}

	Annotate(plan, cs, composer.Substitutions())
	return plan, nil
}
