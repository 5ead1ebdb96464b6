package generator

import (
	"fmt"

	"fitforge/plan-generator/internal/domain"
)

const (
	warmupReserveMinutes   = 8
	cooldownReserveMinutes = 5
	minutesPerSlot         = 6
	minMainSlots           = 2
	maxMainSlots           = 8
	warmupCount            = 2
	cooldownCount          = 2
	// Mobility-emphasis days trade main-work time for a doubled cooldown
	// stretch block.
	mobilityCooldownCount = 4
)

// Substitution records that a main slot was served by a fallback stage, so
// the safety annotator can tell the user why an exercise was swapped.
type Substitution struct {
	DayLabel  string
	Requested domain.MuscleGroup
	Served    domain.MuscleGroup
	Stage     FallbackStage
}

// Composer turns day templates into concrete WorkoutDays. It carries the
// week's consumption state: an exercise used on one day is deprioritized
// (not hard-excluded) on later days, which keeps repetition across
// same-emphasis days near zero when the catalog allows it.
type Composer struct {
	filter     *FilterEngine
	cs         *domain.ConstraintSet
	experience domain.Experience
	minutes    int
	circuit    bool
	mobility   bool

	used map[string]int // exercise id -> times consumed this week
	subs []Substitution
}

func NewComposer(filter *FilterEngine, cs *domain.ConstraintSet, experience domain.Experience, sessionMinutes int, circuit, mobility bool) *Composer {
	return &Composer{
		filter:     filter,
		cs:         cs,
		experience: experience,
		minutes:    sessionMinutes,
		circuit:    circuit,
		mobility:   mobility,
		used:       make(map[string]int),
	}
}

// Substitutions returns every fallback event recorded while composing, in
// day order.
func (c *Composer) Substitutions() []Substitution {
	return c.subs
}

// cooldownReserve is the session time held back for the stretch block;
// mobility-emphasis days double it.
func (c *Composer) cooldownReserve() int {
	if c.mobility {
		return 2 * cooldownReserveMinutes
	}
	return cooldownReserveMinutes
}

func (c *Composer) cooldownTarget() int {
	if c.mobility {
		return mobilityCooldownCount
	}
	return cooldownCount
}

// mainSlots budgets roughly one main-exercise slot per six minutes after
// reserving fixed warmup and cooldown time.
func (c *Composer) mainSlots() int {
	slots := (c.minutes - warmupReserveMinutes - c.cooldownReserve()) / minutesPerSlot
	if slots < minMainSlots {
		slots = minMainSlots
	}
	if slots > maxMainSlots {
		slots = maxMainSlots
	}
	return slots
}

// compoundQuota scales compound density with experience.
func (c *Composer) compoundQuota() int {
	switch c.experience {
	case domain.ExperienceAdvanced:
		return 4
	case domain.ExperienceIntermediate:
		return 3
	default:
		return 2
	}
}

// pick selects the best unchosen candidate from a pool: least consumed this
// week first, then matching the compound/isolation preference, then catalog
// order. Returns nil when every candidate is already on the day.
func (c *Composer) pick(pool []*domain.CatalogEntry, onDay map[string]bool, preferCompound, preferenceActive bool) *domain.CatalogEntry {
	var best *domain.CatalogEntry
	bestKey := [2]int{}
	for _, e := range pool {
		if onDay[e.ID] {
			continue
		}
		mismatch := 0
		if preferenceActive && e.HasPattern(domain.PatternCompound) != preferCompound {
			mismatch = 1
		}
		key := [2]int{c.used[e.ID], mismatch}
		if best == nil || key[0] < bestKey[0] || (key[0] == bestKey[0] && key[1] < bestKey[1]) {
			best = e
			bestKey = key
		}
	}
	return best
}

func (c *Composer) recordSubstitution(label string, requested domain.MuscleGroup, result PoolResult) {
	if result.Stage == StagePrimary {
		return
	}
	for _, s := range c.subs {
		if s.DayLabel == label && s.Requested == requested && s.Stage == result.Stage {
			return
		}
	}
	c.subs = append(c.subs, Substitution{
		DayLabel:  label,
		Requested: requested,
		Served:    result.Muscle,
		Stage:     result.Stage,
	})
}

// fillMainSlot serves one main slot for the given muscle, walking the filter
// fallback chain and, as a last resort, the day's other focus muscles.
func (c *Composer) fillMainSlot(label string, muscle domain.MuscleGroup, focus []domain.MuscleGroup, onDay map[string]bool, preferCompound bool) (*domain.CatalogEntry, error) {
	result := c.filter.Pool(domain.RoleMain, muscle)
	if entry := c.pick(result.Entries, onDay, preferCompound, true); entry != nil {
		c.recordSubstitution(label, muscle, result)
		return entry, nil
	}

	// The pool for this muscle is either empty or fully consumed on this
	// day; borrow from the day's other focus muscles before failing.
	for _, other := range focus {
		if other == muscle {
			continue
		}
		result := c.filter.Pool(domain.RoleMain, other)
		if entry := c.pick(result.Entries, onDay, preferCompound, true); entry != nil {
			c.recordSubstitution(label, muscle, PoolResult{Stage: StageAdjacent, Muscle: other})
			return entry, nil
		}
	}

	return nil, fmt.Errorf("%w: day %q has no eligible %s exercise for muscle group %q",
		ErrInsufficientCatalogCoverage, label, domain.RoleMain, muscle)
}

// pickAccessory serves warmup and cooldown slots. Shortfall here is not an
// error: main work defines the session, accessories degrade gracefully.
func (c *Composer) pickAccessory(role domain.ExerciseRole, muscle domain.MuscleGroup, onDay map[string]bool) *domain.CatalogEntry {
	result := c.filter.Pool(role, muscle)
	return c.pick(result.Entries, onDay, false, false)
}

func (c *Composer) take(entry *domain.CatalogEntry, onDay map[string]bool) domain.PlannedExercise {
	c.used[entry.ID]++
	onDay[entry.ID] = true
	return domain.PlannedExercise{ExerciseID: entry.ID, Name: entry.Name}
}

// ComposeDay builds one WorkoutDay from its template: warmups, compound-first
// main work, then cooldown stretches for the day's focus muscles.
func (c *Composer) ComposeDay(tpl DayTemplate, label string) (domain.WorkoutDay, error) {
	onDay := make(map[string]bool)

	var warmup []domain.PlannedExercise
	for i := 0; i < warmupCount; i++ {
		if entry := c.pickAccessory(domain.RoleWarmup, domain.MuscleFullBody, onDay); entry != nil {
			warmup = append(warmup, c.take(entry, onDay))
		}
	}

	slots := c.mainSlots()
	quota := c.compoundQuota()
	compounds := 0
	var mains []domain.PlannedExercise
	for slot := 0; slot < slots; slot++ {
		muscle := tpl.Focus[slot%len(tpl.Focus)]
		entry, err := c.fillMainSlot(label, muscle, tpl.Focus, onDay, compounds < quota)
		if err != nil {
			return domain.WorkoutDay{}, err
		}
		if entry.HasPattern(domain.PatternCompound) {
			compounds++
		}
		mains = append(mains, c.take(entry, onDay))
	}

	var cooldown []domain.PlannedExercise
	target := c.cooldownTarget()
	for pass := 0; pass < 2 && len(cooldown) < target; pass++ {
		for _, muscle := range tpl.Focus {
			if len(cooldown) >= target {
				break
			}
			if entry := c.pickAccessory(domain.RoleCooldown, muscle, onDay); entry != nil {
				cooldown = append(cooldown, c.take(entry, onDay))
			}
		}
	}

	title := tpl.Title
	if c.circuit {
		title += " Circuit"
	}

	return domain.WorkoutDay{
		Label:            label,
		Title:            title,
		Focus:            tpl.Focus,
		Warmup:           warmup,
		Main:             mains,
		Cooldown:         cooldown,
		EstimatedMinutes: warmupReserveMinutes + len(mains)*minutesPerSlot + c.cooldownReserve(),
		Difficulty:       c.difficulty(),
	}, nil
}

func (c *Composer) difficulty() string {
	if c.cs.GentleMode {
		return "gentle"
	}
	return string(c.experience)
}
