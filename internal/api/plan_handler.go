package api

import (
	"errors"
	"log"
	"net/http"

	"fitforge/plan-generator/internal/domain"
	"fitforge/plan-generator/internal/generator"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the generator dependency.
type PlanHandler struct {
	generator *generator.Generator
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(gen *generator.Generator) *PlanHandler {
	return &PlanHandler{generator: gen}
}

// --- DTOs ---

// GeneratePlanRequest is the expected JSON body for plan generation. Units
// are metric (cm/kg, minutes); enum vocabularies are fixed and versioned
// with the rule tables.
type GeneratePlanRequest struct {
	Age                int      `json:"age" binding:"omitempty,gte=0"`
	Gender             string   `json:"gender" binding:"omitempty"`
	HeightCm           float64  `json:"heightCm" binding:"omitempty,gt=0"`
	WeightKg           float64  `json:"weightKg" binding:"omitempty,gt=0"`
	Goal               string   `json:"goal" binding:"required"`
	Experience         string   `json:"experience" binding:"required"`
	SessionsPerWeek    int      `json:"sessionsPerWeek" binding:"required"`
	SessionMinutes     int      `json:"sessionMinutes" binding:"required"`
	Equipment          []string `json:"equipment" binding:"omitempty"`
	Injuries           []string `json:"injuries" binding:"omitempty"`
	MedicalConditions  []string `json:"medicalConditions" binding:"omitempty"`
	Medications        []string `json:"medications" binding:"omitempty"`
	Pregnant           bool     `json:"pregnant" binding:"omitempty"`
	PregnancyTrimester int      `json:"pregnancyTrimester" binding:"omitempty,gte=0,lte=3"`
	Breastfeeding      bool     `json:"breastfeeding" binding:"omitempty"`
}

func (r *GeneratePlanRequest) toProfile() domain.UserProfile {
	equipment := make([]domain.Equipment, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		equipment = append(equipment, domain.Equipment(e))
	}
	return domain.UserProfile{
		Age:                r.Age,
		Gender:             domain.Gender(r.Gender),
		HeightCm:           r.HeightCm,
		WeightKg:           r.WeightKg,
		Goal:               domain.Goal(r.Goal),
		Experience:         domain.Experience(r.Experience),
		SessionsPerWeek:    r.SessionsPerWeek,
		SessionMinutes:     r.SessionMinutes,
		Equipment:          equipment,
		Injuries:           r.Injuries,
		MedicalConditions:  r.MedicalConditions,
		Medications:        r.Medications,
		Pregnant:           r.Pregnant,
		PregnancyTrimester: r.PregnancyTrimester,
		Breastfeeding:      r.Breastfeeding,
	}
}

// GeneratePlan handles POST /api/v1/plans/generate.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.generator.Generate(req.toProfile())
	if err != nil {
		switch {
		case errors.Is(err, generator.ErrInvalidProfile):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, generator.ErrInsufficientCatalogCoverage):
			// The caller's recourse is to change the input (add equipment,
			// drop an overly broad exclusion) and re-invoke.
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, generator.ErrConfigurationDefect):
			log.Printf("ERROR: configuration defect during plan generation: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Internal configuration error")
		default:
			log.Printf("ERROR: plan generation failed: %v", err)
			abortWithError(c, http.StatusInternalServerError, "Plan generation failed")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
