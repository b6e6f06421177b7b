package craft

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Player is the external input describing the crafter.
type Player struct {
	JobLevel      uint32
	Craftsmanship uint32
	Control       uint32
	CP            uint32
}

// String renders the player the way a macro header or log line would.
func (p Player) String() string {
	return "lv" + strconv.Itoa(int(p.JobLevel)) + " / " + strconv.Itoa(int(p.Craftsmanship)) +
		" craftsmanship / " + strconv.Itoa(int(p.Control)) + " control / " + strconv.Itoa(int(p.CP)) + " cp"
}

// Recipe is the external input describing the item being crafted, already resolved from
// the out-of-scope job_level -> []Recipe lookup tables (see internal/recipe).
type Recipe struct {
	RecipeLevel    uint32
	JobLevel       uint32
	Stars          uint32
	Progress       uint32
	Quality        uint32
	Durability     uint32
	ProgressDiv    uint32
	ProgressMod    uint32
	QualityDiv     uint32
	QualityMod     uint32
	IsExpert       bool
	ConditionsFlag uint32
}

// CraftOptions configures the parts of a craft not derived from Player/Recipe stats.
type CraftOptions struct {
	MaxSteps           uint8
	StartingQuality    uint32
	QualityTarget      uint32 // Used only if HasQualityTarget; else the recipe's Quality is the target. 0 means "quality does not matter".
	HasQualityTarget   bool
	PlayerIsSpecialist bool
	UseManipulation    bool
	UseDelineation     bool
}

// CraftContext is the immutable configuration shared, by reference, by every CraftState
// produced during one craft. It never changes after NewCraftContext returns.
type CraftContext struct {
	PlayerJobLevel uint32
	RecipeJobLevel uint32

	BaseProgressFactor int32
	BaseQualityFactor  int32

	ProgressTarget  uint32
	QualityTarget   uint32
	StartingQuality uint32
	DurabilityMax   int32
	CPMax           uint32
	StepMax         uint8
	IsExpert        bool

	ActionPool ActionSet

	PlayerIsSpecialist bool
	UseManipulation    bool
	UseDelineation     bool
}

// NewCraftContext derives a CraftContext from the player's stats, the recipe, and the
// craft options. The base factors are stat * 10 / divisor + constant, scaled by
// recipe.mod / 100 when the player's job level is at or below the recipe's job level,
// and floored once after that scaling.
func NewCraftContext(player Player, recipe Recipe, opts CraftOptions) *CraftContext {
	progressFactor := float32(player.Craftsmanship*10)/float32(recipe.ProgressDiv) + 2
	if player.JobLevel <= recipe.JobLevel {
		progressFactor *= float32(recipe.ProgressMod) / 100
	}
	qualityFactor := float32(player.Control*10)/float32(recipe.QualityDiv) + 35
	if player.JobLevel <= recipe.JobLevel {
		qualityFactor *= float32(recipe.QualityMod) / 100
	}

	qualityTarget := opts.QualityTarget
	if !opts.HasQualityTarget {
		qualityTarget = recipe.Quality
	}

	ctx := &CraftContext{
		PlayerJobLevel:      player.JobLevel,
		RecipeJobLevel:      recipe.JobLevel,
		BaseProgressFactor:  int32(math32.Floor(progressFactor)),
		BaseQualityFactor:   int32(math32.Floor(qualityFactor)),
		ProgressTarget:      recipe.Progress,
		QualityTarget:       qualityTarget,
		StartingQuality:     opts.StartingQuality,
		DurabilityMax:       int32(recipe.Durability),
		CPMax:               player.CP,
		StepMax:             opts.MaxSteps,
		IsExpert:            recipe.IsExpert,
		PlayerIsSpecialist:  opts.PlayerIsSpecialist,
		UseManipulation:     opts.UseManipulation,
		UseDelineation:      opts.UseDelineation,
	}
	ctx.ActionPool = ctx.buildActionPool(player.JobLevel)
	return ctx
}

// buildActionPool resolves the subset of actions available given the player's level, CP
// budget, the traited Groundwork supersession, and the Manipulation/QuickInnovation
// option flags. CP here uses each action's base cost, so an action whose base cost
// exceeds the CP budget is left out even if a combo discount would make it affordable.
func (ctx *CraftContext) buildActionPool(playerJobLevel uint32) ActionSet {
	var pool ActionSet
	for a := Action(0); a < Action(NumActions); a++ {
		attrs := a.Attributes()
		if attrs.Level > playerJobLevel {
			continue
		}
		if attrs.CPCost != nil && uint32(*attrs.CPCost) > ctx.CPMax {
			continue
		}
		switch a {
		case ActionGroundwork:
			if playerJobLevel >= ActionGroundworkTraited.Attributes().Level {
				continue // superseded by the traited variant
			}
		case ActionManipulation:
			if !ctx.UseManipulation {
				continue
			}
		case ActionQuickInnovation:
			if !ctx.UseDelineation {
				continue
			}
		}
		pool = pool.Set(a)
	}
	return pool
}
