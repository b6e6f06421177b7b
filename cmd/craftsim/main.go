// Command craftsim drives or searches a single craft from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/alostsock/craftsim/internal/craft"
	"github.com/alostsock/craftsim/internal/driver"
	"github.com/alostsock/craftsim/internal/parameters"
	"github.com/alostsock/craftsim/internal/profilers"
	"github.com/alostsock/craftsim/internal/search"
	"github.com/alostsock/craftsim/internal/ui/cli"
	"github.com/alostsock/craftsim/internal/ui/spinning"
)

var (
	flagPlayer = flag.String("player", "job_level=90,craftsmanship=3304,control=3374,cp=575",
		"Player stats, as a comma-separated key=value config string.")
	flagRecipe = flag.String("recipe",
		"recipe_level=560,job_level=90,progress=3500,quality=7200,durability=80,"+
			"progress_div=130,progress_mod=90,quality_div=115,quality_mod=80",
		"Recipe stats, as a comma-separated key=value config string.")
	flagCraft = flag.String("craft", "max_steps=30,use_manipulation,use_delineation",
		"Craft options, as a comma-separated key=value config string.")
	flagSearch = flag.String("search", "iterations=20000",
		"Search options, as a comma-separated key=value config string.")
	flagStepwise    = flag.Bool("stepwise", false, "Use search_stepwise instead of search_oneshot.")
	flagInteractive = flag.Bool("interactive", false, "Drive the craft by typing actions instead of searching.")
	flagParallel    = flag.Int("parallel", 1, "Number of independent searchers to run in parallel (search_oneshot only).")
	flagMacro       = flag.Bool("macro", false, "Print the solution as a crafting macro instead of a step trace.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(ctx)
	defer profilers.OnQuit()

	craftCtx, err := buildCraftContext()
	if err != nil {
		klog.Exitf("failed to build craft context: %+v", err)
	}

	ui := cli.New(true)

	if *flagInteractive {
		ui.RunInteractive(craftCtx)
		return
	}

	searchOpts, err := buildSearchOptions()
	if err != nil {
		klog.Exitf("failed to parse --search: %+v", err)
	}

	s := spinning.New(ctx)
	var result driver.SearchOneshotResult
	if *flagStepwise {
		result, err = driver.SearchStepwise(craftCtx, nil, searchOpts, nil)
	} else {
		result, err = driver.SearchOneshot(craftCtx, nil, searchOpts, *flagParallel)
	}
	s.Done()
	if err != nil {
		klog.Exitf("search failed: %+v", err)
	}

	if *flagMacro {
		ui.PrintMacro(result.Actions)
	} else {
		ui.PrintTrace(craftCtx, result.Actions)
	}
	ui.PrintOutcome(result.Final.CheckResult())
}

func buildCraftContext() (*craft.CraftContext, error) {
	playerParams := parameters.NewFromConfigString(*flagPlayer)
	player := craft.Player{}
	var err error
	if player.JobLevel, err = popUint32(playerParams, "job_level", 0); err != nil {
		return nil, err
	}
	if player.Craftsmanship, err = popUint32(playerParams, "craftsmanship", 0); err != nil {
		return nil, err
	}
	if player.Control, err = popUint32(playerParams, "control", 0); err != nil {
		return nil, err
	}
	if player.CP, err = popUint32(playerParams, "cp", 0); err != nil {
		return nil, err
	}

	recipeParams := parameters.NewFromConfigString(*flagRecipe)
	recipe := craft.Recipe{}
	for _, f := range []struct {
		name string
		dst  *uint32
	}{
		{"recipe_level", &recipe.RecipeLevel}, {"job_level", &recipe.JobLevel}, {"stars", &recipe.Stars},
		{"progress", &recipe.Progress}, {"quality", &recipe.Quality}, {"durability", &recipe.Durability},
		{"progress_div", &recipe.ProgressDiv}, {"progress_mod", &recipe.ProgressMod},
		{"quality_div", &recipe.QualityDiv}, {"quality_mod", &recipe.QualityMod},
		{"conditions_flag", &recipe.ConditionsFlag},
	} {
		if *f.dst, err = popUint32(recipeParams, f.name, 0); err != nil {
			return nil, err
		}
	}
	if recipe.IsExpert, err = parameters.PopParamOr(recipeParams, "is_expert", false); err != nil {
		return nil, err
	}

	craftParams := parameters.NewFromConfigString(*flagCraft)
	opts := craft.CraftOptions{}
	var maxSteps int
	if maxSteps, err = parameters.PopParamOr(craftParams, "max_steps", 30); err != nil {
		return nil, err
	}
	opts.MaxSteps = uint8(maxSteps)
	if opts.StartingQuality, err = popUint32(craftParams, "starting_quality", 0); err != nil {
		return nil, err
	}
	if _, ok := craftParams["quality_target"]; ok {
		opts.HasQualityTarget = true
		if opts.QualityTarget, err = popUint32(craftParams, "quality_target", 0); err != nil {
			return nil, err
		}
	}
	if opts.PlayerIsSpecialist, err = parameters.PopParamOr(craftParams, "player_is_specialist", false); err != nil {
		return nil, err
	}
	if opts.UseManipulation, err = parameters.PopParamOr(craftParams, "use_manipulation", false); err != nil {
		return nil, err
	}
	if opts.UseDelineation, err = parameters.PopParamOr(craftParams, "use_delineation", false); err != nil {
		return nil, err
	}

	return craft.NewCraftContext(player, recipe, opts), nil
}

func buildSearchOptions() (search.Options, error) {
	params := parameters.NewFromConfigString(*flagSearch)
	return search.NewOptionsFromParams(params)
}

func popUint32(params parameters.Params, key string, def uint32) (uint32, error) {
	v, err := parameters.PopParamOr(params, key, int(def))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, v)
	}
	return uint32(v), nil
}
