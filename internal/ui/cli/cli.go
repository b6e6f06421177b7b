// Package cli implements a terminal front-end for driving and replaying a craft: a
// step-by-step trace printer, a macro-text listing, and an interactive prompt for typing
// actions by name.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alostsock/craftsim/internal/craft"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what
// is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if w := displayWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI prints the progress of a craft and, optionally, reads actions typed by name from
// stdin.
type UI struct {
	color  bool
	reader *bufio.Reader
}

// New returns a UI. color toggles ANSI styling of the outcome banner.
func New(color bool) *UI {
	return &UI{
		color:  color,
		reader: bufio.NewReader(os.Stdin),
	}
}

// PrintStep prints one line of a craft trace: the step number, the action just taken,
// and the resulting resource levels.
func (ui *UI) PrintStep(s *craft.CraftState) {
	label := "(start)"
	if s.Action != nil {
		label = s.Action.String()
	}
	fmt.Printf("  #%-2d %-20s progress %5d  quality %5d  durability %3d  cp %4d\n",
		s.Step, label, s.Progress, s.Quality, s.Durability, s.CP)
}

// PrintTrace prints the full trace of states from simulating actions, via PrintStep.
func (ui *UI) PrintTrace(ctx *craft.CraftContext, actions []craft.Action) {
	s := ctx.NewState()
	ui.PrintStep(s)
	for _, a := range actions {
		s = s.Execute(a, false)
		ui.PrintStep(s)
	}
}

// PrintMacro prints actions as a crafting macro, one "/ac" line per action.
func (ui *UI) PrintMacro(actions []craft.Action) {
	for _, a := range actions {
		fmt.Println(a.MacroText())
	}
}

// PrintOutcome prints a centered banner describing how a craft ended.
func (ui *UI) PrintOutcome(result craft.Result) {
	fmt.Println()
	var text string
	bg := "1" // red
	switch result.Kind {
	case craft.ResultFinished:
		if result.Score > 0 {
			bg = "2" // green
			text = fmt.Sprintf("*** FINISHED, score %.3f ***", result.Score)
		} else {
			text = "*** NOT FINISHED ***"
		}
	case craft.ResultDurabilityFailure:
		text = "*** FAILED: ran out of durability ***"
	case craft.ResultMaxStepsFailure:
		text = "*** FAILED: ran out of steps ***"
	case craft.ResultInvalidActionFailure:
		text = "*** FAILED: illegal action ***"
	}
	if !ui.color {
		printCentered(text)
		fmt.Println()
		return
	}
	printCentered(
		lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color("0")).
			Padding(0, 2).
			Render(text))
	fmt.Println()
}

var parsingErrorMsg = "failed to read an action name 3 times"

// ReadAction prompts for and parses one action name typed against s's AvailableMoves.
func (ui *UI) ReadAction(s *craft.CraftState) (craft.Action, error) {
	for numErrs := 0; numErrs < 3; numErrs++ {
		fmt.Print("  action > ")
		text, err := ui.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		text = strings.TrimSpace(strings.ToLower(strings.ReplaceAll(text, " ", "_")))

		a, err := craft.ActionString(text)
		if err != nil {
			fmt.Printf("    * unknown action %q\n", text)
			continue
		}
		if !s.AvailableMoves.Contains(a) {
			fmt.Printf("    * %s is not legal at step %d\n", a, s.Step)
			continue
		}
		return a, nil
	}
	return 0, fmt.Errorf(parsingErrorMsg)
}

// RunInteractive drives a craft from ctx by repeatedly prompting for an action via
// ReadAction, until the craft reaches a terminal state.
func (ui *UI) RunInteractive(ctx *craft.CraftContext) *craft.CraftState {
	s := ctx.NewState()
	for !s.IsTerminal() {
		ui.PrintStep(s)
		a, err := ui.ReadAction(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		s = s.Execute(a, false)
	}
	ui.PrintStep(s)
	ui.PrintOutcome(s.CheckResult())
	return s
}
