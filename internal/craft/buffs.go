package craft

// Buffs holds the independent counters that modify efficiencies, costs and eligibility.
// InnerQuiet is a stacking counter (0-10); every other field is a steps-remaining timer
// that decrements by one at the end of each action's application, saturating at 0.
type Buffs struct {
	InnerQuiet   uint8
	WasteNot     uint8
	WasteNotII   uint8
	Manipulation uint8
	GreatStrides uint8
	Innovation   uint8
	Veneration   uint8
	MuscleMemory uint8
}

// decrementTimers decrements every timer except InnerQuiet by one, saturating at 0.
func (b *Buffs) decrementTimers() {
	b.WasteNot = satSub1(b.WasteNot)
	b.WasteNotII = satSub1(b.WasteNotII)
	b.Manipulation = satSub1(b.Manipulation)
	b.GreatStrides = satSub1(b.GreatStrides)
	b.Innovation = satSub1(b.Innovation)
	b.Veneration = satSub1(b.Veneration)
	b.MuscleMemory = satSub1(b.MuscleMemory)
}

func satSub1(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return v - 1
}

// anyWasteNotActive reports whether either Waste Not variant is currently active.
func (b *Buffs) anyWasteNotActive() bool {
	return b.WasteNot > 0 || b.WasteNotII > 0
}

//go:generate go tool enumer -type=TrainedPerfectionState -trimprefix=TrainedPerfection -transform=snake -text -json

// TrainedPerfectionState tracks the one-shot lifecycle of the Trained Perfection action:
// it can be cast once (none -> active), then nullifies exactly one durability cost
// (active -> used), after which it is spent for the rest of the craft.
type TrainedPerfectionState int

const (
	TrainedPerfectionNone TrainedPerfectionState = iota
	TrainedPerfectionActive
	TrainedPerfectionUsed
)
