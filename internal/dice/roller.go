package dice

// Roller provides an interface for rolling dice
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollD20 rolls a d20 in the given mode. Advantage and disadvantage roll
	// two independent dice and keep the higher/lower; both values are
	// retained in Rolls for display.
	RollD20(mode Mode, bonus int) (*RollResult, error)
}
