package dice

import (
	"errors"
)

// randomRoller implements Roller over math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := roll(count, sides)
	total := 0
	for _, v := range rolls {
		total += v
	}

	result := &RollResult{
		Total:    total + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: total,
		Mode:     ModeNormal,
	}

	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}

// RollD20 implements Roller.RollD20
func (r *randomRoller) RollD20(mode Mode, bonus int) (*RollResult, error) {
	if mode == ModeNormal || mode == "" {
		result, err := r.Roll(1, 20, bonus)
		if err != nil {
			return nil, err
		}
		result.Mode = ModeNormal
		return result, nil
	}

	rolls := roll(2, 20)
	selected := rolls[0]
	switch mode {
	case ModeAdvantage:
		if rolls[1] > selected {
			selected = rolls[1]
		}
	case ModeDisadvantage:
		if rolls[1] < selected {
			selected = rolls[1]
		}
	default:
		return nil, errors.New("unknown roll mode: " + string(mode))
	}

	return &RollResult{
		Total:    selected + bonus,
		Rolls:    rolls, // Show both rolls
		Bonus:    bonus,
		Count:    1,
		Sides:    20,
		RawTotal: selected,
		Mode:     mode,
		IsCrit:   selected == 20,
		IsFumble: selected == 1,
	}, nil
}
