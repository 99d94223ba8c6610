package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{rolls: []int{}}
}

// SetNextRoll appends the next roll result
func (m *MockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined roll
func (m *MockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements Roller.Roll
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	rolls := make([]int, count)
	total := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		total += roll
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
func (m *MockRoller) RollD20(mode Mode, bonus int) (*RollResult, error) {
	if mode == ModeNormal || mode == "" {
		result, err := m.Roll(1, 20, bonus)
		if err != nil {
			return nil, err
		}
		result.Mode = ModeNormal
		return result, nil
	}

	roll1, err := m.getNextRoll()
	if err != nil {
		return nil, err
	}
	roll2, err := m.getNextRoll()
	if err != nil {
		return nil, err
	}
	if roll1 < 1 || roll1 > 20 || roll2 < 1 || roll2 > 20 {
		return nil, fmt.Errorf("invalid rolls %d,%d for d20", roll1, roll2)
	}

	selected := roll1
	switch mode {
	case ModeAdvantage:
		if roll2 > selected {
			selected = roll2
		}
	case ModeDisadvantage:
		if roll2 < selected {
			selected = roll2
		}
	default:
		return nil, fmt.Errorf("unknown roll mode: %s", mode)
	}

	return &RollResult{
		Total:    selected + bonus,
		Rolls:    []int{roll1, roll2},
		Bonus:    bonus,
		Count:    1,
		Sides:    20,
		RawTotal: selected,
		Mode:     mode,
		IsCrit:   selected == 20,
		IsFumble: selected == 1,
	}, nil
}
