package dice_test

import (
	"testing"

	"github.com/jianghu-tales/jianghu-bot/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  dice.Formula
	}{
		{
			name:  "simple",
			input: "2d6+3",
			want:  dice.Formula{Count: 2, Faces: 6, Modifier: 3},
		},
		{
			name:  "no modifier",
			input: "1d10",
			want:  dice.Formula{Count: 1, Faces: 10, Modifier: 0},
		},
		{
			name:  "negative modifier",
			input: "3d8-2",
			want:  dice.Formula{Count: 3, Faces: 8, Modifier: -2},
		},
		{
			name:  "uppercase and spaces",
			input: " 2D12 + 1 ",
			want:  dice.Formula{Count: 2, Faces: 12, Modifier: 1},
		},
		{
			name:  "garbage falls back",
			input: "garbage",
			want:  dice.Formula{Count: 1, Faces: 4, Modifier: 0},
		},
		{
			name:  "empty falls back",
			input: "",
			want:  dice.Formula{Count: 1, Faces: 4, Modifier: 0},
		},
		{
			name:  "zero count falls back",
			input: "0d6",
			want:  dice.Formula{Count: 1, Faces: 4, Modifier: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.ParseFormula(tt.input))
		})
	}
}

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			bonus:      0,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestMockRoller_RollD20_Advantage(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10, 15})

	result, err := roller.RollD20(dice.ModeAdvantage, 3)
	require.NoError(t, err)

	assert.Equal(t, 15, result.RawTotal, "advantage keeps the higher roll")
	assert.Equal(t, 18, result.Total)
	assert.Equal(t, []int{10, 15}, result.Rolls, "both rolls retained for display")
	assert.Equal(t, dice.ModeAdvantage, result.Mode)
}

func TestMockRoller_RollD20_Disadvantage(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{10, 15})

	result, err := roller.RollD20(dice.ModeDisadvantage, 3)
	require.NoError(t, err)

	assert.Equal(t, 10, result.RawTotal, "disadvantage keeps the lower roll")
	assert.Equal(t, 13, result.Total)
	assert.Equal(t, []int{10, 15}, result.Rolls)
	assert.Equal(t, dice.ModeDisadvantage, result.Mode)
}

func TestMockRoller_RollD20_CritAndFumble(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.SetRolls([]int{20, 1, 1, 1})

	result, err := roller.RollD20(dice.ModeNormal, 0)
	require.NoError(t, err)
	assert.True(t, result.IsCrit)

	result, err = roller.RollD20(dice.ModeNormal, 0)
	require.NoError(t, err)
	assert.True(t, result.IsFumble)

	// disadvantage selecting a 1 is still a fumble
	result, err = roller.RollD20(dice.ModeDisadvantage, 0)
	require.NoError(t, err)
	assert.True(t, result.IsFumble)
}

func TestRandomRoller_BasicFunctionality(t *testing.T) {
	// Verify bounds only; values are random
	roller := dice.NewRandomRoller()

	result, err := roller.Roll(2, 6, 3)
	require.NoError(t, err)
	assert.Len(t, result.Rolls, 2)
	assert.GreaterOrEqual(t, result.Total, 5) // minimum: 1+1+3
	assert.LessOrEqual(t, result.Total, 15)   // maximum: 6+6+3

	for _, mode := range []dice.Mode{dice.ModeNormal, dice.ModeAdvantage, dice.ModeDisadvantage} {
		result, err := roller.RollD20(mode, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 3) // minimum: 1+2
		assert.LessOrEqual(t, result.Total, 22)   // maximum: 20+2
		for _, roll := range result.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 20)
		}
		if mode != dice.ModeNormal {
			assert.Len(t, result.Rolls, 2, "advantage and disadvantage roll twice")
		}
	}
}

func TestRandomRoller_AdvantageSelectsMax(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 50; i++ {
		result, err := roller.RollD20(dice.ModeAdvantage, 0)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 2)

		expected := result.Rolls[0]
		if result.Rolls[1] > expected {
			expected = result.Rolls[1]
		}
		assert.Equal(t, expected, result.RawTotal)
	}
}

func TestRandomRoller_DisadvantageSelectsMin(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 50; i++ {
		result, err := roller.RollD20(dice.ModeDisadvantage, 0)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 2)

		expected := result.Rolls[0]
		if result.Rolls[1] < expected {
			expected = result.Rolls[1]
		}
		assert.Equal(t, expected, result.RawTotal)
	}
}

func TestRandomRoller_InvalidInput(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)

	_, err = roller.RollD20(dice.Mode("sideways"), 0)
	assert.Error(t, err)
}
