package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Difficulty
		wantErr bool
	}{
		{"beginner", Beginner, false},
		{"intermediate", Intermediate, false},
		{"expert", Expert, false},
		{"no mines", Difficulty{Rows: 1, Cols: 1, Mines: 0}, false},
		{"almost saturated", Difficulty{Rows: 2, Cols: 2, Mines: 3}, false},
		{"zero rows", Difficulty{Rows: 0, Cols: 5, Mines: 1}, true},
		{"negative cols", Difficulty{Rows: 5, Cols: -1, Mines: 1}, true},
		{"negative mines", Difficulty{Rows: 5, Cols: 5, Mines: -1}, true},
		{"saturated", Difficulty{Rows: 3, Cols: 3, Mines: 9}, true},
		{"over saturated", Difficulty{Rows: 3, Cols: 3, Mines: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPresetByName(t *testing.T) {
	d, err := PresetByName("expert")
	require.NoError(t, err)
	assert.Equal(t, Expert, d)

	_, err = PresetByName("nightmare")
	assert.Error(t, err)
}

func TestDifficultyString(t *testing.T) {
	assert.Equal(t, "16x30/99", Expert.String())
}
