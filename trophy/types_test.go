package trophy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrophyType(t *testing.T) {
	tests := []struct {
		in   string
		want TrophyType
	}{
		{"P", Platinum},
		{"gold", Gold},
		{" s ", Silver},
		{"4", Bronze},
		{"Bronze", Bronze},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrophyType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTrophyType("copper")
	assert.Error(t, err)
}

func TestTrophyTypePoints(t *testing.T) {
	assert.Equal(t, 180, Platinum.Points())
	assert.Equal(t, 90, Gold.Points())
	assert.Equal(t, 30, Silver.Points())
	assert.Equal(t, 15, Bronze.Points())
	assert.Zero(t, TrophyType(9).Points())
	assert.Equal(t, "TrophyType(9)", TrophyType(9).String())
}
