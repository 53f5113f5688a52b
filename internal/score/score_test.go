package score

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare integer", "85", 85},
		{"embedded", "I would give this answer 72 out of 100.", 72},
		{"decimal rounds", "Score: 66.7", 67},
		{"clamps high", "result: 142/100, great job", 100},
		{"clamps negative", "-5", 0},
		{"first token wins", "40 or maybe 90", 40},
		{"decimal half rounds up", "49.5", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNoScore(t *testing.T) {
	_, err := Parse("no number here")
	require.Error(t, err)

	var noScore *NoScoreError
	assert.True(t, errors.As(err, &noScore))
	assert.Contains(t, noScore.Raw, "no number here")
}

func TestNextPageID(t *testing.T) {
	assert.Equal(t, "L", NextPageID(40, "L", "H", 50))
	// The boundary is inclusive toward the high branch.
	assert.Equal(t, "H", NextPageID(50, "L", "H", 50))
	assert.Equal(t, "H", NextPageID(100, "L", "H", 50))

	// Zero threshold falls back to the default of 50.
	assert.Equal(t, "L", NextPageID(49, "L", "H", 0))
	assert.Equal(t, "H", NextPageID(50, "L", "H", 0))

	// Empty targets mean linear continuation.
	assert.Equal(t, "", NextPageID(10, "", "H", 50))
	assert.Equal(t, "", NextPageID(90, "L", "", 50))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandLow, BandFor(0))
	assert.Equal(t, BandLow, BandFor(29))
	assert.Equal(t, BandMid, BandFor(30))
	assert.Equal(t, BandMid, BandFor(59))
	assert.Equal(t, BandHigh, BandFor(60))
	assert.Equal(t, BandHigh, BandFor(100))
}

func TestBandBehavior(t *testing.T) {
	// The two lower bands are intentionally identical today.
	for _, b := range []Band{BandLow, BandMid} {
		assert.False(t, b.Passing())
		assert.True(t, b.ShowTip())
	}
	assert.True(t, BandHigh.Passing())
	assert.False(t, BandHigh.ShowTip())
}
