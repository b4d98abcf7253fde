package auspicious

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

func TestDailyFortune(t *testing.T) {
	e := NewEngine()
	f, err := e.DailyFortune(lunar.MustDate("2024-02-14"), lunar.Chinese)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-14", f.Date)
	assert.GreaterOrEqual(t, f.FortuneScore, 0.0)
	assert.LessOrEqual(t, f.FortuneScore, 10.0)
	assert.Equal(t, LevelFor(f.FortuneScore), f.FortuneLevel)
	assert.Len(t, f.LuckyColors, 3)
	assert.NotEmpty(t, f.LuckyDirections)
	assert.NotEmpty(t, f.Description)
	assert.NotEmpty(t, f.Advice)
	assert.GreaterOrEqual(t, f.LunarDay, 1)
	assert.LessOrEqual(t, f.LunarDay, 30)
}

func TestDailyFortune_LuckyNumbers(t *testing.T) {
	e := NewEngine()
	d := lunar.MustDate("2024-01-01")
	for i := 0; i < 60; i++ {
		f, err := e.DailyFortune(d, lunar.Chinese)
		require.NoError(t, err)
		require.NotEmpty(t, f.LuckyNumbers, "date %s", d)
		for j, n := range f.LuckyNumbers {
			assert.GreaterOrEqual(t, n, 1, "date %s", d)
			assert.LessOrEqual(t, n, 9, "date %s", d)
			if j > 0 {
				assert.Greater(t, n, f.LuckyNumbers[j-1], "numbers must be sorted and unique")
			}
		}
		d = d.AddDays(1)
	}
}

func TestDailyFortune_Deterministic(t *testing.T) {
	e := NewEngine()
	a, err := e.DailyFortune(lunar.MustDate("2024-09-09"), lunar.Chinese)
	require.NoError(t, err)
	b, err := e.DailyFortune(lunar.MustDate("2024-09-09"), lunar.Chinese)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDailyFortune_UnknownCulture(t *testing.T) {
	e := NewEngine()
	_, err := e.DailyFortune(lunar.MustDate("2024-02-14"), lunar.Culture("aztec"))
	require.ErrorIs(t, err, lunar.ErrUnsupportedCulture)
}

func TestDigitRoot(t *testing.T) {
	cases := map[int]int{1: 1, 9: 9, 10: 1, 19: 1, 27: 9, 30: 3, 0: 9, -3: 9}
	for in, want := range cases {
		if got := digitRoot(in); got != want {
			t.Errorf("digitRoot(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestStemBranchHarmony_InRange(t *testing.T) {
	e := NewEngine()
	d := lunar.MustDate("2024-01-01")
	for i := 0; i < 60; i++ { // one full sexagenary cycle
		f, err := e.DailyFortune(d, lunar.Chinese)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.FortuneScore, 0.0, "date %s", d)
		assert.LessOrEqual(t, f.FortuneScore, 10.0, "date %s", d)
		d = d.AddDays(1)
	}
}

func TestLuckyNumbers_ElementNumberIncluded(t *testing.T) {
	// The element's resonant number is always part of the set.
	nums := luckyNumbers(7, "Fire")
	found := false
	for _, n := range nums {
		if n == elementNumbers["Fire"] {
			found = true
		}
	}
	if !found {
		t.Fatalf("element number %d missing from %v", elementNumbers["Fire"], nums)
	}
}
