package auspicious

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngusHsu/lunar-mcp-server/lunar"
)

var allAnimals = []string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

func TestAnimalCompatibility_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"Rat", "Dragon", CompatExcellent}, // trine partners
		{"Ox", "Snake", CompatExcellent},
		{"Rat", "Ox", CompatGood}, // six harmony
		{"Dragon", "Rooster", CompatGood},
		{"Rat", "Horse", CompatConflicting}, // direct opposition
		{"Tiger", "Monkey", CompatConflicting},
		{"Rat", "Goat", CompatChallenging}, // harm pair
		{"Rooster", "Dog", CompatChallenging},
		{"Rat", "Rabbit", CompatNeutral},
		{"Ox", "Dog", CompatNeutral},
	}
	for _, c := range cases {
		if got := AnimalCompatibility(c.a, c.b); got != c.want {
			t.Errorf("AnimalCompatibility(%s, %s) = %q, want %q", c.a, c.b, got, c.want)
		}
	}
}

func TestAnimalCompatibility_Symmetric(t *testing.T) {
	for _, a := range allAnimals {
		for _, b := range allAnimals {
			ab := AnimalCompatibility(a, b)
			ba := AnimalCompatibility(b, a)
			if ab != ba {
				t.Errorf("asymmetric: (%s,%s)=%q but (%s,%s)=%q", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestAnimalCompatibility_SameAnimal(t *testing.T) {
	// Every animal shares its own trine.
	for _, a := range allAnimals {
		if got := AnimalCompatibility(a, a); got != CompatExcellent {
			t.Errorf("AnimalCompatibility(%s, %s) = %q", a, a, got)
		}
	}
}

func TestCheckCompatibility(t *testing.T) {
	e := NewEngine()
	// Both dates fall in approximated Dragon and Rat lunar years.
	res, err := e.CheckCompatibility(lunar.MustDate("2024-06-01"), lunar.MustDate("2020-06-01"), lunar.Chinese)
	require.NoError(t, err)

	assert.Equal(t, "Dragon", res.Zodiac1)
	assert.Equal(t, "Rat", res.Zodiac2)
	assert.Equal(t, CompatExcellent, res.Level)
	assert.NotEmpty(t, res.Description)
	assert.NotEmpty(t, res.Recommendations)
	assert.NotEmpty(t, res.ElementRelationship.Type)
	assert.NotEmpty(t, res.ElementRelationship.Description)
}

func TestCheckCompatibility_Order(t *testing.T) {
	e := NewEngine()
	ab, err := e.CheckCompatibility(lunar.MustDate("2024-06-01"), lunar.MustDate("2020-06-01"), lunar.Chinese)
	require.NoError(t, err)
	ba, err := e.CheckCompatibility(lunar.MustDate("2020-06-01"), lunar.MustDate("2024-06-01"), lunar.Chinese)
	require.NoError(t, err)
	assert.Equal(t, ab.Level, ba.Level, "compatibility level must not depend on argument order")
}

func TestCheckCompatibility_UnknownCulture(t *testing.T) {
	e := NewEngine()
	_, err := e.CheckCompatibility(lunar.MustDate("2024-06-01"), lunar.MustDate("2020-06-01"), lunar.Culture("norse"))
	require.ErrorIs(t, err, lunar.ErrUnsupportedCulture)
}
