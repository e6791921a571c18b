package bike_test

import (
	"testing"

	"github.com/fwojciec/adscout"
	"github.com/fwojciec/adscout/bike"
	"github.com/stretchr/testify/assert"
)

func TestMatchesKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bike keyword", "Road bike for sale", true},
		{"bicycle brand", "Specialized Allez", true},
		{"multi-word brand", "Santa Cruz Hightower", true},
		{"component brand", "Shimano wheelset", true},
		{"motorcycle keyword", "Honda motorcycle", true},
		{"engine size", "Runs great, 650cc", true},
		{"ambiguous brand alone", "Giant teddy bear", false},
		{"cooler sharing a brand name", "Yeti Tundra 45 cooler", false},
		{"camera sharing a brand name", "Fuji X-T3 camera body", false},
		{"food sharing a brand name", "Mango salsa jars", false},
		{"city sharing a brand name", "Dresser, pickup in Raleigh", false},
		{"county sharing a brand name", "Patio set, Marin county", false},
		{"shared name with bike keyword", "Yeti SB130 mountain bike", true},
		{"unrelated", "Leather sofa, barely used", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bike.MatchesKeywords(tt.text))
		})
	}
}

func TestCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, adscout.CategoryBicycle, bike.Category("Trek Marlin 7 mountain bike"))
	assert.Equal(t, adscout.CategoryMotorcycle, bike.Category("Kawasaki Ninja 400"))
	assert.Equal(t, adscout.CategoryMotorcycle, bike.Category("Dirt bike, 125cc"))
	assert.Equal(t, adscout.CategoryBicycle, bike.Category(""))
}

func TestBrand(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.Brand, []parserCase{
		{"single word", "Cannondale CAAD12 105", "Cannondale", true},
		{"case insensitive", "selling my TREK fx 3", "Trek", true},
		{"multi word", "Rocky Mountain Element", "Rocky Mountain", true},
		{"earliest mention wins", "Giant frame with Specialized wheels", "Giant", true},
		{"motorcycle", "Ducati Monster 821", "Ducati", true},
		{"none", "Vintage road bike", "", false},
	})
}

func TestModel(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.Model, []parserCase{
		{"two tokens", "Trek Domane SL6 road bike", "Domane SL6", true},
		{"stops at stop word", "Specialized Allez road bike", "Allez", true},
		{"stops at lower-case second word", "Cannondale Synapse great shape", "Synapse", true},
		{"stops at punctuation", "Yeti SB130, size L", "SB130", true},
		{"no model after brand", "Trek bike", "", false},
		{"no brand", "Road bike", "", false},
	})
}
