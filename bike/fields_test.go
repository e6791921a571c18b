package bike_test

import (
	"testing"

	"github.com/fwojciec/adscout/bike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parserCase struct {
	name string
	text string
	want string
	ok   bool
}

func runParserCases(t *testing.T, parse func(string) (string, bool), cases []parserCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parse(tc.text)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFrameSize(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.FrameSize, []parserCase{
		{"centimeters", "Frame size is 54cm", "54cm", true},
		{"centimeters with space", "56 cm frame, ready to ride", "56cm", true},
		{"letter size before frame", "Size M frame", "M", true},
		{"letter size after colon", "size: XL", "XL", true},
		{"letter size suffix", "Fits riders 5'10, L frame", "L", true},
		{"word size", "medium frame in great shape", "M", true},
		{"whole inch with quote", `Hardtail with 19" frame`, `19"`, true},
		{"whole inch spelled out", "17 inch frame", `17"`, true},
		{"inch abbreviation before frame", "Selling a 21 in. frame", `21"`, true},
		{"inch abbreviation without frame", "Ships in 14 in a box", "", false},
		{"fractional inch rejected", "This is a 19.5 inch frame", "", false},
		{"wheel size is not a frame size", "20 inch wheels for a kid", "", false},
		{"empty text", "", "", false},
		{"no size", "Great bike, rides well", "", false},
	})
}

func TestFrameMaterial(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.FrameMaterial, []parserCase{
		{"carbon", "Full carbon fiber frame", "carbon", true},
		{"aluminium spelling", "Aluminium frame, carbon fork", "carbon", true},
		{"alloy", "Alloy frame", "aluminum", true},
		{"chromoly", "Classic chromoly tourer", "steel", true},
		{"titanium wins", "Titanium frame with carbon seatpost", "titanium", true},
		{"none", "Blue and white paint", "", false},
	})
}

func TestComponentGroup(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.ComponentGroup, []parserCase{
		{"ultegra", "Shimano Ultegra R8000 groupset", "Shimano Ultegra", true},
		{"dura-ace hyphenless", "Dura Ace Di2", "Shimano Dura-Ace", true},
		{"105 with brand", "shimano 105 11-speed", "Shimano 105", true},
		{"deore xt before deore", "Deore XT brakes", "Shimano XT", true},
		{"plain deore", "Deore 1x12", "Shimano Deore", true},
		{"sram force", "SRAM Force AXS", "SRAM Force", true},
		{"gx eagle", "GX Eagle drivetrain", "SRAM GX", true},
		{"super record before record", "Campagnolo Super Record", "Campagnolo Super Record", true},
		{"bare 105 is not a group", "Ridden 105 miles", "", false},
		{"none", "single speed", "", false},
	})
}

func TestWheelSize(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.WheelSize, []parserCase{
		{"700c", "700c wheels", "700c", true},
		{"650b", "650B wheelset", "650b", true},
		{"27.5", "27.5 trail bike", `27.5"`, true},
		{"29er", "Carbon 29er", `29"`, true},
		{"26 inch", `26" wheels`, `26"`, true},
		{"none", "road bike", "", false},
	})
}

func TestBikeType(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.BikeType, []parserCase{
		{"road", "Trek Domane road bike", "road", true},
		{"mountain", "Hardtail MTB", "mountain", true},
		{"gravel", "Gravel grinder", "gravel", true},
		{"electric", "Rad Power e-bike", "electric", true},
		{"bmx", "BMX for sale", "bmx", true},
		{"none", "Nice ride", "", false},
	})
}

func TestMotorcycleClass(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.MotorcycleClass, []parserCase{
		{"sport", "2015 Honda CBR600RR", "sport", true},
		{"cruiser", "Harley Softail", "cruiser", true},
		{"touring", "Harley Road Glide touring package", "touring", true},
		{"dirt", "Yamaha YZ250 dirt bike", "dirt", true},
		{"adventure", "BMW R 1250 GS adventure", "adventure", true},
		{"scooter", "Vespa scooter", "scooter", true},
		{"none", "Motorcycle for sale", "", false},
	})
}

func TestCondition(t *testing.T) {
	t.Parallel()

	runParserCases(t, bike.Condition, []parserCase{
		{"like new before new", "Like new, barely ridden", "like new", true},
		{"brand new", "Brand new in box", "new", true},
		{"excellent", "Excellent condition", "excellent", true},
		{"good", "In good shape overall", "good", true},
		{"parts", "Selling for parts", "for parts", true},
		{"none", "Rides great", "", false},
	})
}

func TestYear(t *testing.T) {
	t.Parallel()

	t.Run("parses model year", func(t *testing.T) {
		t.Parallel()

		year, ok := bike.Year("2019 Specialized Stumpjumper")

		require.True(t, ok)
		assert.Equal(t, 2019, year)
	})

	t.Run("ignores numbers outside the year range", func(t *testing.T) {
		t.Parallel()

		_, ok := bike.Year("Ridden 1200 miles, 54cm")

		assert.False(t, ok)
	})

	t.Run("ignores prices", func(t *testing.T) {
		t.Parallel()

		for _, text := range []string{
			"Trek Marlin 5, asking $1999",
			"$2000 obo",
			"Price: $ 1995 firm",
			"Selling for 1999.99",
			"Paid 12,2000 new",
		} {
			_, ok := bike.Year(text)
			assert.False(t, ok, text)
		}
	})

	t.Run("skips a price to find the model year", func(t *testing.T) {
		t.Parallel()

		year, ok := bike.Year("$1999 for my 2016 Giant Trance")

		require.True(t, ok)
		assert.Equal(t, 2016, year)
	})

	t.Run("year followed by a comma", func(t *testing.T) {
		t.Parallel()

		year, ok := bike.Year("Bought in 2018, ridden twice")

		require.True(t, ok)
		assert.Equal(t, 2018, year)
	})
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	t.Run("collects all matched fields", func(t *testing.T) {
		t.Parallel()

		text := "2020 Trek Domane SL6 road bike\nFrame size is 56cm. Carbon frame, Shimano Ultegra, 700c wheels. Excellent condition."

		f := bike.ParseFields(text)

		require.NotNil(t, f.Brand)
		assert.Equal(t, "Trek", *f.Brand)
		require.NotNil(t, f.Model)
		assert.Equal(t, "Domane SL6", *f.Model)
		require.NotNil(t, f.BikeType)
		assert.Equal(t, "road", *f.BikeType)
		require.NotNil(t, f.FrameSize)
		assert.Equal(t, "56cm", *f.FrameSize)
		require.NotNil(t, f.FrameMaterial)
		assert.Equal(t, "carbon", *f.FrameMaterial)
		require.NotNil(t, f.ComponentGroup)
		assert.Equal(t, "Shimano Ultegra", *f.ComponentGroup)
		require.NotNil(t, f.WheelSize)
		assert.Equal(t, "700c", *f.WheelSize)
		require.NotNil(t, f.Condition)
		assert.Equal(t, "excellent", *f.Condition)
		require.NotNil(t, f.Year)
		assert.Equal(t, 2020, *f.Year)
	})

	t.Run("leaves unmatched fields nil", func(t *testing.T) {
		t.Parallel()

		f := bike.ParseFields("")

		assert.Nil(t, f.Brand)
		assert.Nil(t, f.Model)
		assert.Nil(t, f.BikeType)
		assert.Nil(t, f.FrameSize)
		assert.Nil(t, f.FrameMaterial)
		assert.Nil(t, f.ComponentGroup)
		assert.Nil(t, f.WheelSize)
		assert.Nil(t, f.Condition)
		assert.Nil(t, f.Year)
	})

	t.Run("uses motorcycle class for motorcycle listings", func(t *testing.T) {
		t.Parallel()

		f := bike.ParseFields("2012 Harley-Davidson Softail Deluxe")

		require.NotNil(t, f.BikeType)
		assert.Equal(t, "cruiser", *f.BikeType)
		require.NotNil(t, f.Brand)
		assert.Equal(t, "Harley-Davidson", *f.Brand)
	})
}
