// Package bike classifies listing text and parses structured bicycle and
// motorcycle attributes from it using fixed pattern tables.
//
// Every parser takes free text (usually title plus description), which may
// be empty, and returns a canonical token and true on a match, or "" and
// false when no pattern in its table matches. Parsers never guess beyond
// their tables.
package bike

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/adscout"
)

// pattern maps a regular expression to the canonical token it produces.
type pattern struct {
	re    *regexp.Regexp
	token string
}

// firstToken returns the token of the first pattern that matches text.
func firstToken(patterns []pattern, text string) (string, bool) {
	for _, p := range patterns {
		if p.re.MatchString(text) {
			return p.token, true
		}
	}
	return "", false
}

var (
	frameSizeCM     = regexp.MustCompile(`(?i)\b(\d{2})\s?cm\b`)
	frameSizeLetter = regexp.MustCompile(`(?i)\bsize[:\s]+(XXS|XS|S|M|L|XL|XXL)\b`)
	frameSizeSuffix = regexp.MustCompile(`(?i)\b(XXS|XS|S|M|L|XL|XXL)\s+(?:frame|size)\b`)
	frameSizeWord   = regexp.MustCompile(`(?i)\b(extra[\s-]large|x-large|small|medium|large)\s+frame\b`)
	frameSizeInch   = regexp.MustCompile(`(?i)\b(1[3-9]|2[0-3])\s?(?:"|”|''|-?inch(?:es)?\b|in\.?\s+frame\b)`)
)

var sizeWords = map[string]string{
	"small":       "S",
	"medium":      "M",
	"large":       "L",
	"x-large":     "XL",
	"extra large": "XL",
	"extra-large": "XL",
}

// FrameSize parses a frame size such as "54cm", "M" or `19"`.
// Fractional inch sizes such as "19.5 inch" are not standard frame sizes
// and are rejected.
func FrameSize(text string) (string, bool) {
	if m := frameSizeCM.FindStringSubmatch(text); m != nil {
		return m[1] + "cm", true
	}
	if m := frameSizeLetter.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := frameSizeSuffix.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := frameSizeWord.FindStringSubmatch(text); m != nil {
		return sizeWords[strings.ToLower(m[1])], true
	}
	for _, loc := range frameSizeInch.FindAllStringSubmatchIndex(text, -1) {
		start := loc[0]
		if start > 0 && (text[start-1] == '.' || text[start-1] == ',') {
			continue
		}
		rest := strings.ToLower(strings.TrimSpace(text[loc[1]:]))
		if strings.HasPrefix(rest, "wheel") || strings.HasPrefix(rest, "tire") {
			continue
		}
		return text[loc[2]:loc[3]] + `"`, true
	}
	return "", false
}

var frameMaterials = []pattern{
	{regexp.MustCompile(`(?i)\btitanium\b`), "titanium"},
	{regexp.MustCompile(`(?i)\bcarbon(?:\s+fib(?:er|re))?\b`), "carbon"},
	{regexp.MustCompile(`(?i)\b(?:aluminum|aluminium|alloy)\b`), "aluminum"},
	{regexp.MustCompile(`(?i)\b(?:steel|chromoly|cromoly|cro-?mo|4130|reynolds\s+\d{3})\b`), "steel"},
}

// FrameMaterial parses the frame material: titanium, carbon, aluminum or steel.
func FrameMaterial(text string) (string, bool) {
	return firstToken(frameMaterials, text)
}

// componentGroups is ordered so that more specific names win, e.g.
// "Deore XT" before "Deore" and "Super Record" before "Record".
var componentGroups = []pattern{
	{regexp.MustCompile(`(?i)\bdura[\s-]?ace\b`), "Shimano Dura-Ace"},
	{regexp.MustCompile(`(?i)\bultegra\b`), "Shimano Ultegra"},
	{regexp.MustCompile(`(?i)\bshimano\s+105\b|\b105\s+(?:groupset|group|components|drivetrain)\b`), "Shimano 105"},
	{regexp.MustCompile(`(?i)\btiagra\b`), "Shimano Tiagra"},
	{regexp.MustCompile(`(?i)\bsora\b`), "Shimano Sora"},
	{regexp.MustCompile(`(?i)\bclaris\b`), "Shimano Claris"},
	{regexp.MustCompile(`(?i)\bgrx\b`), "Shimano GRX"},
	{regexp.MustCompile(`(?i)\bxtr\b`), "Shimano XTR"},
	{regexp.MustCompile(`(?i)\bdeore\s+xt\b`), "Shimano XT"},
	{regexp.MustCompile(`(?i)\bslx\b`), "Shimano SLX"},
	{regexp.MustCompile(`(?i)\bdeore\b`), "Shimano Deore"},
	{regexp.MustCompile(`(?i)\bshimano\s+xt\b|\bxt\s+(?:groupset|group|drivetrain|brakes)\b`), "Shimano XT"},
	{regexp.MustCompile(`(?i)\bsram\s+red\b`), "SRAM Red"},
	{regexp.MustCompile(`(?i)\bsram\s+force\b`), "SRAM Force"},
	{regexp.MustCompile(`(?i)\bsram\s+rival\b`), "SRAM Rival"},
	{regexp.MustCompile(`(?i)\bsram\s+apex\b`), "SRAM Apex"},
	{regexp.MustCompile(`(?i)\bxx1\b`), "SRAM XX1"},
	{regexp.MustCompile(`(?i)\bx01\b`), "SRAM X01"},
	{regexp.MustCompile(`(?i)\bgx\s+eagle\b|\bsram\s+gx\b`), "SRAM GX"},
	{regexp.MustCompile(`(?i)\bnx\s+eagle\b|\bsram\s+nx\b`), "SRAM NX"},
	{regexp.MustCompile(`(?i)\bsuper\s+record\b`), "Campagnolo Super Record"},
	{regexp.MustCompile(`(?i)\bcampagnolo\s+record\b`), "Campagnolo Record"},
	{regexp.MustCompile(`(?i)\bchorus\b`), "Campagnolo Chorus"},
	{regexp.MustCompile(`(?i)\bpotenza\b`), "Campagnolo Potenza"},
	{regexp.MustCompile(`(?i)\bcentaur\b`), "Campagnolo Centaur"},
}

// ComponentGroup parses the drivetrain group, e.g. "Shimano Ultegra".
func ComponentGroup(text string) (string, bool) {
	return firstToken(componentGroups, text)
}

var wheelSizes = []pattern{
	{regexp.MustCompile(`(?i)\b700\s?c\b`), "700c"},
	{regexp.MustCompile(`(?i)\b650\s?b\b`), "650b"},
	{regexp.MustCompile(`\b27\.5\b`), `27.5"`},
	{regexp.MustCompile(`(?i)\b29er\b|\b29\s?(?:"|”|-?inch|in\b)|\b29\s+wheels?\b`), `29"`},
	{regexp.MustCompile(`(?i)\b26\s?(?:"|”|-?inch|in\b)|\b26\s+wheels?\b`), `26"`},
	{regexp.MustCompile(`(?i)\b24\s?(?:"|”|-?inch|in\b)\s*wheels?\b`), `24"`},
	{regexp.MustCompile(`(?i)\b20\s?(?:"|”|-?inch|in\b)\s*wheels?\b`), `20"`},
}

// WheelSize parses the wheel size, e.g. "700c", "650b" or `29"`.
func WheelSize(text string) (string, bool) {
	return firstToken(wheelSizes, text)
}

var bikeTypes = []pattern{
	{regexp.MustCompile(`(?i)\be-?bike\b|\belectric\s+(?:bike|bicycle)\b|\bpedelec\b`), "electric"},
	{regexp.MustCompile(`(?i)\bgravel\b`), "gravel"},
	{regexp.MustCompile(`(?i)\bcyclocross\b|\bcyclo-cross\b`), "cyclocross"},
	{regexp.MustCompile(`(?i)\bmountain\s+bike\b|\bmtb\b|\bhardtail\b|\bfull[\s-]suspension\b|\bdownhill\b|\btrail\s+bike\b`), "mountain"},
	{regexp.MustCompile(`(?i)\btriathlon\b|\btime\s+trial\b`), "triathlon"},
	{regexp.MustCompile(`(?i)\broad\s+(?:bike|bicycle)\b|\bracing\s+bike\b`), "road"},
	{regexp.MustCompile(`(?i)\bbmx\b`), "bmx"},
	{regexp.MustCompile(`(?i)\bfixie\b|\bfixed\s+gear\b|\bsingle\s?speed\b|\btrack\s+bike\b`), "fixed"},
	{regexp.MustCompile(`(?i)\bhybrid\b|\bcommuter\b`), "hybrid"},
	{regexp.MustCompile(`(?i)\btouring\s+(?:bike|bicycle)\b`), "touring"},
	{regexp.MustCompile(`(?i)\bfolding\b|\bfolder\b`), "folding"},
	{regexp.MustCompile(`(?i)\bbeach\s+cruiser\b|\bcruiser\s+(?:bike|bicycle)\b`), "cruiser"},
	{regexp.MustCompile(`(?i)\bkids?\b|\bchild(?:ren)?'?s?\b|\byouth\b`), "kids"},
}

// BikeType parses the bicycle type, e.g. "road", "mountain" or "gravel".
func BikeType(text string) (string, bool) {
	return firstToken(bikeTypes, text)
}

var motorcycleClasses = []pattern{
	{regexp.MustCompile(`(?i)\bscooter\b|\bvespa\b|\bmoped\b`), "scooter"},
	{regexp.MustCompile(`(?i)\bdirt\s?bike\b|\bmotocross\b|\bcrf\d*|\byz\d+|\bkx\d+|\bpit\s?bike\b`), "dirt"},
	{regexp.MustCompile(`(?i)\badventure\b|\bdual[\s-]sport\b|\bafrica\s+twin\b|\bt[eé]n[eé]r[eé]\b|\b\d{3,4}\s?gs\b`), "adventure"},
	{regexp.MustCompile(`(?i)\btouring\b|\bbagger\b|\bgold\s?wing\b|\b(?:road|street|electra)\s+glide\b`), "touring"},
	{regexp.MustCompile(`(?i)\bcruiser\b|\bsoftail\b|\bbobber\b|\bchopper\b|\bsportster\b`), "cruiser"},
	{regexp.MustCompile(`(?i)\bsport\s?bike\b|\bsupersport\b|\bcbr\d*|\bninja\b|\bgsx-?r\d*|\bpanigale\b|\byzf-?r\d\b`), "sport"},
	{regexp.MustCompile(`(?i)\bnaked\b|\bstandard\b|\broadster\b|\bstreetfighter\b`), "standard"},
}

// MotorcycleClass parses the motorcycle category, e.g. "sport" or "cruiser".
func MotorcycleClass(text string) (string, bool) {
	return firstToken(motorcycleClasses, text)
}

var conditions = []pattern{
	{regexp.MustCompile(`(?i)\bfor\s+parts\b|\bparts\s+only\b|\bnot\s+running\b`), "for parts"},
	{regexp.MustCompile(`(?i)\blike[\s-]new\b|\bmint\b|\bbarely\s+(?:used|ridden)\b`), "like new"},
	{regexp.MustCompile(`(?i)\bbrand[\s-]new\b|\bnew\s+in\s+box\b|\bnever\s+ridden\b|\bbnib\b|\bnwt\b`), "new"},
	{regexp.MustCompile(`(?i)\bexcellent\b`), "excellent"},
	{regexp.MustCompile(`(?i)\b(?:very\s+)?good\s+(?:condition|shape)\b`), "good"},
	{regexp.MustCompile(`(?i)\bfair\s+(?:condition|shape)\b`), "fair"},
	{regexp.MustCompile(`(?i)\bpoor\s+(?:condition|shape)\b|\bneeds\s+(?:some\s+)?work\b`), "poor"},
}

// Condition parses the item condition, e.g. "like new" or "good".
func Condition(text string) (string, bool) {
	return firstToken(conditions, text)
}

var yearPattern = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)

// Year parses a model year between 1950 and 2049. Numbers that read as
// prices or amounts, such as "$1999", "1,2000" or "2000.50", are skipped.
func Year(text string) (int, bool) {
	for _, loc := range yearPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if isAmount(text, start, end) {
			continue
		}
		year, err := strconv.Atoi(text[start:end])
		if err != nil {
			continue
		}
		return year, true
	}
	return 0, false
}

// isAmount reports whether the digits at text[start:end] are part of a
// price or a larger number rather than a standalone year.
func isAmount(text string, start, end int) bool {
	before := strings.TrimRight(text[:start], " ")
	if strings.HasSuffix(before, "$") || strings.HasSuffix(text[:start], ",") {
		return true
	}
	rest := text[end:]
	if len(rest) >= 2 && (rest[0] == ',' || rest[0] == '.') && rest[1] >= '0' && rest[1] <= '9' {
		return true
	}
	return false
}

// ParseFields runs every parser over text and collects the results.
// The type field holds a bicycle type for bicycle listings and a
// motorcycle class for motorcycle listings.
func ParseFields(text string) adscout.BikeFields {
	var f adscout.BikeFields

	typeParser := BikeType
	if Category(text) == adscout.CategoryMotorcycle {
		typeParser = MotorcycleClass
	}

	f.BikeType = ptr(typeParser(text))
	f.FrameSize = ptr(FrameSize(text))
	f.FrameMaterial = ptr(FrameMaterial(text))
	f.ComponentGroup = ptr(ComponentGroup(text))
	f.WheelSize = ptr(WheelSize(text))
	f.Brand = ptr(Brand(text))
	f.Model = ptr(Model(text))
	f.Condition = ptr(Condition(text))
	if year, ok := Year(text); ok {
		f.Year = &year
	}

	return f
}

// ptr converts a parser result into a nullable field.
func ptr(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
