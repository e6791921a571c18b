package bike

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/adscout"
)

// brand is a known manufacturer. Ambiguous brands share their name with
// common words, places, car makers or other product lines. They are
// reported by Brand but do not on their own mark text as a bike listing.
type brand struct {
	name       string
	re         *regexp.Regexp
	motorcycle bool
	ambiguous  bool
}

func newBrand(name, expr string, motorcycle, ambiguous bool) brand {
	return brand{
		name:       name,
		re:         regexp.MustCompile(`(?i)\b(?:` + expr + `)\b`),
		motorcycle: motorcycle,
		ambiguous:  ambiguous,
	}
}

// brands is ordered so multi-word names are tried before their prefixes.
var brands = []brand{
	newBrand("Santa Cruz", `santa\s+cruz`, false, false),
	newBrand("Rocky Mountain", `rocky\s+mountain`, false, false),
	newBrand("All-City", `all[\s-]city`, false, false),
	newBrand("Harley-Davidson", `harley[\s-]davidson|harley`, true, false),
	newBrand("Royal Enfield", `royal\s+enfield`, true, false),
	newBrand("Moto Guzzi", `moto\s+guzzi`, true, false),
	newBrand("MV Agusta", `mv\s+agusta`, true, false),
	newBrand("Trek", `trek`, false, false),
	newBrand("Specialized", `specialized`, false, false),
	newBrand("Cannondale", `cannondale`, false, false),
	newBrand("Cervelo", `cerv[eé]lo`, false, false),
	newBrand("Bianchi", `bianchi`, false, false),
	newBrand("Pinarello", `pinarello`, false, false),
	newBrand("Colnago", `colnago`, false, false),
	newBrand("Yeti", `yeti`, false, true),
	newBrand("Kona", `kona`, false, true),
	newBrand("Surly", `surly`, false, false),
	newBrand("Salsa", `salsa`, false, true),
	newBrand("Fuji", `fuji`, false, true),
	newBrand("Diamondback", `diamondback`, false, false),
	newBrand("Orbea", `orbea`, false, false),
	newBrand("Ibis", `ibis`, false, false),
	newBrand("Pivot", `pivot`, false, true),
	newBrand("Norco", `norco`, false, true),
	newBrand("Marin", `marin`, false, true),
	newBrand("Schwinn", `schwinn`, false, false),
	newBrand("Raleigh", `raleigh`, false, true),
	newBrand("Litespeed", `litespeed`, false, false),
	newBrand("Niner", `niner`, false, false),
	newBrand("Commencal", `commencal`, false, false),
	newBrand("BMC", `bmc`, false, false),
	newBrand("Merida", `merida`, false, false),
	newBrand("Ridley", `ridley`, false, false),
	newBrand("Brompton", `brompton`, false, false),
	newBrand("Giant", `giant`, false, true),
	newBrand("Scott", `scott`, false, true),
	newBrand("Canyon", `canyon`, false, true),
	newBrand("Felt", `felt`, false, true),
	newBrand("Cube", `cube`, false, true),
	newBrand("Evil", `evil`, false, true),
	newBrand("Transition", `transition`, false, true),
	newBrand("GT", `gt`, false, true),
	newBrand("Ducati", `ducati`, true, false),
	newBrand("Kawasaki", `kawasaki`, true, false),
	newBrand("Yamaha", `yamaha`, true, false),
	newBrand("KTM", `ktm`, true, false),
	newBrand("Aprilia", `aprilia`, true, false),
	newBrand("Husqvarna", `husqvarna`, true, false),
	newBrand("Buell", `buell`, true, false),
	newBrand("Honda", `honda`, true, true),
	newBrand("Suzuki", `suzuki`, true, true),
	newBrand("BMW", `bmw`, true, true),
	newBrand("Triumph", `triumph`, true, true),
	newBrand("Indian", `indian`, true, true),
}

var (
	bikeKeywords = regexp.MustCompile(`(?i)\b(?:bikes?|bicycles?|cycling|mtb|road\s+bike|mountain\s+bike|gravel\s+bike|cyclocross|bmx|fixie|e-?bikes?|frameset|derailleurs?|shimano|sram|campagnolo|hardtail|groupset)\b`)
	motoKeywords = regexp.MustCompile(`(?i)\b(?:motorcycles?|motorbikes?|dirt\s?bikes?|sport\s?bikes?|scooters?|mopeds?|\d{2,4}\s?cc)\b`)
)

// MatchesKeywords reports whether text mentions a bike keyword or an
// unambiguous bicycle or motorcycle brand.
func MatchesKeywords(text string) bool {
	if text == "" {
		return false
	}
	if bikeKeywords.MatchString(text) || motoKeywords.MatchString(text) {
		return true
	}
	for _, b := range brands {
		if !b.ambiguous && b.re.MatchString(text) {
			return true
		}
	}
	return false
}

// Category classifies text as a motorcycle or bicycle listing. Text
// without motorcycle signals is treated as a bicycle listing.
func Category(text string) string {
	if motoKeywords.MatchString(text) {
		return adscout.CategoryMotorcycle
	}
	if b, ok := findBrand(text); ok && b.motorcycle {
		return adscout.CategoryMotorcycle
	}
	return adscout.CategoryBicycle
}

// Brand parses the manufacturer name, e.g. "Santa Cruz".
func Brand(text string) (string, bool) {
	b, ok := findBrand(text)
	if !ok {
		return "", false
	}
	return b.name, true
}

// findBrand returns the brand whose name appears earliest in text.
func findBrand(text string) (brand, bool) {
	var found brand
	best := -1
	for _, b := range brands {
		loc := b.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			found = b
		}
	}
	return found, best != -1
}

// modelStopWords end a model name.
var modelStopWords = map[string]bool{
	"bike": true, "bicycle": true, "bikes": true, "for": true, "with": true,
	"size": true, "frame": true, "road": true, "mountain": true, "gravel": true,
	"in": true, "and": true, "w": true, "obo": true, "motorcycle": true,
	"excellent": true, "great": true, "good": true, "new": true, "used": true,
}

// Model parses up to two tokens following the brand name, e.g.
// "Domane SL6" in "Trek Domane SL6 road bike". The second token is only
// taken when it contains a digit or starts with an upper-case letter.
func Model(text string) (string, bool) {
	b, ok := findBrand(text)
	if !ok {
		return "", false
	}
	loc := b.re.FindStringIndex(text)
	fields := strings.Fields(text[loc[1]:])

	var parts []string
	for _, field := range fields {
		if len(parts) == 2 {
			break
		}
		token := strings.Trim(field, ",;:()[]!?\"'")
		if !isModelToken(token) || modelStopWords[strings.ToLower(token)] {
			break
		}
		if len(parts) == 1 && !hasDigit(token) && !unicode.IsUpper([]rune(token)[0]) {
			break
		}
		parts = append(parts, token)
		if token != field && strings.ContainsAny(field[len(field)-1:], ",;:!?)") {
			break
		}
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// isModelToken reports whether s looks like part of a model name.
func isModelToken(s string) bool {
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) < 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '.' && r != '+' {
			return false
		}
	}
	return true
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
