package services

import (
	"regexp"
	"sort"
	"strings"
)

// HobbyValidation is the outcome of validating free-text hobby input.
type HobbyValidation struct {
	IsValid         bool     `json:"isValid"`
	NormalizedHobby string   `json:"normalizedHobby,omitempty"`
	Category        string   `json:"category,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
	Unsafe          bool     `json:"unsafe,omitempty"`
	HasVideoSupport bool     `json:"hasVideoSupport"`
}

var hobbyCategories = map[string]string{
	"guitar":       "music",
	"piano":        "music",
	"violin":       "music",
	"ukulele":      "music",
	"drums":        "music",
	"singing":      "music",
	"painting":     "art",
	"drawing":      "art",
	"calligraphy":  "art",
	"origami":      "art",
	"pottery":      "art",
	"photography":  "art",
	"cooking":      "culinary",
	"baking":       "culinary",
	"chess":        "games",
	"gaming":       "games",
	"yoga":         "wellness",
	"meditation":   "wellness",
	"knitting":     "crafts",
	"crochet":      "crafts",
	"sewing":       "crafts",
	"embroidery":   "crafts",
	"woodworking":  "crafts",
	"gardening":    "outdoors",
	"fishing":      "outdoors",
	"hiking":       "outdoors",
	"camping":      "outdoors",
	"birdwatching": "outdoors",
	"cycling":      "fitness",
	"running":      "fitness",
	"swimming":     "fitness",
	"skateboarding": "fitness",
	"surfing":      "fitness",
	"climbing":     "fitness",
	"dancing":      "performance",
	"juggling":     "performance",
	"magic":        "performance",
	"coding":       "tech",
	"robotics":     "tech",
	"writing":      "writing",
	"journaling":   "writing",
}

var hobbySynonyms = map[string]string{
	"chef":        "cooking",
	"cook":        "cooking",
	"baker":       "baking",
	"sketch":      "drawing",
	"sketching":   "drawing",
	"photo":       "photography",
	"photos":      "photography",
	"code":        "coding",
	"programming": "coding",
	"program":     "coding",
	"garden":      "gardening",
	"plants":      "gardening",
	"bike":        "cycling",
	"biking":      "cycling",
	"jog":         "running",
	"jogging":     "running",
	"poetry":      "writing",
	"blogging":    "writing",
	"video games": "gaming",
	"videogames":  "gaming",
	"working out": "yoga",
	"meditate":    "meditation",
}

// bannedTerms short-circuits validation before any positive matching.
var bannedTerms = []string{
	"porn", "sex", "nude", "naked", "fetish", "erotic",
	"drug", "cocaine", "heroin", "meth", "weed", "cannabis", "opioid",
	"bomb", "weapon", "gun", "firearm", "explosive", "kill", "murder",
	"violence", "torture", "poison",
}

var greetingPhrases = map[string]struct{}{
	"hello":        {},
	"hi":           {},
	"hey":          {},
	"yo":           {},
	"sup":          {},
	"thanks":       {},
	"thank you":    {},
	"ok":           {},
	"okay":         {},
	"yes":          {},
	"no":           {},
	"help":         {},
	"test":         {},
	"bye":          {},
	"good morning": {},
	"good evening": {},
	"how are you":  {},
}

var safeHobbySuggestions = []string{
	"painting", "guitar", "cooking", "photography", "yoga", "gardening",
}

var popularHobbies = []string{
	"guitar", "cooking", "painting", "photography", "chess", "yoga",
}

var genericHobbyShape = regexp.MustCompile(`^[a-z]+(?:[ -][a-z]+)*$`)

// NormalizeHobby lowercases the input, drops every non-alphanumeric rune
// except spaces (hyphens become spaces), and collapses whitespace.
func NormalizeHobby(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ValidateHobby decides whether free-text input names a learnable hobby.
// It is a pure function over the static tables above.
func ValidateHobby(input string) HobbyValidation {
	normalized := NormalizeHobby(input)

	if containsBannedTerm(normalized) {
		return HobbyValidation{
			Unsafe:      true,
			Suggestions: append([]string(nil), safeHobbySuggestions...),
		}
	}

	if len(normalized) < 3 {
		return HobbyValidation{Suggestions: append([]string(nil), popularHobbies...)}
	}

	if _, ok := greetingPhrases[normalized]; ok {
		return HobbyValidation{Suggestions: append([]string(nil), popularHobbies...)}
	}

	if hobby, ok := matchKnownHobby(normalized); ok {
		return acceptedHobby(hobby)
	}

	if hobby, ok := fuzzyMatchHobby(normalized); ok {
		return acceptedHobby(hobby)
	}

	if looksArbitrary(normalized) {
		return HobbyValidation{Suggestions: rankedSuggestions(normalized, 4)}
	}

	// Unknown but plausibly a hobby name: accept without curated videos.
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if len(trimmed) >= 2 && len(trimmed) <= 30 && genericHobbyShape.MatchString(trimmed) {
		return HobbyValidation{
			IsValid:         true,
			NormalizedHobby: normalized,
			Category:        "general",
			HasVideoSupport: false,
		}
	}

	return HobbyValidation{Suggestions: rankedSuggestions(normalized, 4)}
}

func acceptedHobby(hobby string) HobbyValidation {
	return HobbyValidation{
		IsValid:         true,
		NormalizedHobby: hobby,
		Category:        hobbyCategories[hobby],
		HasVideoSupport: hasCuratedVideos(hobby),
	}
}

func containsBannedTerm(normalized string) bool {
	for _, term := range bannedTerms {
		for _, word := range strings.Fields(normalized) {
			if word == term || strings.HasPrefix(word, term) {
				return true
			}
		}
	}
	return false
}

func matchKnownHobby(normalized string) (string, bool) {
	if _, ok := hobbyCategories[normalized]; ok {
		return normalized, true
	}
	if canonical, ok := hobbySynonyms[normalized]; ok {
		return canonical, true
	}
	for hobby := range hobbyCategories {
		if len(normalized) >= 4 &&
			(strings.Contains(hobby, normalized) || strings.Contains(normalized, hobby)) {
			return hobby, true
		}
	}
	return "", false
}

// fuzzyMatchHobby accepts the closest known hobby when the edit distance is
// within a quarter of the candidate's length (rounded, minimum one edit).
// Distance ties break to the lexicographically smaller hobby so the match
// does not depend on map iteration order.
func fuzzyMatchHobby(normalized string) (string, bool) {
	best := ""
	bestDistance := -1
	for hobby := range hobbyCategories {
		distance := levenshtein(normalized, hobby)
		if bestDistance < 0 || distance < bestDistance ||
			(distance == bestDistance && hobby < best) {
			best = hobby
			bestDistance = distance
		}
	}
	if best == "" {
		return "", false
	}
	threshold := int(0.25*float64(len(best)) + 0.5)
	if threshold < 1 {
		threshold = 1
	}
	if bestDistance <= threshold {
		return best, true
	}
	return "", false
}

// looksArbitrary flags keyboard mash: repeated-character runs, digit noise,
// or words with no vowel at all.
func looksArbitrary(normalized string) bool {
	if hasRepeatedRun(normalized, 3) {
		return true
	}
	for _, word := range strings.Fields(normalized) {
		if strings.ContainsAny(word, "0123456789") {
			return true
		}
		if !strings.ContainsAny(word, "aeiouy") {
			return true
		}
	}
	return false
}

func hasRepeatedRun(s string, runLength int) bool {
	count := 1
	var previous rune
	for i, r := range s {
		if i > 0 && r == previous {
			count++
			if count >= runLength {
				return true
			}
		} else {
			count = 1
		}
		previous = r
	}
	return false
}

func rankedSuggestions(normalized string, limit int) []string {
	type candidate struct {
		hobby    string
		distance int
	}
	candidates := make([]candidate, 0, len(hobbyCategories))
	for hobby := range hobbyCategories {
		candidates = append(candidates, candidate{hobby: hobby, distance: levenshtein(normalized, hobby)})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance == candidates[j].distance {
			return candidates[i].hobby < candidates[j].hobby
		}
		return candidates[i].distance < candidates[j].distance
	})
	if limit > len(candidates) {
		limit = len(candidates)
	}
	suggestions := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		suggestions = append(suggestions, c.hobby)
	}
	return suggestions
}

func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	previous := make([]int, len(rb)+1)
	current := make([]int, len(rb)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			current[j] = min3(
				previous[j]+1,
				current[j-1]+1,
				previous[j-1]+cost,
			)
		}
		previous, current = current, previous
	}
	return previous[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
