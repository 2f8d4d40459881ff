package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// ClosestName returns the candidate most similar to name under
// Jaro-Winkler, with its similarity score. Returns "" when candidates
// is empty.
func ClosestName(name string, candidates []string) (string, float64) {
	normalized := NormalizeName(name)

	best := ""
	var similarity float64
	for _, c := range candidates {
		sim := matchr.JaroWinkler(normalized, NormalizeName(c), false)
		if sim > similarity {
			similarity = sim
			best = c
		}
	}
	return best, similarity
}

// Ordinal renders n as an English ordinal: 1st, 2nd, 3rd, 4th...
// 11 through 13 (and 111, 212, ...) always take "th".
func Ordinal(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return strconv.Itoa(n) + "th"
	}
	switch n % 10 {
	case 1:
		return strconv.Itoa(n) + "st"
	case 2:
		return strconv.Itoa(n) + "nd"
	case 3:
		return strconv.Itoa(n) + "rd"
	}
	return strconv.Itoa(n) + "th"
}
