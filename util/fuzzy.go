package util

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SuggestDivisor sets how lenient Suggest is: a candidate is accepted when
// its distance is at most len(input)/SuggestDivisor characters.
const SuggestDivisor = 5

// EditDistance computes the Levenshtein distance between a and b over
// runes: the minimum number of single-character insertions, deletions
// and substitutions that turn a into b.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Two rows of the distance matrix: previous is dp[i-1], current is dp[i].
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
			current[j] = min(previous[j-1]+cost, previous[j]+1, current[j-1]+1)
		}
		previous, current = current, previous
	}

	return previous[len(rb)]
}

// matchDistance is EditDistance, except that a candidate beginning with
// input scores 0.
func matchDistance(input, candidate string) int {
	if strings.HasPrefix(candidate, input) {
		return 0
	}
	return EditDistance(input, candidate)
}

// Suggest returns the candidate closest to input, or false if none is
// close enough. Ties go to the earliest candidate.
func Suggest(input string, candidates []string) (string, bool) {
	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		distance := matchDistance(input, candidate)
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	if bestDistance < 0 || bestDistance > utf8.RuneCountInString(input)/SuggestDivisor {
		return "", false
	}
	return best, true
}

// SuggestPath suggests an existing path for a mistyped one by comparing
// its final element with the entries of its parent directory. The parent
// must exist. The result keeps the parent exactly as it was typed, so
// "./dat" may become "./data.bin".
func SuggestPath(input string) (string, bool) {
	dir, file := filepath.Split(input)
	if file == "" {
		return "", false
	}
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	name, ok := Suggest(file, names)
	if !ok {
		return "", false
	}
	return dir + name, true
}
