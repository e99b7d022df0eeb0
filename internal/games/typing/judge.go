package typing

import (
	"golang.org/x/text/cases"
)

// Judge decides per-character and whole-word correctness against a target
// word. Comparison is case-insensitive.
type Judge struct {
	target []rune
	folded []string
	caser  cases.Caser
}

// NewJudge creates a judge for the given target word.
func NewJudge(target string) Judge {
	j := Judge{
		target: []rune(target),
		caser:  cases.Fold(),
	}
	j.folded = make([]string, len(j.target))
	for i, r := range j.target {
		j.folded[i] = j.fold(r)
	}
	return j
}

func (j Judge) fold(r rune) string {
	return j.caser.String(string(r))
}

// Target returns the word being judged.
func (j Judge) Target() string {
	return string(j.target)
}

// Len returns the number of characters in the target.
func (j Judge) Len() int {
	return len(j.target)
}

// MatchesChar reports whether r equals the target character at index.
// Out-of-range indexes never match.
func (j Judge) MatchesChar(index int, r rune) bool {
	if index < 0 || index >= len(j.target) {
		return false
	}
	return j.folded[index] == j.fold(r)
}

// IsWordComplete reports whether entered fills every position and each
// position matches.
func (j Judge) IsWordComplete(entered []rune) bool {
	if len(j.target) == 0 || len(entered) != len(j.target) {
		return false
	}
	for i, r := range entered {
		if !j.MatchesChar(i, r) {
			return false
		}
	}
	return true
}
