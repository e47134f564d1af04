package textutil

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var separatorReplacer = strings.NewReplacer(
	"-", "",
	"_", "",
)

// NormalizeName reduces a filename to a comparable token: NFKC form,
// lowercased, extension removed, hyphens and underscores stripped.
func NormalizeName(name string) string {
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" {
		return ""
	}
	name = norm.NFKC.String(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	return separatorReplacer.Replace(name)
}

// AlignedRatio returns the fraction of position-aligned equal bytes over the
// length of the longer string. Returns 0 when either string is empty.
func AlignedRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	matched := 0
	for i := 0; i < shorter; i++ {
		if a[i] == b[i] {
			matched++
		}
	}
	return float64(matched) / float64(longer)
}

// NamesSimilar reports whether two filenames look like variants of the same
// document. After normalization, containment counts as a match; otherwise the
// names must be within lengthSlack bytes of each other and their aligned
// character ratio must exceed matchRatio. The heuristic is intentionally
// loose: short names can collide and reworded titles can slip through, which
// is acceptable for human-reviewed suggestions.
func NamesSimilar(a, b string, lengthSlack int, matchRatio float64) bool {
	na := NormalizeName(a)
	nb := NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	diff := len(na) - len(nb)
	if diff < 0 {
		diff = -diff
	}
	if diff > lengthSlack {
		return false
	}
	return AlignedRatio(na, nb) > matchRatio
}
