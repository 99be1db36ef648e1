// SPDX-License-Identifier: Unlicense OR MIT

package shaping

// fallbackFamilies is the hard-coded tail appended to the user's family
// list when fallback is enabled: one general-purpose sans-serif plus the
// color-emoji fonts shipped by the major platforms, in the order that gives
// the widest coverage across desktop and mobile.
var fallbackFamilies = []string{
	"ibm plex sans",
	"twitter color emoji",
	"noto color emoji",
	"apple color emoji",
	"segoe ui emoji",
}

// familyIterator walks a prioritized list of family names. It is backed by
// an indexed slice rather than a native iterator so that it is cheaply
// cloneable: the segment shaper clones the remaining families whenever it
// recurses into a fallback sub-segment, and sibling recursions must not
// observe each other's progress through the list.
type familyIterator struct {
	families []string
	pos      int
}

// newFamilyIterator builds the family iterator for styles: the user's
// FAMILY list, followed by fallbackFamilies when FALLBACK is enabled.
func newFamilyIterator(styles StyleChain) familyIterator {
	user := styles.Family()
	families := make([]string, 0, len(user)+len(fallbackFamilies))
	families = append(families, user...)
	if styles.Fallback() {
		families = append(families, fallbackFamilies...)
	}
	return familyIterator{families: families}
}

// clone returns an independent copy positioned at the same point in the
// list, so that a sub-recursion's consumption of families does not affect
// its caller or any sibling recursion.
func (it familyIterator) clone() familyIterator {
	return it
}

// next returns the next family name and advances the iterator, or reports
// that the list is exhausted.
func (it *familyIterator) next() (string, bool) {
	if it.pos >= len(it.families) {
		return "", false
	}
	family := it.families[it.pos]
	it.pos++
	return family, true
}
