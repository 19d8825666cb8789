package browser

import (
	"fmt"
	"strings"
)

// Feature identifies one discrete behavioral difference between browsers.
// The set of features a BrowserVersion carries is resolved once, when the
// version is constructed, and is frozen afterwards.
type Feature string

// Family identifies a browser product line.
type Family string

const (
	FamilyChrome           Family = "Chrome"
	FamilyFirefox          Family = "Firefox"
	FamilyInternetExplorer Family = "InternetExplorer"
)

// Compat describes one browser a feature applies to: a family, optionally
// pinned to an exact major version. Version 0 means "any version of the
// family".
type Compat struct {
	Family  Family
	Version int
}

// anyVersion marks a Compat that applies to a whole family.
const anyVersion = 0

// identity is the classified form of a browser version used during feature
// resolution: the family derived from the nickname prefix plus the numeric
// version.
type identity struct {
	family  Family
	version int
}

// classify maps a nickname/version pair onto a family. Classification is
// total: nicknames that match no known prefix get Internet Explorer
// semantics, the most restrictive feature surface.
func classify(nickname string, version int) identity {
	switch {
	case strings.HasPrefix(nickname, "Chrome"):
		return identity{family: FamilyChrome, version: version}
	case strings.HasPrefix(nickname, "FF"):
		return identity{family: FamilyFirefox, version: version}
	default:
		return identity{family: FamilyInternetExplorer, version: version}
	}
}

// matches reports whether the descriptor applies to the given identity.
func (c Compat) matches(id identity) bool {
	if c.Family != id.family {
		return false
	}
	return c.Version == anyVersion || c.Version == id.version
}

// resolveFeatures computes the feature set for a browser identity from the
// compatibility table. Pure: same identity in, same set out, regardless of
// map iteration order.
func resolveFeatures(nickname string, version int) map[Feature]struct{} {
	id := classify(nickname, version)
	features := make(map[Feature]struct{})
	for feature, compats := range featureTable {
		for _, c := range compats {
			if c.matches(id) {
				features[feature] = struct{}{}
				break
			}
		}
	}
	return features
}

// validateFeatureTable rejects descriptors naming an unknown family. A bad
// entry is a build-time mistake in the table itself, so this fails loudly
// during package init instead of silently dropping the feature.
func validateFeatureTable() {
	for feature, compats := range featureTable {
		if len(compats) == 0 {
			panic(fmt.Sprintf("browser: feature %s has no compatibility entries", feature))
		}
		for _, c := range compats {
			switch c.Family {
			case FamilyChrome, FamilyFirefox, FamilyInternetExplorer:
			default:
				panic(fmt.Sprintf("browser: feature %s references unknown family %q", feature, c.Family))
			}
		}
	}
}

func init() {
	validateFeatureTable()
}
