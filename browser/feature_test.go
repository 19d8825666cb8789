package browser

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		nickname string
		version  int
		family   Family
	}{
		{"Chrome", 80, FamilyChrome},
		{"Chrome81", 81, FamilyChrome},
		{"FF", 74, FamilyFirefox},
		{"FF68", 68, FamilyFirefox},
		{"FF60", 60, FamilyFirefox},
		{"IE", 11, FamilyInternetExplorer},
		// Unrecognized prefixes get the most restrictive surface.
		{"Opera", 65, FamilyInternetExplorer},
		{"", 0, FamilyInternetExplorer},
	}
	for _, tt := range tests {
		id := classify(tt.nickname, tt.version)
		if id.family != tt.family {
			t.Errorf("classify(%q, %d).family = %q, want %q", tt.nickname, tt.version, id.family, tt.family)
		}
		if id.version != tt.version {
			t.Errorf("classify(%q, %d).version = %d", tt.nickname, tt.version, id.version)
		}
	}
}

func TestCompatMatches(t *testing.T) {
	tests := []struct {
		compat Compat
		id     identity
		want   bool
	}{
		{Compat{Family: FamilyFirefox}, identity{FamilyFirefox, 68}, true},
		{Compat{Family: FamilyFirefox}, identity{FamilyFirefox, 74}, true},
		{Compat{Family: FamilyFirefox, Version: 68}, identity{FamilyFirefox, 68}, true},
		{Compat{Family: FamilyFirefox, Version: 68}, identity{FamilyFirefox, 74}, false},
		{Compat{Family: FamilyChrome}, identity{FamilyFirefox, 74}, false},
		{Compat{Family: FamilyInternetExplorer}, identity{FamilyInternetExplorer, 11}, true},
	}
	for _, tt := range tests {
		if got := tt.compat.matches(tt.id); got != tt.want {
			t.Errorf("%+v.matches(%+v) = %v, want %v", tt.compat, tt.id, got, tt.want)
		}
	}
}

func TestResolveFeaturesDeterministic(t *testing.T) {
	first := resolveFeatures("Chrome", 80)
	second := resolveFeatures("Chrome", 80)
	if len(first) != len(second) {
		t.Fatalf("resolution not deterministic: %d vs %d features", len(first), len(second))
	}
	for f := range first {
		if _, ok := second[f]; !ok {
			t.Errorf("feature %s missing on second resolution", f)
		}
	}
}

func TestResolvedFeaturePerFamily(t *testing.T) {
	// Chrome-only feature.
	if !Chrome.HasFeature(FeatureEventOnClickPointerEvent) {
		t.Error("Chrome should dispatch click as PointerEvent")
	}
	if Firefox.HasFeature(FeatureEventOnClickPointerEvent) {
		t.Error("Firefox should not dispatch click as PointerEvent")
	}

	// IE-only feature, conservative default for everything unclassified.
	if !InternetExplorer.HasFeature(FeatureJSWindowActiveXObject) {
		t.Error("IE should expose ActiveXObject")
	}
	if Chrome.HasFeature(FeatureJSWindowActiveXObject) {
		t.Error("Chrome should not expose ActiveXObject")
	}

	// Family-wide Firefox feature covers ESR and rolling alike.
	for _, v := range []*BrowserVersion{Firefox, Firefox68, Firefox60} {
		if !v.HasFeature(FeatureJSNavigatorDoNotTrack) {
			t.Errorf("%s should report doNotTrack", v)
		}
	}

	// Version-pinned features separate the ESR lines from rolling.
	if !Firefox68.HasFeature(FeatureCSSGapNormalizesLength) {
		t.Error("FF68 should normalize gap lengths")
	}
	if Firefox60.HasFeature(FeatureCSSGapNormalizesLength) {
		t.Error("FF60 should not normalize gap lengths")
	}
	if Firefox68.HasFeature(FeatureJSClipboardReadText) {
		t.Error("FF68 should not have clipboard.readText")
	}
	if !Firefox.HasFeature(FeatureJSClipboardReadText) {
		t.Error("rolling Firefox should have clipboard.readText")
	}
}

func TestUnknownNicknameResolvesAsIE(t *testing.T) {
	features := resolveFeatures("Opera", 65)
	if _, ok := features[FeatureJSWindowActiveXObject]; !ok {
		t.Error("unrecognized nickname should resolve with IE semantics")
	}
	if _, ok := features[FeatureJSSymbol]; ok {
		t.Error("unrecognized nickname should not pick up Chrome/Firefox features")
	}
}

func TestFeatureTableValidation(t *testing.T) {
	// The live table must already be valid or the package would not have
	// initialized. Verify the validator actually rejects bad families.
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown family")
		}
	}()
	old := featureTable
	defer func() { featureTable = old }()
	featureTable = map[Feature][]Compat{
		"BOGUS": {{Family: "Netscape4"}},
	}
	validateFeatureTable()
}

func TestFeatureTableNonEmptyEntries(t *testing.T) {
	for feature, compats := range featureTable {
		if len(compats) == 0 {
			t.Errorf("feature %s has no compatibility entries", feature)
		}
	}
}
