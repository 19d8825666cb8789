package browser

import (
	"sync"
	"testing"
)

func TestDefaultInitiallyBestSupported(t *testing.T) {
	if Default() != BestSupported {
		t.Skip("default already swapped by another test")
	}
	if BestSupported != Chrome {
		t.Error("best supported version should be Chrome")
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	SetDefault(Firefox68)
	if Default() != Firefox68 {
		t.Error("SetDefault did not take effect")
	}
}

func TestSetDefaultNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDefault(nil) must panic")
		}
	}()
	SetDefault(nil)
}

func TestSetDefaultConcurrent(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetDefault(Firefox)
		}()
		go func() {
			defer wg.Done()
			if v := Default(); v == nil {
				t.Error("Default returned nil under concurrent writes")
			}
		}()
	}
	wg.Wait()

	got := Default()
	if got != Firefox && got != old {
		t.Errorf("Default() = %v after concurrent writes", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"Chrome", "FF", "FF68", "FF60", "IE"} {
		v, err := Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if v.Nickname() != name {
			t.Errorf("Lookup(%q) returned %q", name, v.Nickname())
		}
	}

	if _, err := Lookup("Netscape4"); err == nil {
		t.Error("Lookup of unknown nickname should fail")
	}
}

func TestAvailable(t *testing.T) {
	names := Available()
	if len(names) != 5 {
		t.Fatalf("Available() returned %d names: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Available() not sorted: %v", names)
		}
	}
}
