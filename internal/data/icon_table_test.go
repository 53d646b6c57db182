package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIconTable_LookupFallback(t *testing.T) {
	icons := DefaultIconTable()

	if got := icons.Lookup("cyclone-strike"); got == UnknownIcon {
		t.Error("cyclone-strike should have a mapping")
	}
	if got := icons.Lookup("no-such-skill"); got != UnknownIcon {
		t.Errorf("unknown name: got %+v, want UnknownIcon", got)
	}
}

// TestIconTable_EffectTextKeywordOrder проверяет зафиксированный порядок
// категорий: первый матч выигрывает.
func TestIconTable_EffectTextKeywordOrder(t *testing.T) {
	icons := DefaultIconTable()

	tests := []struct {
		text      string
		wantClass string
	}{
		{"+10% center damage", "icon-damage"},
		{"Cooldown reduced by 1s", "icon-cooldown"},
		{"increased pull RANGE", "icon-range"},
		{"+25% impact radius", "icon-range"},
		{"+3s duration", "icon-duration"},
		{"heal 6% max life", "icon-heal"},
		{"absorb shield after pull", "icon-defense"},
		{"+8% movement speed", "icon-speed"},
		{"wider area of effect", "icon-area"},
		{"something entirely else", "icon-buff"},
		// "damage" precedes "radius" in the check order.
		{"detonation damage within a radius", "icon-damage"},
		// "cooldown" precedes "speed".
		{"cooldown refunded on speed burst", "icon-cooldown"},
	}

	for _, tt := range tests {
		if got := icons.LookupByEffectText(tt.text); got.StyleClass != tt.wantClass {
			t.Errorf("LookupByEffectText(%q): got %q, want %q", tt.text, got.StyleClass, tt.wantClass)
		}
	}
}

func TestIconTable_LoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	yaml := `
icons:
  - name: "cyclone-strike"
    symbol: "C"
    style_class: "icon-custom"
    color: "#ffffff"
  - name: "brand-new"
    symbol: "N"
    style_class: "icon-new"
    color: "#000000"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing override file: %v", err)
	}

	icons := DefaultIconTable()
	if err := icons.LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides() failed: %v", err)
	}

	if got := icons.Lookup("cyclone-strike"); got.StyleClass != "icon-custom" {
		t.Errorf("override not applied: got %+v", got)
	}
	if got := icons.Lookup("brand-new"); got.Symbol != "N" {
		t.Errorf("new entry not added: got %+v", got)
	}
}
