package sites

import "testing"

func TestForName(t *testing.T) {
	tests := []struct {
		name       string
		strategy   string
		wantName   string
		wantMarker string
	}{
		{name: "empty selects mrx", strategy: "", wantName: "mrx", wantMarker: MrXDetailMarker},
		{name: "mrx", strategy: "mrx", wantName: "mrx", wantMarker: MrXDetailMarker},
		{name: "case-insensitive", strategy: "MrX", wantName: "mrx", wantMarker: MrXDetailMarker},
		{name: "generic", strategy: "generic", wantName: "generic", wantMarker: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, err := ForName(tt.strategy)
			if err != nil {
				t.Fatalf("ForName(%q) failed: %v", tt.strategy, err)
			}
			if site.Name != tt.wantName {
				t.Errorf("Expected site %q, got %q", tt.wantName, site.Name)
			}
			if site.DetailMarker != tt.wantMarker {
				t.Errorf("Expected marker %q, got %q", tt.wantMarker, site.DetailMarker)
			}
			if site.Extractor == nil {
				t.Error("Expected a non-nil extractor")
			}
		})
	}
}

func TestForName_Unknown(t *testing.T) {
	_, err := ForName("minitel")
	if err == nil {
		t.Fatal("Expected error for unknown strategy, got nil")
	}
}
