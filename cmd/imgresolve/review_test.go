package main

import (
	"testing"

	"imgresolve/internal/config"
)

func TestCollapseOptions(t *testing.T) {
	tests := []struct {
		name           string
		skipFlag       bool
		skipConfig     bool
		closeTimes     bool
		wantSequential bool
		wantCloseTimes bool
	}{
		{"defaults", false, false, true, false, true},
		{"close times disabled", false, false, false, false, false},
		{"flag enables both", true, false, false, true, true},
		{"config enables both", false, true, false, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Curation.SkipSequential = tc.skipConfig
			cfg.Curation.CollapseCloseTimes = tc.closeTimes

			got := collapseOptions(&cfg, tc.skipFlag)
			if got.Sequential != tc.wantSequential || got.CloseTimes != tc.wantCloseTimes {
				t.Fatalf("collapseOptions = %+v, want sequential=%v closeTimes=%v", got, tc.wantSequential, tc.wantCloseTimes)
			}
		})
	}
}
