package main

import (
	"math"
	"testing"
)

func TestValidateSimulateFlags(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		dt      float64
		wantErr bool
	}{
		{"defaults", 60, 1.0 / 60, false},
		{"longest step", 10, maxSimDt, false},
		{"zero dt", 60, 0, true},
		{"negative seconds", -1, 0.01, true},
		{"step too long", 60, 1e12, true},
		{"nan dt", 60, math.NaN(), true},
		{"infinite seconds", math.Inf(1), 0.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSimulateFlags(tc.seconds, tc.dt)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateSimulateFlags(%g, %g) = %v, wantErr %v", tc.seconds, tc.dt, err, tc.wantErr)
			}
		})
	}
}
