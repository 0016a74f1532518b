package model

import "testing"

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		required string
		role     string
		want     bool
	}{
		{name: "no requirement", required: "", role: "", want: true},
		{name: "same role", required: "manager", role: "manager", want: true},
		{name: "admin override", required: "manager", role: "admin", want: true},
		{name: "other role", required: "manager", role: "operator", want: false},
		{name: "anonymous", required: "supervisor", role: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.required, tt.role); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", tt.required, tt.role, got, tt.want)
			}
		})
	}
}

func TestIsKnownRole(t *testing.T) {
	if !IsKnownRole("qc_inspector") {
		t.Error("qc_inspector should be known")
	}
	if IsKnownRole("superuser") {
		t.Error("superuser should not be known")
	}
}
