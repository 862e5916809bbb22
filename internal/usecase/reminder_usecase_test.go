package usecase

import (
	"testing"
	"time"
)

func TestResolveTargetDate(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "today keyword", input: "today", want: "2025-03-14"},
		{name: "tomorrow keyword", input: "tomorrow", want: "2025-03-15"},
		{name: "literal date", input: "2025-04-01", want: "2025-04-01"},
		{name: "garbage", input: "next week", wantErr: true},
		{name: "wrong format", input: "14-03-2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTargetDate(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTargetDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
