package calculator

import (
	"testing"
)

func TestSplitEqually(t *testing.T) {
	tests := []struct {
		name         string
		totalCents   int64
		participants []int64
		want         []int64
		wantErr      bool
	}{
		{
			name:         "even three-way split",
			totalCents:   30000,
			participants: []int64{1, 2, 3},
			want:         []int64{10000, 10000, 10000},
		},
		{
			name:         "remainder goes to first participant",
			totalCents:   10000,
			participants: []int64{1, 2, 3},
			want:         []int64{3334, 3333, 3333},
		},
		{
			name:         "remainder follows input order",
			totalCents:   101,
			participants: []int64{9, 4, 7},
			want:         []int64{34, 34, 33},
		},
		{
			name:         "single participant",
			totalCents:   999,
			participants: []int64{5},
			want:         []int64{999},
		},
		{
			name:         "fewer cents than participants",
			totalCents:   2,
			participants: []int64{1, 2, 3},
			want:         []int64{1, 1, 0},
		},
		{
			name:         "no participants should error",
			totalCents:   100,
			participants: []int64{},
			wantErr:      true,
		},
		{
			name:         "zero total should error",
			totalCents:   0,
			participants: []int64{1},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			portions, err := SplitEqually(tt.totalCents, tt.participants)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(portions) != len(tt.want) {
				t.Fatalf("got %d portions, want %d", len(portions), len(tt.want))
			}

			var sum int64
			for i, p := range portions {
				if p.UserID != tt.participants[i] {
					t.Errorf("portion %d user = %d, want %d", i, p.UserID, tt.participants[i])
				}
				if p.Cents != tt.want[i] {
					t.Errorf("portion %d cents = %d, want %d", i, p.Cents, tt.want[i])
				}
				sum += p.Cents
			}
			if sum != tt.totalCents {
				t.Errorf("portions sum to %d, want %d", sum, tt.totalCents)
			}
		})
	}
}
