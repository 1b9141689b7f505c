package analytics

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		dailyAverage float64
		sessions     int
		streak       int
		want         int
	}{
		{"all zero", 0, 0, 0, 0},
		{"near-perfect inputs", 90, 20, 15, 90},
		{"all components capped", 500, 100, 100, 100},
		{"focus only", 30, 0, 0, 10},
		{"sessions only", 0, 5, 0, 10},
		{"streak only", 0, 0, 4, 12},
		{"focus cap at 40", 200, 0, 0, 40},
		{"sessions cap at 30", 0, 50, 0, 30},
		{"streak cap at 30", 0, 0, 20, 30},
		{"negative inputs clamp to zero", -10, -3, -1, 0},
		{"fractional focus truncates", 10, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.dailyAverage, tt.sessions, tt.streak)
			if got != tt.want {
				t.Errorf("Score(%v, %d, %d) = %d, want %d",
					tt.dailyAverage, tt.sessions, tt.streak, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score() = %d, out of [0,100]", got)
			}
		})
	}
}
