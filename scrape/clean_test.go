package scrape

import "testing"

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"rupee with commas", "₹1,29,900", 129900},
		{"dollar", "$1,299.99", 1299.99},
		{"concatenated duplicate takes first", "64900₹64900", 64900},
		{"plain number", "64900", 64900},
		{"below plausible range", "₹89", 0},
		{"garbage", "out of stock", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanPrice(tt.raw); got != tt.want {
				t.Errorf("CleanPrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanRating(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"4.5 out of 5 stars", 4.5},
		{"4.5★", 4.5},
		{"3", 3},
		{"no rating", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanRating(tt.raw); got != tt.want {
				t.Errorf("CleanRating(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanReviews(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1,245 ratings", 1245},
		{"1.2K", 1200},
		{"12K reviews", 12000},
		{"845", 845},
		{"no reviews yet", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanReviews(tt.raw); got != tt.want {
				t.Errorf("CleanReviews(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
