package http

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"short", "short"},
		{"exactly16chars!!", "exactly16chars!!"},
		{"seventeen chars!!", "seventeen chars!..."},
		{"ééééééééééééééééé", "éééééééééééééééé..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, titleLimit); got != tt.want {
			t.Errorf("truncate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStars(t *testing.T) {
	for rating, want := range map[float64]string{0: "", 0.9: "", 3.7: "★★★", 5: "★★★★★", -1: ""} {
		if got := stars(rating); got != want {
			t.Errorf("stars(%v) = %q, want %q", rating, got, want)
		}
	}
}
