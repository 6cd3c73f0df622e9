package astro

import (
	"testing"
	"time"

	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
)

func born(year int, month time.Month, day int) scoring.Subject {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return scoring.Subject{BirthDate: &d}
}

func TestWesternCompare(t *testing.T) {
	w := NewWestern()

	tests := []struct {
		name string
		a, b scoring.Subject
		want int
	}{
		{"same sign", born(1995, time.April, 1), born(1992, time.March, 25), 70},     // aries, aries
		{"same element", born(1995, time.April, 1), born(1990, time.August, 1), 85},  // aries, leo
		{"fire with air", born(1995, time.April, 1), born(1993, time.June, 1), 75},   // aries, gemini
		{"earth with water", born(1995, time.May, 1), born(1993, time.July, 1), 75},  // taurus, cancer
		{"clashing elements", born(1995, time.April, 1), born(1993, time.May, 1), 45}, // aries, taurus
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := w.Compare(tc.a, tc.b)
			if !ok {
				t.Fatal("Compare() not ok with both birth dates set")
			}
			if got != tc.want {
				t.Errorf("Compare() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChineseCompare(t *testing.T) {
	c := NewChinese()

	tests := []struct {
		name string
		a, b scoring.Subject
		want int
	}{
		{"same animal", born(1996, time.June, 1), born(1984, time.June, 1), 70},  // rat, rat
		{"same trine", born(1996, time.June, 1), born(2000, time.June, 1), 85},   // rat, dragon
		{"opposing", born(1996, time.June, 1), born(1990, time.June, 1), 35},     // rat, horse
		{"unrelated", born(1996, time.June, 1), born(1997, time.June, 1), 55},    // rat, ox
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.Compare(tc.a, tc.b)
			if !ok {
				t.Fatal("Compare() not ok with both birth dates set")
			}
			if got != tc.want {
				t.Errorf("Compare() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNumerologyCompare(t *testing.T) {
	n := NewNumerology()

	// 1990-01-01: 1+9+9+0 + 1 + 1 = 21 -> 3.
	// 1980-01-02: 1+9+8+0 + 1 + 2 = 21 -> 3.
	same, ok := n.Compare(born(1990, time.January, 1), born(1980, time.January, 2))
	if !ok || same != 80 {
		t.Errorf("same life path = %d (ok=%v), want 80", same, ok)
	}

	// 1990-01-05: 21+4 -> 25 -> 7; 3+7 = 10.
	complement, ok := n.Compare(born(1990, time.January, 1), born(1990, time.January, 5))
	if !ok || complement != 70 {
		t.Errorf("complementary paths = %d (ok=%v), want 70", complement, ok)
	}

	// 1990-01-02 -> 22 -> 4; neither equal nor summing to ten with 3.
	other, ok := n.Compare(born(1990, time.January, 1), born(1990, time.January, 2))
	if !ok || other != 50 {
		t.Errorf("unrelated paths = %d (ok=%v), want 50", other, ok)
	}
}

func TestSystemsUnavailableWithoutBirthDate(t *testing.T) {
	systems := []scoring.AstroSystem{NewWestern(), NewChinese(), NewNumerology()}
	withDate := born(1990, time.January, 1)
	without := scoring.Subject{}

	for _, sys := range systems {
		if _, ok := sys.Compare(withDate, without); ok {
			t.Errorf("%s: Compare() ok without both birth dates", sys.Name())
		}
	}
}
