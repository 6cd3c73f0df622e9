package astro

import (
	"time"

	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
)

// Numerology compares life-path numbers derived from the birth date.
type Numerology struct{}

func NewNumerology() *Numerology { return &Numerology{} }

func (n *Numerology) Name() string { return "numerology" }

func (n *Numerology) Compare(a, b scoring.Subject) (int, bool) {
	if a.BirthDate == nil || b.BirthDate == nil {
		return 0, false
	}
	pathA := lifePath(*a.BirthDate)
	pathB := lifePath(*b.BirthDate)

	switch {
	case pathA == pathB:
		return 80, true
	case pathA+pathB == 10:
		return 70, true
	default:
		return 50, true
	}
}

// lifePath reduces the birth date digits to a single 1-9 number.
func lifePath(t time.Time) int {
	sum := digitSum(t.Year()) + digitSum(int(t.Month())) + digitSum(t.Day())
	for sum > 9 {
		sum = digitSum(sum)
	}
	return sum
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
