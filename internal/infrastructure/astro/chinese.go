package astro

import "github.com/kindredhq/kindred-backend/internal/usecase/scoring"

// Chinese scores zodiac-animal trine harmony by birth year.
type Chinese struct{}

func NewChinese() *Chinese { return &Chinese{} }

func (c *Chinese) Name() string { return "chinese" }

func (c *Chinese) Compare(a, b scoring.Subject) (int, bool) {
	if a.BirthDate == nil || b.BirthDate == nil {
		return 0, false
	}
	animalA := (a.BirthDate.Year() - 4) % 12
	animalB := (b.BirthDate.Year() - 4) % 12

	switch {
	case animalA == animalB:
		return 70, true
	case animalA%4 == animalB%4:
		// Same trine: the four harmony groups sit three years apart.
		return 85, true
	case (animalA+6)%12 == animalB:
		// Directly opposing animals.
		return 35, true
	default:
		return 55, true
	}
}
