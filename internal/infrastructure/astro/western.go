// Package astro provides the optional astrology calculators. Each system
// is an independent scoring.AstroSystem returning a 0-100 sub-score or
// reporting itself unavailable; none of them can veto a match.
package astro

import (
	"time"

	"github.com/kindredhq/kindred-backend/internal/usecase/scoring"
)

type element int

const (
	fire element = iota
	earth
	air
	water
)

// Western scores sun-sign element harmony.
type Western struct{}

func NewWestern() *Western { return &Western{} }

func (w *Western) Name() string { return "western" }

func (w *Western) Compare(a, b scoring.Subject) (int, bool) {
	if a.BirthDate == nil || b.BirthDate == nil {
		return 0, false
	}
	signA := sunSign(*a.BirthDate)
	signB := sunSign(*b.BirthDate)

	elemA, elemB := signElements[signA], signElements[signB]
	switch {
	case signA == signB:
		return 70, true
	case elemA == elemB:
		return 85, true
	case (elemA == fire && elemB == air) || (elemA == air && elemB == fire),
		(elemA == earth && elemB == water) || (elemA == water && elemB == earth):
		return 75, true
	default:
		return 45, true
	}
}

var signElements = map[string]element{
	"aries": fire, "leo": fire, "sagittarius": fire,
	"taurus": earth, "virgo": earth, "capricorn": earth,
	"gemini": air, "libra": air, "aquarius": air,
	"cancer": water, "scorpio": water, "pisces": water,
}

// sunSign maps a birth date to its tropical zodiac sign.
func sunSign(t time.Time) string {
	day := t.Day()
	switch t.Month() {
	case time.January:
		if day < 20 {
			return "capricorn"
		}
		return "aquarius"
	case time.February:
		if day < 19 {
			return "aquarius"
		}
		return "pisces"
	case time.March:
		if day < 21 {
			return "pisces"
		}
		return "aries"
	case time.April:
		if day < 20 {
			return "aries"
		}
		return "taurus"
	case time.May:
		if day < 21 {
			return "taurus"
		}
		return "gemini"
	case time.June:
		if day < 21 {
			return "gemini"
		}
		return "cancer"
	case time.July:
		if day < 23 {
			return "cancer"
		}
		return "leo"
	case time.August:
		if day < 23 {
			return "leo"
		}
		return "virgo"
	case time.September:
		if day < 23 {
			return "virgo"
		}
		return "libra"
	case time.October:
		if day < 23 {
			return "libra"
		}
		return "scorpio"
	case time.November:
		if day < 22 {
			return "scorpio"
		}
		return "sagittarius"
	default:
		if day < 22 {
			return "sagittarius"
		}
		return "capricorn"
	}
}
