package scoring

import (
	"fmt"

	"github.com/kindredhq/kindred-backend/internal/domain"
)

const (
	conscientiousnessMaxPoints = 15
	agreeablenessMaxPoints     = 15
	extraversionGapThreshold   = 40
)

// PsychologicalScorer scores Big Five similarity and attachment style
// pairing. Conscientiousness and agreeableness are similarity-scored,
// low joint neuroticism earns a stability bonus, and extraversion is
// treated as complementary: large gaps are flagged, not penalized.
type PsychologicalScorer struct{}

func NewPsychologicalScorer() *PsychologicalScorer { return &PsychologicalScorer{} }

func (s *PsychologicalScorer) Dimension() Dimension { return DimPsychological }

func (s *PsychologicalScorer) Score(a, b Subject) DimensionResult {
	res := DimensionResult{Dimension: DimPsychological}
	score := 50

	consA := resolveBigFive(a, bigFiveConscientiousness)
	consB := resolveBigFive(b, bigFiveConscientiousness)
	score += traitCloseness(consA, consB, conscientiousnessMaxPoints)
	if diffAbs(consA, consB) <= 15 {
		res.Strengths = append(res.Strengths, "Similar levels of conscientiousness")
	}

	agreeA := resolveBigFive(a, bigFiveAgreeableness)
	agreeB := resolveBigFive(b, bigFiveAgreeableness)
	score += traitCloseness(agreeA, agreeB, agreeablenessMaxPoints)
	if diffAbs(agreeA, agreeB) <= 15 {
		res.Strengths = append(res.Strengths, "Similar levels of agreeableness")
	}

	avgNeuroticism := (resolveBigFive(a, bigFiveNeuroticism) + resolveBigFive(b, bigFiveNeuroticism)) / 2
	switch {
	case avgNeuroticism < 40:
		score += 10
		res.Strengths = append(res.Strengths, "Both emotionally stable")
	case avgNeuroticism < 55:
		score += 5
	}

	extraGap := diffAbs(resolveBigFive(a, bigFiveExtraversion), resolveBigFive(b, bigFiveExtraversion))
	if extraGap > extraversionGapThreshold {
		res.Considerations = append(res.Considerations,
			"Large difference in extraversion; one partner is far more outgoing")
	}

	attachPoints, strength, consideration := attachmentPairing(attachmentOf(a), attachmentOf(b))
	score += attachPoints
	if strength != "" {
		res.Strengths = append(res.Strengths, strength)
	}
	if consideration != "" {
		res.Considerations = append(res.Considerations, consideration)
	}

	res.Score = clampScore(score)
	return res
}

type bigFiveTrait int

const (
	bigFiveOpenness bigFiveTrait = iota
	bigFiveConscientiousness
	bigFiveExtraversion
	bigFiveAgreeableness
	bigFiveNeuroticism
)

func resolveBigFive(s Subject, trait bigFiveTrait) int {
	var selfReported *int
	var extracted *domain.TraitScore
	if s.Profile != nil {
		switch trait {
		case bigFiveOpenness:
			selfReported = s.Profile.Openness
		case bigFiveConscientiousness:
			selfReported = s.Profile.Conscientiousness
		case bigFiveExtraversion:
			selfReported = s.Profile.Extraversion
		case bigFiveAgreeableness:
			selfReported = s.Profile.Agreeableness
		case bigFiveNeuroticism:
			selfReported = s.Profile.Neuroticism
		}
	}
	if s.Extraction != nil {
		switch trait {
		case bigFiveOpenness:
			extracted = s.Extraction.Openness
		case bigFiveConscientiousness:
			extracted = s.Extraction.Conscientiousness
		case bigFiveExtraversion:
			extracted = s.Extraction.Extraversion
		case bigFiveAgreeableness:
			extracted = s.Extraction.Agreeableness
		case bigFiveNeuroticism:
			extracted = s.Extraction.Neuroticism
		}
	}
	return ResolveScale(selfReported, extracted)
}

func attachmentOf(s Subject) string {
	if s.Profile == nil || s.Profile.AttachmentStyle == nil {
		return ""
	}
	return *s.Profile.AttachmentStyle
}

// attachmentPairing resolves the attachment style lookup. Secure pairings
// score best, the anxious-avoidant trap is penalized, and a shared
// insecure style earns a small bonus with a flag.
func attachmentPairing(styleA, styleB string) (points int, strength, consideration string) {
	if styleA == "" || styleB == "" {
		return 0, "", ""
	}

	secureA := styleA == domain.AttachmentSecure
	secureB := styleB == domain.AttachmentSecure

	switch {
	case secureA && secureB:
		return 15, "Both have a secure attachment style", ""
	case secureA || secureB:
		return 8, "A secure attachment style anchors the pairing", ""
	case (styleA == domain.AttachmentAnxious && styleB == domain.AttachmentAvoidant) ||
		(styleA == domain.AttachmentAvoidant && styleB == domain.AttachmentAnxious):
		return -15, "", "Anxious-avoidant attachment pairing tends to create a pursue-withdraw cycle"
	case styleA == styleB:
		return 4, "", fmt.Sprintf("Both share a %s attachment style; mutual understanding, shared blind spots", styleA)
	default:
		return 0, "", ""
	}
}

func diffAbs(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}
