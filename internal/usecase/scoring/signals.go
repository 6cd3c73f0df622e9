package scoring

import "github.com/kindredhq/kindred-backend/internal/domain"

// ExtractionConfidenceThreshold is the minimum confidence at which a
// behaviorally extracted value overrides the self-reported one.
const ExtractionConfidenceThreshold = 0.5

// NeutralScale is the default for absent 0-100 scaled traits.
const NeutralScale = 50

// ResolveScale reconciles a 0-100 trait from its two possible sources.
// The extracted value wins when its confidence exceeds the threshold,
// the self-reported value is the fallback, and total absence degrades to
// the neutral default. Never fails.
func ResolveScale(selfReported *int, extracted *domain.TraitScore) int {
	if extracted != nil && extracted.Confidence > ExtractionConfidenceThreshold {
		return clampScore(extracted.Value)
	}
	if selfReported != nil {
		return clampScore(*selfReported)
	}
	if extracted != nil {
		return clampScore(extracted.Value)
	}
	return NeutralScale
}

// ResolveCategory is the categorical counterpart of ResolveScale. Returns
// the empty string when neither source is populated.
func ResolveCategory(selfReported *string, extracted *domain.CategorySignal) string {
	if extracted != nil && extracted.Confidence > ExtractionConfidenceThreshold {
		return extracted.Value
	}
	if selfReported != nil {
		return *selfReported
	}
	if extracted != nil {
		return extracted.Value
	}
	return ""
}

// extractionValue reads a trait score, neutral when absent.
func extractionValue(t *domain.TraitScore) int {
	if t == nil {
		return NeutralScale
	}
	return clampScore(t.Value)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
