package analysis

import "github.com/cypherlabdev/value-radar-service/internal/models"

// MovedAgainstPublic reports whether the line moved away from a side the
// betting public is heavily on: the public holds at least 50% of tickets
// yet the odds on that side lengthened from open. Lengthening odds mean
// falling implied probability, a signal of sharp money opposing the crowd.
// Missing public data or a missing/invalid opening line never classifies
// as a move against the public.
func MovedAgainstPublic(side models.Side, publicPercent, openOdds *float64, currentOdds float64) bool {
	if publicPercent == nil || openOdds == nil || *openOdds <= 0 {
		return false
	}
	if *publicPercent < 50 {
		return false
	}
	if !models.ValidSide(string(side)) {
		return false
	}
	return currentOdds > *openOdds
}
