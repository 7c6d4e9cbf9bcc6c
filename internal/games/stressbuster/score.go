package stressbuster

import (
	"math"

	"github.com/vovakirdan/stressbuster/internal/config"
)

// SpeedForScore is the speed curve: base plus one increment per completed
// step of score, capped at the maximum. The curve is a pure function of
// score, so speed never decreases while a run lasts.
func SpeedForScore(sc config.Scoring, score int) float64 {
	speed := sc.BaseSpeed
	if sc.SpeedStepScore > 0 {
		steps := math.Floor(float64(score) / float64(sc.SpeedStepScore))
		speed += steps * sc.SpeedIncrement
	}
	return math.Min(speed, sc.MaxSpeed)
}

// advanceScore awards the per-cadence point, refreshes speed and raises the
// high score. It returns whether a point was awarded and whether it set a
// new best.
func (s *Session) advanceScore(sc config.Scoring) (scored, newBest bool) {
	if sc.EveryTicks <= 0 || s.Tick%sc.EveryTicks != 0 {
		return false, false
	}
	s.Score++
	s.Speed = SpeedForScore(sc, s.Score)
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		newBest = true
	}
	return true, newBest
}
