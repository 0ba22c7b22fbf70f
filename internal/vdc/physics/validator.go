// Package physics implements the proof-of-motion validation engine: a
// primary active-energy work estimate cross-checked against an
// independent kinematic model.
package physics

import (
	"github.com/vdcprotocol/vdc-backend/internal/vdc/protocol"
)

// Sample is one externally measured unit of physical work.
type Sample struct {
	ActiveKcal float64
	DistanceM  float64
	ElevationM float64
	MassKg     float64
	Gravity    float64
}

// Verdict carries both work estimates and the acceptance decision.
// WorkJoules is the issuance figure whether or not the sample was
// accepted; callers must check Accepted before minting against it.
type Verdict struct {
	WorkJoules      float64
	KinematicJoules float64
	Accepted        bool
	Reasons         []string
}

// Evaluate converts the claimed active energy into the primary work
// figure, estimates the same work kinematically from mass, elevation, and
// distance, and applies the two issuance gates.
func Evaluate(s Sample) Verdict {
	work := s.ActiveKcal * protocol.JoulesPerKcal

	potential := s.MassKg * s.Gravity * s.ElevationM
	friction := s.MassKg * s.Gravity * protocol.RollingCoeff * s.DistanceM
	kinematic := potential + friction

	v := Verdict{WorkJoules: work, KinematicJoules: kinematic, Accepted: true}

	if work < protocol.MinWorkJoules {
		v.Accepted = false
		v.Reasons = append(v.Reasons, "work below 100 kJ issuance floor")
	}

	divisor := kinematic
	if divisor == 0 {
		divisor = 1
	}
	ratio := work / divisor

	// A large ratio alone is not disqualifying. Only a near-zero kinematic
	// signal paired with a wildly divergent energy claim counts as
	// spoofing; high-intensity low-distance activity stays mintable.
	if ratio > protocol.DivergenceRatio && kinematic < protocol.KinematicFloorJoules {
		v.Accepted = false
		v.Reasons = append(v.Reasons, "claimed energy diverges from kinematic estimate")
	}

	return v
}
