// Package protocol holds the fixed VDC protocol constants: issuance rate,
// commodity backing ratios, and the physics parameters used by validation.
// None of these are configurable at runtime.
package protocol

import "github.com/shopspring/decimal"

const (
	// Asset is the ticker recorded on every transaction.
	Asset = "VDC"

	// ProofProtocol identifies the proof-of-motion validation scheme.
	ProofProtocol = "PoM"

	// JoulesPerKcal converts active energy as reported by health platforms
	// (kcal) into joules.
	JoulesPerKcal = 4184.0

	// Gravity is Earth's surface gravity in m/s^2.
	Gravity = 9.81

	// DefaultMassKg is assumed when the caller supplies no body mass.
	DefaultMassKg = 75.0

	// RollingCoeff approximates rolling/friction resistance for the
	// kinematic work estimate.
	RollingCoeff = 0.005

	// MinWorkJoules is the anti-spam issuance floor (100 kJ, roughly 24 kcal).
	MinWorkJoules = 100_000.0

	// DivergenceRatio and KinematicFloorJoules drive the anti-spoofing gate:
	// a claim is rejected only when the primary estimate exceeds the
	// kinematic one by more than DivergenceRatio while the kinematic
	// estimate itself is below KinematicFloorJoules.
	DivergenceRatio      = 1000.0
	KinematicFloorJoules = 10_000.0

	// GenesisHash is the sentinel hash of block 0. It is not derived from
	// block content; every chain starts from this exact value.
	GenesisHash = "GENESIS_MOONSHOT_NOV2025"
)

var (
	// AlphaJoulesToVDC is the issuance rate: VDC minted per joule of
	// verified work (1 VDC per ~1,052,632 J).
	AlphaJoulesToVDC = decimal.RequireFromString("0.00000095")

	// Commodity redemption ratios in grams per VDC burned.
	GoldGramsPerVDC   = decimal.RequireFromString("0.000011")
	SilkGramsPerVDC   = decimal.RequireFromString("0.0008")
	TencelGramsPerVDC = decimal.RequireFromString("0.012")
)

// AmountPrecision is the number of decimal places carried by every amount,
// supply, and basket field on the ledger.
const AmountPrecision = 8
