package nds

// NDS adjustment factors for compression perpendicular to grain (LRFD)

const (
	// Service condition factors
	DefaultCM = 1.0 // Wet service factor
	DefaultCt = 1.0 // Temperature factor
	DefaultCb = 1.0 // Bearing area factor

	// LRFD format conversion and resistance factors for Fc⊥
	DefaultKF  = 1.67 // Format conversion factor
	DefaultPhi = 0.90 // Resistance factor for compression
)

// AdjustmentFactors groups the multipliers applied to the reference Fc⊥
type AdjustmentFactors struct {
	CM  float64 // C_M - wet service factor
	Ct  float64 // C_t - temperature factor
	Cb  float64 // C_b - bearing area factor
	KF  float64 // K_F - format conversion factor
	Phi float64 // φ - resistance factor
}

// DefaultFactors returns the factor set used by every bearing check
func DefaultFactors() AdjustmentFactors {
	return AdjustmentFactors{
		CM:  DefaultCM,
		Ct:  DefaultCt,
		Cb:  DefaultCb,
		KF:  DefaultKF,
		Phi: DefaultPhi,
	}
}

// Apply returns the adjusted design stress F'c⊥ for a reference stress (psi)
func (f AdjustmentFactors) Apply(stress float64) float64 {
	return AdjustedAllowableStress(stress, f.CM, f.Ct, f.Cb, f.KF, f.Phi)
}

// AdjustedAllowableStress calculates F'c⊥ = Fc⊥ · C_M · C_t · C_b · K_F · φ.
// No validation is performed on the factors.
func AdjustedAllowableStress(stress, cm, ct, cb, kf, phi float64) float64 {
	return stress * cm * ct * cb * kf * phi
}

// DefaultAdjustedStress applies DefaultFactors to a reference stress
func DefaultAdjustedStress(stress float64) float64 {
	return DefaultFactors().Apply(stress)
}
