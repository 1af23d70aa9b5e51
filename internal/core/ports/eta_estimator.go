package ports

// EtaEstimator produces the delivery-time estimate recorded on a delivery at
// creation time. The contract is a numeric ETA in minutes; the default
// implementation returns a fixed placeholder, and a mapping-service-backed
// estimator can be swapped in without touching the core.
type EtaEstimator interface {
	EstimateMinutes(pickupAddress, deliveryAddress string) float64
}

// FixedEtaEstimator returns the same estimate for every delivery.
type FixedEtaEstimator struct {
	Minutes float64
}

// NewFixedEtaEstimator creates an estimator pinned to the given minutes.
func NewFixedEtaEstimator(minutes float64) FixedEtaEstimator {
	return FixedEtaEstimator{Minutes: minutes}
}

// EstimateMinutes implements EtaEstimator.
func (e FixedEtaEstimator) EstimateMinutes(_, _ string) float64 {
	return e.Minutes
}
