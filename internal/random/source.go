package random

// Source provides the randomness consumed by build generation.
// This allows us to inject different implementations for testing.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) (int, error)

	// Sample returns k distinct values from [0, n) drawn without
	// replacement. Selection order is preserved.
	Sample(n, k int) ([]int, error)
}
