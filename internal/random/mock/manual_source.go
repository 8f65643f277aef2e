package mockrandom

import (
	"fmt"
	"sync"
)

// ManualSource implements random.Source for testing with predetermined draws.
// Intn consumes one draw; Sample consumes k draws, which must be distinct.
type ManualSource struct {
	mu        sync.Mutex
	draws     []int
	drawIndex int
}

// NewManualSource creates a new mock randomness source
func NewManualSource() *ManualSource {
	return &ManualSource{
		draws: []int{},
	}
}

// SetDraws sets the predetermined draw sequence and resets the cursor
func (m *ManualSource) SetDraws(draws []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = draws
	m.drawIndex = 0
}

// AddDraw appends one predetermined draw
func (m *ManualSource) AddDraw(draw int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append(m.draws, draw)
}

// Reset clears all draws and resets the cursor
func (m *ManualSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = []int{}
	m.drawIndex = 0
}

// next returns the next predetermined draw
func (m *ManualSource) next() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drawIndex >= len(m.draws) {
		return 0, fmt.Errorf("no more predetermined draws available (used %d of %d)", m.drawIndex, len(m.draws))
	}

	draw := m.draws[m.drawIndex]
	m.drawIndex++
	return draw, nil
}

// Intn implements random.Source.Intn
func (m *ManualSource) Intn(n int) (int, error) {
	draw, err := m.next()
	if err != nil {
		return 0, err
	}
	if draw < 0 || draw >= n {
		return 0, fmt.Errorf("invalid draw %d for bound %d", draw, n)
	}
	return draw, nil
}

// Sample implements random.Source.Sample
func (m *ManualSource) Sample(n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, fmt.Errorf("invalid sample size %d for bound %d", k, n)
	}

	out := make([]int, k)
	seen := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		draw, err := m.next()
		if err != nil {
			return nil, err
		}
		if draw < 0 || draw >= n {
			return nil, fmt.Errorf("invalid draw %d for bound %d", draw, n)
		}
		if seen[draw] {
			return nil, fmt.Errorf("duplicate draw %d in sample", draw)
		}
		seen[draw] = true
		out[i] = draw
	}
	return out, nil
}
