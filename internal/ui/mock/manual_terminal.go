package mockui

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/tamrielworks/buildrand/internal/ui"
)

// ManualTerminal implements ui.Terminal for testing with a scripted input
// sequence. Keys and lines are consumed from one queue in the order the
// controller asks for them.
type ManualTerminal struct {
	mu     sync.Mutex
	inputs []input
	index  int
	out    bytes.Buffer
	clears int
}

type input struct {
	key  byte
	line string
	err  error
	kind inputKind
}

type inputKind int

const (
	kindKey inputKind = iota
	kindLine
)

// NewManualTerminal creates a new scripted terminal
func NewManualTerminal() *ManualTerminal {
	return &ManualTerminal{}
}

// AddKey queues a single keypress
func (m *ManualTerminal) AddKey(key byte) *ManualTerminal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input{kind: kindKey, key: key})
	return m
}

// AddKeyErr queues a keypress that fails, such as ui.ErrQuit
func (m *ManualTerminal) AddKeyErr(err error) *ManualTerminal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input{kind: kindKey, err: err})
	return m
}

// AddLine queues a line of text
func (m *ManualTerminal) AddLine(line string) *ManualTerminal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input{kind: kindLine, line: line})
	return m
}

// AddLineErr queues a line read that fails
func (m *ManualTerminal) AddLineErr(err error) *ManualTerminal {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input{kind: kindLine, err: err})
	return m
}

// ReadKey implements ui.Terminal.ReadKey
func (m *ManualTerminal) ReadKey() (byte, error) {
	in, err := m.next(kindKey)
	if err != nil {
		return 0, err
	}
	return in.key, in.err
}

// ReadLine implements ui.Terminal.ReadLine
func (m *ManualTerminal) ReadLine(prompt, defaultValue string) (string, error) {
	fmt.Fprintf(&m.out, "%s\n", prompt)

	in, err := m.next(kindLine)
	if err != nil {
		return "", err
	}
	if in.err != nil {
		return "", in.err
	}
	if in.line == "" {
		return defaultValue, nil
	}
	return in.line, nil
}

func (m *ManualTerminal) next(kind inputKind) (input, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index >= len(m.inputs) {
		return input{}, fmt.Errorf("no more scripted inputs available (used %d of %d)", m.index, len(m.inputs))
	}

	in := m.inputs[m.index]
	m.index++

	if in.kind != kind {
		return input{}, fmt.Errorf("scripted input %d has wrong kind: want %d, got %d", m.index-1, kind, in.kind)
	}
	return in, nil
}

// Clear implements ui.Terminal.Clear
func (m *ManualTerminal) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
}

// Writer implements ui.Terminal.Writer
func (m *ManualTerminal) Writer() io.Writer {
	return &m.out
}

// Output returns everything written to the terminal so far
func (m *ManualTerminal) Output() string {
	return m.out.String()
}

// Clears returns how many times the screen was cleared
func (m *ManualTerminal) Clears() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

// Remaining returns how many scripted inputs were never consumed
func (m *ManualTerminal) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs) - m.index
}

var _ ui.Terminal = (*ManualTerminal)(nil)
