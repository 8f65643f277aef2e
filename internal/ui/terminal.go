package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrQuit is raised by the input primitives when the user presses the quit
// key. It unwinds every nested flow and is handled once at the top of the
// interactive loop.
var ErrQuit = errors.New("quit requested")

// ErrInterrupt is raised when the user interrupts the session (Ctrl-C in
// raw mode). Like ErrQuit it ends the session, but with a distinct farewell.
var ErrInterrupt = errors.New("session interrupted")

const (
	quitKey   = 'q'
	ctrlC     = 0x03
	ctrlD     = 0x04
	promptDim = "\x1b[2m"
	promptOff = "\x1b[0m"
)

// Terminal abstracts the interactive input surface so the controller can be
// driven by a real terminal or a scripted one in tests
type Terminal interface {
	// ReadKey blocks for a single keypress. The quit key yields ErrQuit,
	// Ctrl-C yields ErrInterrupt. Letters are folded to lower case.
	ReadKey() (byte, error)

	// ReadLine prompts for a line of text, returning defaultValue on empty
	// input. A lone quit key yields ErrQuit.
	ReadLine(prompt, defaultValue string) (string, error)

	// Clear clears the screen when the surface supports it
	Clear()

	// Writer returns the output surface presenters should write to
	Writer() io.Writer
}

// IOTerminal is the real Terminal over stdin/stdout. Single-key reads use
// raw mode when stdin is a TTY and fall back to line-buffered input
// otherwise.
type IOTerminal struct {
	in     *os.File
	out    *os.File
	reader *bufio.Reader
}

// NewIOTerminal creates a Terminal over the process stdin/stdout
func NewIOTerminal() *IOTerminal {
	return &IOTerminal{
		in:     os.Stdin,
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
	}
}

// ReadKey implements Terminal.ReadKey
func (t *IOTerminal) ReadKey() (byte, error) {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return t.readKeyLine()
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return t.readKeyLine()
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	buf := make([]byte, 1)
	if _, err := t.in.Read(buf); err != nil {
		return 0, err
	}

	return filterKey(buf[0])
}

// readKeyLine is the line-buffered fallback: the first byte of the line is
// the key
func (t *IOTerminal) readKeyLine() (byte, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return 0, ErrQuit
		}
		return 0, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return '\n', nil
	}
	return filterKey(line[0])
}

func filterKey(key byte) (byte, error) {
	switch key {
	case ctrlC:
		return 0, ErrInterrupt
	case ctrlD:
		return 0, ErrQuit
	}

	if key >= 'A' && key <= 'Z' {
		key += 'a' - 'A'
	}
	if key == quitKey {
		return 0, ErrQuit
	}
	return key, nil
}

// ReadLine implements Terminal.ReadLine
func (t *IOTerminal) ReadLine(prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(t.out, "%s %s(%s)%s ", prompt, promptDim, defaultValue, promptOff)
	} else {
		fmt.Fprintf(t.out, "%s ", prompt)
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return "", ErrQuit
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "q") {
		return "", ErrQuit
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Clear implements Terminal.Clear
func (t *IOTerminal) Clear() {
	if !term.IsTerminal(int(t.out.Fd())) {
		return
	}
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
}

// Writer implements Terminal.Writer
func (t *IOTerminal) Writer() io.Writer {
	return t.out
}
