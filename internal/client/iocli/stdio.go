package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Stdio реализует IO поверх произвольных reader/writer.
// Один bufio.Reader на весь сеанс, чтобы не терять буферизованный ввод между вызовами.
type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	fd     int // -1, если ввод не терминал
	mu     sync.Mutex
}

// NewStdio returns IO bound to os.Stdin and os.Stdout.
func NewStdio() IO {
	return &Stdio{
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		fd:     int(os.Stdin.Fd()),
	}
}

// NewStream returns IO over r and w. Passwords are read as plain lines.
func NewStream(r io.Reader, w io.Writer) IO {
	return &Stdio{
		out:    w,
		reader: bufio.NewReader(r),
		fd:     -1,
	}
}

func (s *Stdio) Println(a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}

// ReadInput prints prompt and returns the next line without surrounding spaces.
// The last line may end without a newline.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword reads a line without echo when input is a terminal.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.fd < 0 || !term.IsTerminal(s.fd) {
		input, err := s.ReadInput(prompt)
		if err != nil {
			return "", err
		}
		return input, nil
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
