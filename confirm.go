package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// confirmer asks the user a yes/no question before destructive writes.
type confirmer interface {
	confirm(question string) (bool, error)
}

// promptConfirmer asks on out and reads the answer from in. Only "y" and
// "yes" count as agreement.
type promptConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirmer) confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// declineConfirmer answers no without asking.
type declineConfirmer struct {
	reason string
}

func (d declineConfirmer) confirm(question string) (bool, error) {
	log.Warn().Str("question", question).Msg(d.reason)
	return false, nil
}

// stdinConfirmer prompts on the terminal. When stdin is not a terminal
// there is nobody to ask, so it declines.
func stdinConfirmer() confirmer {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return declineConfirmer{reason: "stdin is not a terminal; pass --yes to confirm"}
	}
	return promptConfirmer{in: os.Stdin, out: os.Stderr}
}
