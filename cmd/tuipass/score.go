package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuipass/internal/strength"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [password]",
		Short: "Rate a password",
		Long:  "Rate a password given as argument, or read it from stdin. Input is hidden when stdin is a terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScoreCmd,
	}
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		var err error
		password, err = readPassword(os.Stdin, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	return writeScore(cmd.OutOrStdout(), password)
}

func readPassword(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		if _, err := fmt.Fprint(prompt, "Password: "); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
		raw, err := term.ReadPassword(fd)
		if _, perr := fmt.Fprintln(prompt); perr != nil {
			log.Debug().Err(perr).Msg("failed to end prompt line")
		}
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	return readFirstLine(in)
}

func readFirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeScore(w io.Writer, password string) error {
	rating := strength.Score(password)
	est := strength.EstimatePassword(password)
	lines := []string{
		fmt.Sprintf("Score:       %d", rating.Score),
		fmt.Sprintf("Bar:         %d%%", rating.BarWidth),
		fmt.Sprintf("Label:       %s", rating.Label),
		fmt.Sprintf("Description: %s", rating.Description),
		fmt.Sprintf("Estimate:    %d/4, %.1f bits, crack time %s", est.Score, est.Entropy, est.CrackTimeDisplay),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
