package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dendrascience/dendra-hashsum/util"
	"github.com/spf13/cobra"
)

// NewInteractiveCmd creates and returns the interactive subcommand for the
// hashsum CLI. It prompts for a path, an optional digest and an algorithm.
func NewInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for a path, digest and algorithm",
		Long: `Prompt for everything needed to hash or verify a path.

A missing path is asked for again, offering the closest existing path when
one is similar. Leave the digest empty to only compute the hash. The
algorithm is asked for only when it cannot be inferred from the digest.`,
		Args: cobra.NoArgs,
		RunE: runInteractive,
	}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ask prints question and returns the trimmed answer. A final line without
// a newline still counts; EOF before any input is an error.
func (p prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := prompter{in: bufio.NewReader(cmd.InOrStdin()), out: out}

	path, err := askPath(p)
	if err != nil {
		return err
	}

	expected, err := p.ask("Please put in the hash or leave it empty to compute the hash only: ")
	if err != nil {
		return err
	}

	algorithm := ""
	if alg, ok := util.AlgorithmForLength(len(expected)); ok {
		algorithm = alg.String()
	} else {
		algorithm, err = askAlgorithm(p, s.cfg.Algorithm)
		if err != nil {
			return err
		}
	}

	report, err := runHash(cmd, s, path, algorithm, util.Options{})
	if err != nil {
		return err
	}
	if expected == "" {
		fmt.Fprintln(out, styleDigest(s.cfg, out, report.Digest))
		return nil
	}
	return printVerification(out, s.cfg, util.Verify(report.Digest, expected))
}

func askPath(p prompter) (string, error) {
	for {
		path, err := p.ask("Please put in the path: ")
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		fmt.Fprintf(p.out, "path %q not found\n", path)

		suggestion, ok := util.SuggestPath(path)
		if !ok {
			continue
		}
		answer, err := p.ask(fmt.Sprintf("Did you mean %q? [Y/n]: ", suggestion))
		if err != nil {
			return "", err
		}
		if answer == "" || strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
			return suggestion, nil
		}
	}
}

func askAlgorithm(p prompter, fallback string) (string, error) {
	names := strings.Join(util.AlgorithmNames(), ", ")
	for {
		answer, err := p.ask(fmt.Sprintf("Please put in the algorithm (%s) [%s]: ", names, fallback))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return fallback, nil
		}
		if _, ok := util.ParseAlgorithm(answer); ok {
			return answer, nil
		}
		fmt.Fprintf(p.out, "Algorithm not available, choose one of: %s\n", names)
	}
}
