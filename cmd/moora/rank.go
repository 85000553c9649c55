package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/moora/internal/outwriter"
	"github.com/katalvlaran/moora/moora"
	"github.com/katalvlaran/moora/problem"
)

// rankCmd ranks the alternatives of one decision problem.
var rankCmd = &cobra.Command{
	Use:   "rank <file>",
	Short: "Rank the alternatives of a decision problem.",
	Long: `Load a decision problem from a YAML or CSV file and rank its alternatives.

Use "-" as the file to read from stdin together with --format.

Examples:
  # MultiMOORA with default settings
  moora rank laptops.yaml

  # Weighted ratio system as CSV
  moora rank laptops.csv --method ratio --output csv

  # Sum normalization, JSON written to a file
  moora rank laptops.yaml -m refpoint --mnorm sum -o json --output-file out.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		ranking, err := rankProblem(cfg, args[0], os.Stdin)
		if err != nil {
			return err
		}
		return outwriter.Write(ranking, &cfg.out)
	},
}

// rankProblem loads the problem at path ("-" reads from stdin) and solves it
// with the configured method.
func rankProblem(cfg *config, path string, stdin io.Reader) (outwriter.Ranking, error) {
	p, err := loadProblem(cfg, path, stdin)
	if err != nil {
		return outwriter.Ranking{}, err
	}

	mtx, dirs, weights, err := p.Inputs()
	if err != nil {
		return outwriter.Ranking{}, fmt.Errorf("%s: %w", path, err)
	}

	opts := []moora.Option{moora.WithMatrixNorm(cfg.mnorm), moora.WithWeightNorm(cfg.wnorm)}
	if weights != nil {
		if cfg.method == moora.MethodFMF || cfg.method == moora.MethodMultiMOORA {
			outwriter.Warning(fmt.Sprintf("weights are ignored by %s", cfg.method))
		}
		opts = append(opts, moora.WithWeights(weights))
	}

	d, err := moora.Solve(cfg.method, mtx, dirs, opts...)
	if err != nil {
		return outwriter.Ranking{}, err
	}

	return outwriter.NewRanking(p.Alternatives, d)
}

func loadProblem(cfg *config, path string, stdin io.Reader) (*problem.Problem, error) {
	if path != "-" {
		if cfg.format != "" {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open problem: %w", err)
			}
			defer f.Close()
			return problem.Decode(f, cfg.format)
		}
		return problem.Load(path)
	}

	if cfg.format == "" {
		return nil, fmt.Errorf("--format is required when reading from stdin")
	}
	return problem.Decode(stdin, cfg.format)
}
