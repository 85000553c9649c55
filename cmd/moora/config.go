package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/moora/internal/outwriter"
	"github.com/katalvlaran/moora/matrix"
	"github.com/katalvlaran/moora/moora"
	"github.com/katalvlaran/moora/problem"
)

const (
	defaultPrecision = 4
	maxPrecision     = 12
)

// rawInput mirrors every flag, env var and config key before validation.
type rawInput struct {
	Method     string `mapstructure:"method"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
	MNorm      string `mapstructure:"mnorm"`
	WNorm      string `mapstructure:"wnorm"`
	Format     string `mapstructure:"format"`
}

// config is the validated configuration used by the commands.
type config struct {
	method moora.Method
	mnorm  matrix.MatrixNormFunc
	wnorm  matrix.VectorNormFunc
	format string // input format override, empty means infer from extension
	out    outwriter.Config
}

// processAndValidate reads from in and populates cfg.
func processAndValidate(cfg *config, in *rawInput) error {
	var err error
	if cfg.method, err = moora.ParseMethod(in.Method); err != nil {
		return fmt.Errorf("invalid method %q. must be ratio, refpoint, fmf, multimoora", in.Method)
	}
	if cfg.mnorm, err = matrix.LookupMatrixNorm(in.MNorm); err != nil {
		return fmt.Errorf("invalid mnorm %q. must be vector, sum", in.MNorm)
	}
	if cfg.wnorm, err = matrix.LookupVectorNorm(in.WNorm); err != nil {
		return fmt.Errorf("invalid wnorm %q. must be sum, vector", in.WNorm)
	}

	cfg.format = strings.ToLower(strings.TrimSpace(in.Format))
	if cfg.format != "" && cfg.format != problem.FormatYAML && cfg.format != problem.FormatCSV {
		return fmt.Errorf("invalid format %q. must be yaml, csv", in.Format)
	}

	output := strings.ToLower(in.Output)
	if _, ok := outwriter.ValidOutputs[output]; !ok {
		return fmt.Errorf("invalid output %q. must be text, csv, json", in.Output)
	}
	if in.Precision < 0 || in.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d", maxPrecision)
	}
	useColors, err := parseBoolString(in.Color)
	if err != nil {
		return err
	}

	cfg.out = outwriter.Config{
		Output:     output,
		OutputFile: in.OutputFile,
		Precision:  in.Precision,
		UseColors:  useColors,
		Width:      in.Width,
	}

	return nil
}

// parseBoolString accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func parseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
