package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// stderr receives status lines, warnings and fatal errors.
var stderr io.Writer = os.Stderr

// exit terminates the process after FatalError.
var exit = os.Exit

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	fmt.Fprintf(stderr, "❌ %s: %v\n", msg, err)
	exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(stderr, "⚠️  %s\n", msg)
}

// selectOutputFile returns stdout for an empty path, otherwise creates the file.
func selectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := selectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader creates a CSV writer, writes a header, then the data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatter returns a fixed-precision float formatter.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// maxNameWidth calculates the maximum width for alternative names in table
// output based on terminal width and the number of columns.
func maxNameWidth(cfg *Config, columns int) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			termWidth = 80 // Conservative default for pipes and CI
		} else {
			termWidth = detected
		}
	}

	// Roughly 11 cells per numeric column including borders and padding.
	available := termWidth - (columns-1)*11 - 4
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateName shortens name to maxWidth runes, ending with "...".
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
