package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// MethodInfo describes one ranking method for the methods listing.
type MethodInfo struct {
	Name        string
	Order       string // "higher is better" or "lower is better"
	Weights     bool
	Description string
}

// writeRankingTable writes the ranking as a human-readable table.
func writeRankingTable(w io.Writer, r Ranking, cfg *Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	// --- 1. Headers ---
	headers := []string{"Pos", "Alternative", "Score"}
	if r.Multi {
		headers = []string{"Pos", "Alternative", "Ratio", "RefPoint", "FMF", "Votes", "Dominated"}
	}
	table.Header(headers)

	// --- 2. Alignment ---
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Rows ---
	green, faint := fmt.Sprint, fmt.Sprint
	if cfg.UseColors {
		green = color.New(color.FgGreen, color.Bold).SprintFunc()
		faint = color.New(color.Faint).SprintFunc()
	}
	nameWidth := maxNameWidth(cfg, len(headers))

	var data [][]string
	for _, row := range r.Rows {
		name := truncateName(row.Alternative, nameWidth)
		if row.Position == 1 {
			name = green(name)
		}
		rec := []string{strconv.Itoa(row.Position), name}
		if r.Multi {
			for _, mr := range row.MethodRanks {
				rec = append(rec, strconv.Itoa(mr))
			}
			dominated := "no"
			if *row.Dominated {
				dominated = faint("yes")
			}
			rec = append(rec, strconv.Itoa(*row.Votes), dominated)
		} else {
			rec = append(rec, fmtFloat(*row.Score))
		}
		data = append(data, rec)
	}

	// --- 4. Render ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Method: %s, best alternative: %s\n", r.Method, green(r.Best))

	return err
}

// WriteMethods lists the available ranking methods as a table.
func WriteMethods(w io.Writer, methods []MethodInfo) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Method", "Order", "Weights", "Description"})
	var data [][]string
	for _, m := range methods {
		weights := "ignored"
		if m.Weights {
			weights = "used"
		}
		data = append(data, []string{m.Name, m.Order, weights, m.Description})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}
