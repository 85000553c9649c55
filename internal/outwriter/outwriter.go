// Package outwriter has output and writer logic for the moora CLI.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/moora/moora"
)

// Output formats.
const (
	TextOut = "text"
	CSVOut  = "csv"
	JSONOut = "json"
)

// ValidOutputs lists the accepted output formats.
var ValidOutputs = map[string]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// Config holds the validated output settings.
type Config struct {
	Output     string // text, csv or json
	OutputFile string // empty means stdout
	Precision  int    // decimal places for scores
	UseColors  bool
	Width      int // terminal width override, 0 means auto-detect
}

// Row is one alternative in the rendered ranking. Positions are 1-based.
type Row struct {
	Position    int      `json:"position"`
	Alternative string   `json:"alternative"`
	Score       *float64 `json:"score,omitempty"`
	MethodRanks []int    `json:"method_ranks,omitempty"` // Ratio, RefPoint, FMF
	Votes       *int     `json:"votes,omitempty"`
	Dominated   *bool    `json:"dominated,omitempty"`
}

// Ranking is the render model of a moora.Decision.
type Ranking struct {
	Method string `json:"method"`
	Best   string `json:"best"`
	Multi  bool   `json:"-"`
	Rows   []Row  `json:"rows"`
}

// NewRanking pairs a decision with alternative names and orders the rows by
// rank, best first.
func NewRanking(names []string, d moora.Decision) (Ranking, error) {
	if len(names) != len(d.Rank) {
		return Ranking{}, fmt.Errorf("%d names for %d ranked alternatives", len(names), len(d.Rank))
	}

	r := Ranking{
		Method: d.Method.String(),
		Multi:  d.Method == moora.MethodMultiMOORA,
		Rows:   make([]Row, len(names)),
	}
	for i, name := range names {
		row := Row{Position: d.Rank[i] + 1, Alternative: name}
		if d.Points != nil {
			score := d.Points[i]
			row.Score = &score
		}
		if r.Multi {
			row.MethodRanks = make([]int, len(d.RankMatrix[i]))
			for k, v := range d.RankMatrix[i] {
				row.MethodRanks[k] = v + 1
			}
			votes, dominated := d.Votes[i], d.Dominated[i]
			row.Votes, row.Dominated = &votes, &dominated
		}
		r.Rows[i] = row
	}
	sort.SliceStable(r.Rows, func(a, b int) bool { return r.Rows[a].Position < r.Rows[b].Position })
	if len(r.Rows) > 0 {
		r.Best = r.Rows[0].Alternative
	}

	return r, nil
}

// WriteRanking outputs the ranking, dispatching based on the output format configured.
func WriteRanking(w io.Writer, r Ranking, cfg *Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case JSONOut:
		if err := writeJSON(w, r); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case CSVOut:
		if err := writeCSVRanking(w, r, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeRankingTable(w, r, cfg, fmtFloat)
	}

	return nil
}

// Write sends the ranking to cfg.OutputFile, or stdout when unset.
func Write(r Ranking, cfg *Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteRanking(w, r, cfg)
	}, "Wrote ranking")
}

func writeCSVRanking(w io.Writer, r Ranking, fmtFloat func(float64) string) error {
	header := []string{"position", "alternative", "score"}
	if r.Multi {
		header = []string{"position", "alternative", "ratio", "refpoint", "fmf", "votes", "dominated"}
	}

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range r.Rows {
			rec := []string{fmt.Sprint(row.Position), row.Alternative}
			if r.Multi {
				for _, mr := range row.MethodRanks {
					rec = append(rec, fmt.Sprint(mr))
				}
				rec = append(rec, fmt.Sprint(*row.Votes), fmt.Sprint(*row.Dominated))
			} else {
				rec = append(rec, fmtFloat(*row.Score))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
