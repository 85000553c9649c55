package problem

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/moora/criteria"
)

// DecodeCSV reads a problem table. The first record is the header
// "alternative,<name>:<direction>[:<weight>],...", every following record is
// an alternative name followed by its values. Lines starting with '#' are
// comments.
func DecodeCSV(r io.Reader) (*Problem, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(records) == 0 {
		return nil, invalidf("decode csv: empty document")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, invalidf("decode csv: header needs an alternative column and at least one criterion")
	}

	p := &Problem{Criteria: make([]Criterion, len(header)-1)}
	for j, cell := range header[1:] {
		c, err := parseHeaderCell(cell)
		if err != nil {
			return nil, fmt.Errorf("decode csv: column %d: %w", j+1, err)
		}
		p.Criteria[j] = c
	}

	for line, rec := range records[1:] {
		row := make([]float64, len(rec)-1)
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, invalidf("decode csv: record %d column %d: %v", line+2, j+1, err)
			}
			row[j] = v
		}
		p.Alternatives = append(p.Alternatives, strings.TrimSpace(rec[0]))
		p.Matrix = append(p.Matrix, row)
	}

	p.fillDefaults()
	if err = p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// parseHeaderCell splits "name:direction[:weight]".
func parseHeaderCell(cell string) (Criterion, error) {
	parts := strings.Split(cell, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Criterion{}, invalidf("header %q is not name:direction[:weight]", cell)
	}

	dir, err := criteria.ParseDirection(parts[1])
	if err != nil {
		return Criterion{}, err
	}
	c := Criterion{Name: strings.TrimSpace(parts[0]), Direction: dir}

	if len(parts) == 3 {
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return Criterion{}, invalidf("header %q: weight: %v", cell, err)
		}
		c.Weight = &w
	}

	return c, nil
}

// EncodeCSV writes p in the layout accepted by DecodeCSV.
func EncodeCSV(w io.Writer, p *Problem) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(p.Criteria)+1)
	header = append(header, "alternative")
	for _, c := range p.Criteria {
		cell := c.Name + ":" + c.Direction.String()
		if c.Weight != nil {
			cell += ":" + strconv.FormatFloat(*c.Weight, 'g', -1, 64)
		}
		header = append(header, cell)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}

	for i, row := range p.Matrix {
		rec := make([]string, 0, len(row)+1)
		name := ""
		if i < len(p.Alternatives) {
			name = p.Alternatives[i]
		}
		rec = append(rec, name)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("encode csv: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
