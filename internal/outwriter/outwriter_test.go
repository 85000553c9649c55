package outwriter

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moora/moora"
)

func ratioDecision() moora.Decision {
	return moora.Decision{
		Method: moora.MethodRatio,
		Rank:   []int{2, 1, 0},
		Points: []float64{0.1021695, 0.74549924, 1.01261272},
	}
}

func multiDecision() moora.Decision {
	return moora.Decision{
		Method:     moora.MethodMultiMOORA,
		Rank:       []int{1, 0},
		RankMatrix: [][]int{{1, 1, 1}, {0, 0, 0}},
		Votes:      []int{0, 1},
		Dominated:  []bool{true, false},
	}
}

func TestNewRanking(t *testing.T) {
	r, err := NewRanking([]string{"A0", "A1", "A2"}, ratioDecision())
	require.NoError(t, err)
	assert.Equal(t, "ratio", r.Method)
	assert.Equal(t, "A2", r.Best)
	assert.False(t, r.Multi)
	require.Len(t, r.Rows, 3)
	assert.Equal(t, "A2", r.Rows[0].Alternative)
	assert.Equal(t, 1, r.Rows[0].Position)
	assert.InDelta(t, 1.01261272, *r.Rows[0].Score, 1e-12)
	assert.Equal(t, "A0", r.Rows[2].Alternative)

	_, err = NewRanking([]string{"only"}, ratioDecision())
	require.Error(t, err)
}

func TestNewRanking_Multi(t *testing.T) {
	r, err := NewRanking([]string{"x", "y"}, multiDecision())
	require.NoError(t, err)
	assert.True(t, r.Multi)
	assert.Equal(t, "y", r.Best)
	assert.Equal(t, []int{1, 1, 1}, r.Rows[0].MethodRanks)
	assert.Equal(t, 1, *r.Rows[0].Votes)
	assert.True(t, *r.Rows[1].Dominated)
	assert.Nil(t, r.Rows[0].Score)
}

func TestWriteRanking_CSV(t *testing.T) {
	r, err := NewRanking([]string{"A0", "A1", "A2"}, ratioDecision())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, r, &Config{Output: CSVOut, Precision: 3}))
	assert.Equal(t, "position,alternative,score\n1,A2,1.013\n2,A1,0.745\n3,A0,0.102\n", buf.String())

	m, err := NewRanking([]string{"x", "y"}, multiDecision())
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, WriteRanking(&buf, m, &Config{Output: CSVOut, Precision: 3}))
	assert.Equal(t, "position,alternative,ratio,refpoint,fmf,votes,dominated\n1,y,1,1,1,1,false\n2,x,2,2,2,0,true\n", buf.String())
}

func TestWriteRanking_JSON(t *testing.T) {
	r, err := NewRanking([]string{"A0", "A1", "A2"}, ratioDecision())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, r, &Config{Output: JSONOut}))

	var decoded struct {
		Method string `json:"method"`
		Best   string `json:"best"`
		Rows   []struct {
			Position    int      `json:"position"`
			Alternative string   `json:"alternative"`
			Score       *float64 `json:"score"`
			Votes       *int     `json:"votes"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ratio", decoded.Method)
	assert.Equal(t, "A2", decoded.Best)
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, 3, decoded.Rows[2].Position)
	require.NotNil(t, decoded.Rows[0].Score)
	assert.Nil(t, decoded.Rows[0].Votes)
	assert.NotContains(t, buf.String(), "Multi")
}

func TestWriteRanking_Table(t *testing.T) {
	r, err := NewRanking([]string{"A0", "A1", "A2"}, ratioDecision())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRanking(&buf, r, &Config{Output: TextOut, Precision: 2, Width: 120}))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "ALTERNATIVE")
	assert.Contains(t, out, "1.01")
	assert.Contains(t, out, "Method: ratio, best alternative: A2")
	assert.Less(t, strings.Index(out, "A2"), strings.Index(out, "A0"), "best row first")

	m, err := NewRanking([]string{"x", "y"}, multiDecision())
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, WriteRanking(&buf, m, &Config{Output: TextOut, Width: 120}))
	assert.Contains(t, strings.ToUpper(buf.String()), "DOMINATED")
	assert.Contains(t, buf.String(), "Method: multimoora")
}

func TestWriteMethods(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMethods(&buf, []MethodInfo{
		{Name: "ratio", Order: "higher is better", Weights: true, Description: "net ratio"},
		{Name: "fmf", Order: "higher is better", Description: "log product"},
	}))
	out := buf.String()
	assert.Contains(t, out, "ratio")
	assert.Contains(t, out, "used")
	assert.Contains(t, out, "ignored")
}

func TestWrite_ToFile(t *testing.T) {
	var logBuf bytes.Buffer
	stderr = &logBuf
	defer func() { stderr = os.Stderr }()

	r, err := NewRanking([]string{"A0", "A1", "A2"}, ratioDecision())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(r, &Config{Output: CSVOut, OutputFile: path, Precision: 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "position,alternative,score\n1,A2,1.0\n"))
	assert.Contains(t, logBuf.String(), "Wrote ranking to "+path)
}

func TestWarningAndFatal(t *testing.T) {
	var logBuf bytes.Buffer
	stderr = &logBuf
	var code int
	exit = func(c int) { code = c }
	defer func() {
		stderr = os.Stderr
		exit = os.Exit
	}()

	Warning("weights are ignored")
	FatalError("cannot rank", errors.New("boom"))
	assert.Contains(t, logBuf.String(), "weights are ignored")
	assert.Contains(t, logBuf.String(), "cannot rank: boom")
	assert.Equal(t, 1, code)
}

func TestTruncateAndWidth(t *testing.T) {
	assert.Equal(t, "abcdefg...", truncateName("abcdefghijklmnop", 10))
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, 12, maxNameWidth(&Config{Width: 20}, 7))
	assert.Equal(t, 60, maxNameWidth(&Config{Width: 500}, 3))
	assert.Equal(t, 80-2*11-4, maxNameWidth(&Config{Width: 80}, 3))
}
