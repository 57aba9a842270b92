package engine_test

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paystream/payproc/internal/engine"
)

// runEngine feeds the CSV input through a processor and returns the
// snapshot split into header and sorted data rows. Output order across
// clients is unspecified, so callers compare sets.
func runEngine(t *testing.T, input string) (string, []string) {
	t.Helper()

	var out bytes.Buffer
	p := engine.New(zap.NewNop())
	require.NoError(t, p.Run(strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.NotEmpty(t, lines)
	header, rows := lines[0], lines[1:]
	sort.Strings(rows)
	return header, rows
}

const header = "type,client,tx,amount\n"

func TestScenarios(t *testing.T) {
	t.Run("simple deposits", func(t *testing.T) {
		hdr, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"deposit,2,2,2.0\n"+
			"deposit,1,3,0.5\n")

		assert.Equal(t, "client,available,held,total,locked", hdr)
		assert.ElementsMatch(t, []string{
			"1,1.5000,0.0000,1.5000,false",
			"2,2.0000,0.0000,2.0000,false",
		}, rows)
	})

	t.Run("dispute holds funds", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"deposit,2,2,2.0\n"+
			"deposit,1,3,0.5\n"+
			"dispute,1,1,\n")

		assert.ElementsMatch(t, []string{
			"1,0.5000,1.0000,1.5000,false",
			"2,2.0000,0.0000,2.0000,false",
		}, rows)
	})

	t.Run("dispute after spend goes negative", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"withdrawal,1,2,1.0\n"+
			"dispute,1,1,\n")

		assert.ElementsMatch(t, []string{
			"1,-1.0000,1.0000,0.0000,false",
		}, rows)
	})

	t.Run("resolve releases funds", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"deposit,2,2,2.0\n"+
			"deposit,1,3,0.5\n"+
			"dispute,1,1,\n"+
			"resolve,1,1,\n")

		assert.ElementsMatch(t, []string{
			"1,1.5000,0.0000,1.5000,false",
			"2,2.0000,0.0000,2.0000,false",
		}, rows)
	})

	t.Run("chargeback locks the client", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"deposit,1,3,0.5\n"+
			"dispute,1,1,\n"+
			"chargeback,1,1,\n")

		assert.ElementsMatch(t, []string{
			"1,0.5000,0.0000,0.5000,true",
		}, rows)
	})

	t.Run("excess precision rounds to four digits", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,2.37021234\n"+
			"deposit,2,2,2.2345\n")

		assert.ElementsMatch(t, []string{
			"1,2.3702,0.0000,2.3702,false",
			"2,2.2345,0.0000,2.2345,false",
		}, rows)
	})
}

func TestRecoverableFailures(t *testing.T) {
	t.Run("rejected records do not abort the run", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"withdrawal,1,2,5.0\n"+ // insufficient funds
			"transfer,1,3,1.0\n"+ // unknown type
			"deposit,1,4\n"+ // amount missing
			"deposit,x,5,1.0\n"+ // malformed client id
			"deposit,1,6,0.5\n")

		assert.ElementsMatch(t, []string{
			"1,1.5000,0.0000,1.5000,false",
		}, rows)
	})

	t.Run("duplicate transaction ids are skipped", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"deposit,1,1,9.0\n")

		assert.ElementsMatch(t, []string{
			"1,1.0000,0.0000,1.0000,false",
		}, rows)
	})

	t.Run("monetary transactions after lock are rejected", func(t *testing.T) {
		_, rows := runEngine(t, header+
			"deposit,1,1,1.0\n"+
			"dispute,1,1,\n"+
			"chargeback,1,1,\n"+
			"deposit,1,2,5.0\n"+
			"withdrawal,1,3,1.0\n")

		assert.ElementsMatch(t, []string{
			"1,0.0000,0.0000,0.0000,true",
		}, rows)
	})

	t.Run("empty input yields only the header", func(t *testing.T) {
		hdr, rows := runEngine(t, header)

		assert.Equal(t, "client,available,held,total,locked", hdr)
		assert.Empty(t, rows)
	})
}

func TestFatalFailures(t *testing.T) {
	t.Run("read failure aborts the run", func(t *testing.T) {
		p := engine.New(zap.NewNop())

		var out bytes.Buffer
		err := p.Run(&failingReader{}, &out)

		assert.Error(t, err)
	})
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
