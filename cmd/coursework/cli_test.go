package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/coursework/caesar"
	"github.com/katalvlaran/coursework/internal/config"
	"github.com/katalvlaran/coursework/loss"
)

// setup resets globals and returns a bare command writing into a buffer.
// A bare command has no flags, so every Changed() check falls back to cfg.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	lossAll, lossRandom, lossSeed = false, 0, 0
	mergeInclusive = false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestCaesarCmd(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runCaesar(caesar.Encode)(cmd, []string{"Hello", "World!"}))
	assert.Equal(t, "Khoor Zruog!\n", buf.String(), "config default shift is 3")

	cmd, buf = setup(t)
	cfg.Caesar.Shift = 13
	require.NoError(t, runCaesar(caesar.Decode)(cmd, []string{"Uryyb"}))
	assert.Equal(t, "Hello\n", buf.String())
}

func TestCaesarCandidatesCmd(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runCaesarCandidates(cmd, []string{"Khoor"}))
	assert.Contains(t, buf.String(), " 3  Hello\n")
	assert.Equal(t, 26, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestMergeCmd(t *testing.T) {
	a := writeTemp(t, "a.yaml", "- positions: [1, 5]\n  values: [A, B]\n- positions: [10, 15]\n  values: [C]\n")
	b := writeTemp(t, "b.json", `[{"positions": [3, 8], "values": ["D", "E"]}, {"positions": [12, 18], "values": ["F"]}]`)

	cmd, buf := setup(t)
	cfg.Merge.Output = "text"
	require.NoError(t, runMerge(cmd, []string{a, b}))
	assert.Equal(t, "[1, 5] [A B]\n[3, 8] [D E]\n[10, 15] [C F]\n", buf.String())

	cmd, buf = setup(t)
	cfg.Merge.Output = "text"
	cfg.Merge.Inclusive = true
	require.NoError(t, runMerge(cmd, []string{a, b}))
	assert.Equal(t, "[1, 5] [A B D E]\n[10, 15] [C F]\n", buf.String())

	// An explicit --inclusive=false overrides merge.inclusive from config.
	cmd, buf = setup(t)
	cfg.Merge.Output = "text"
	cfg.Merge.Inclusive = true
	cmd.Flags().BoolVar(&mergeInclusive, "inclusive", false, "")
	require.NoError(t, cmd.Flags().Set("inclusive", "false"))
	require.NoError(t, runMerge(cmd, []string{a, b}))
	assert.Equal(t, "[1, 5] [A B]\n[3, 8] [D E]\n[10, 15] [C F]\n", buf.String())
}

func TestMergeCmd_BadInput(t *testing.T) {
	a := writeTemp(t, "a.yaml", "- positions: [5, 1]\n")
	b := writeTemp(t, "b.yaml", "[]\n")

	cmd, _ := setup(t)
	assert.Error(t, runMerge(cmd, []string{a, b}))
	assert.Error(t, runMerge(cmd, []string{b, filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestInrCmd(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, runInr(cmd, []string{"123456.7891", "-123456.78", "123", "1234567890"}))
	assert.Equal(t, "1,23,456.7891\n-1,23,456.78\n123\n1,23,45,67,890\n", buf.String())

	cmd, buf = setup(t)
	cfg.Format.Symbol = "₹"
	cfg.Format.Places = 2
	require.NoError(t, runInr(cmd, []string{"2500000.5"}))
	assert.Equal(t, "₹25,00,000.50\n", buf.String())

	cmd, _ = setup(t)
	assert.Error(t, runInr(cmd, []string{"twelve"}))
}

func TestLossCmd(t *testing.T) {
	cmd, buf := setup(t)
	lossAll = true
	cfg.Loss.Top = 2
	require.NoError(t, runLoss(cmd, []string{"20", "15", "7", "2", "13"}))

	out := buf.String()
	assert.Contains(t, out, "buy in year 2 (price 15), sell in year 5 (price 13): loss 2")
	assert.Contains(t, out, "1. buy year 2 (15), sell year 5 (13) -> loss 2")
	assert.Contains(t, out, "2. buy year 1 (20), sell year 2 (15) -> loss 5")
	assert.NotContains(t, out, "3. buy")
}

func TestLossCmd_NoSolutionAndErrors(t *testing.T) {
	cmd, buf := setup(t)
	cfg.Loss.Strategy = "bruteforce"
	require.NoError(t, runLoss(cmd, []string{"10", "20", "30"}))
	assert.Contains(t, buf.String(), "no loss possible")

	cmd, _ = setup(t)
	assert.Error(t, runLoss(cmd, nil), "no prices and no --random")
	assert.Error(t, runLoss(cmd, []string{"1", "x"}))

	cmd, _ = setup(t)
	cfg.Loss.Strategy = "greedy"
	assert.ErrorIs(t, runLoss(cmd, []string{"2", "1"}), loss.ErrUnknownStrategy)
}

func TestLossCmd_Random(t *testing.T) {
	cmd, buf := setup(t)
	lossRandom, lossSeed = 12, 4
	require.NoError(t, runLoss(cmd, nil))
	assert.Contains(t, buf.String(), "loss 1", "a shuffled 1..n that is not sorted drops by exactly 1 somewhere")
}

func TestDemoCmd(t *testing.T) {
	cmd, buf := setup(t)
	require.NoError(t, demoCmd.RunE(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, `"Hello World!" -> "Khoor Zruog!"`)
	assert.Contains(t, out, "[10, 15] [C F]")
	assert.Contains(t, out, "[1, 10] [Container Contained]")
	assert.Contains(t, out, "1,23,45,67,890.123")
	assert.Contains(t, out, "brute force buy 2 sell 5 loss 2 | optimized buy 2 sell 5 loss 2")
	assert.Contains(t, out, "brute force no solution | optimized no solution")
	assert.Contains(t, out, "[3, 8] [D E]", "strict threshold by default")

	cmd, buf = setup(t)
	cfg.Merge.Inclusive = true
	require.NoError(t, demoCmd.RunE(cmd, nil))
	assert.Contains(t, buf.String(), "[1, 5] [A B D E]", "demo honours merge.inclusive")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeTemp(t, "coursework.yaml", "caesar:\n  shift: 1\nlog:\n  level: error\n")
	t.Cleanup(func() {
		configPath = ""
		logger = zap.NewNop()
		cfg = config.Default()
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--config", path, "caesar", "encode", "abc"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "bcd\n", buf.String())
	assert.Equal(t, 1, cfg.Caesar.Shift)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	l, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
