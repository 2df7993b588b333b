package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"intraeng/internal/config"
	"intraeng/internal/ranking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "test",
		Console: config.ConsoleConfig{
			Prompt: "> ",
			Output: config.OutputTable,
		},
	}
}

func newTestApp(cfg *config.Config) *App {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDemo(t *testing.T) {
	a := newTestApp(testConfig())

	var buf bytes.Buffer
	require.NoError(t, a.Demo(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Enrolled Carlos Silva in Engenharia Civil")
	assert.Contains(t, out, "Error: age must be between 16 and 60, got 15")
	assert.Contains(t, out, "Winning class: Engenharia Civil")
	assert.Less(t, strings.Index(out, "> ranking"), strings.LastIndex(out, "Engenharia Mecânica"))

	// enrollment never feeds the ranking
	assert.Len(t, a.registry.List(context.Background()), 1)
	assert.Equal(t, 2, a.ranking.Len())
}

func TestDemo_Cancelled(t *testing.T) {
	a := newTestApp(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := a.Demo(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNew_PresetClasses(t *testing.T) {
	cfg := testConfig()
	cfg.Ranking.Classes = []string{"Engenharia Civil", "Engenharia Naval"}

	a := newTestApp(cfg)

	assert.Equal(t, []ranking.Standing{
		{ClassName: "Engenharia Civil", Score: 0},
		{ClassName: "Engenharia Naval", Score: 0},
	}, a.ranking.List())
	assert.Equal(t, "Engenharia Civil", a.ranking.WinningClass())
}
