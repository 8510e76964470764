package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/pathfind"
)

const smallGrid = `
grid:
  rows: 3
  columns: 3
  end: {row: 2, column: 2}
  expensive_percent: 0
replay:
  tick: 1ms
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// TestRun_PlainBoard prints the status line and the replayed board.
func TestRun_PlainBoard(t *testing.T) {
	out, err := execute(t, "run", "--algo", "bfs", "--config", writeConfig(t, smallGrid), "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "bfs: length 5, weight 4")
	assert.Contains(t, out, "  S  *  *\n  o  o  *\n  o  o  E")
}

// TestRun_Animate replays through the pacer and ends on the same board.
func TestRun_Animate(t *testing.T) {
	out, err := execute(t, "run", "--algo", "dijkstra", "--animate", "--config", writeConfig(t, smallGrid), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "\033[H\033[2J")
	assert.Contains(t, out, "dijkstra: length 5, weight 4")
}

// TestRun_JSON emits a machine-readable result.
func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "run", "--algo", "greedy", "--json", "--config", writeConfig(t, smallGrid), "--log-level", "error")
	require.NoError(t, err)

	var got runResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, pathfind.AlgoGreedy, got.Summary.Algorithm)
	assert.Equal(t, "current", got.Reference)
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(0,2)", "(1,2)", "(2,2)"}, got.Path)
}

// TestRun_Errors covers a bad algorithm and a bad config file.
func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--algo", "dfs", "--config", writeConfig(t, smallGrid))
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	_, err = execute(t, "run", "--config", writeConfig(t, "grid: {rows: 0}"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "run", "--log-format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "run", "--watch")
	assert.Error(t, err)
}

// TestCompare_JSON runs every algorithm once.
func TestCompare_JSON(t *testing.T) {
	out, err := execute(t, "compare", "--json", "--config", writeConfig(t, smallGrid), "--log-level", "error")
	require.NoError(t, err)

	var got []pathfind.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	for i, algo := range pathfind.Algorithms() {
		assert.Equal(t, algo, got[i].Algorithm)
		assert.True(t, got[i].Found)
	}
}

// TestCompare_Table renders one row per algorithm.
func TestCompare_Table(t *testing.T) {
	out, err := execute(t, "compare", "--algos", "bfs,astar", "--config", writeConfig(t, smallGrid), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "BFS")
	assert.Contains(t, out, "ASTAR")
	assert.NotContains(t, out, "DIJKSTRA")
}

// TestWatchConfig reruns after the file changes and stops with the context.
func TestWatchConfig(t *testing.T) {
	path := writeConfig(t, smallGrid)
	initial, err := config.Load(path)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen []string
	)
	changed := make(chan struct{}, 4)
	apply := func(cfg config.Config) error {
		mu.Lock()
		seen = append(seen, cfg.Search.Algorithm)
		mu.Unlock()
		select {
		case changed <- struct{}{}:
		default:
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchConfig(ctx, path, config.Default().Log.NewLogger(&bytes.Buffer{}), apply, initial)
	}()
	<-changed

	last := func() string {
		mu.Lock()
		defer mu.Unlock()
		return seen[len(seen)-1]
	}

	// the watcher may not be registered yet, and a truncating write can be
	// observed half-done; keep writing until the new algorithm shows up
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-changed:
			if last() == "bfs" {
				break wait
			}
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte(smallGrid+"search: {algorithm: bfs}\n"), 0o600))
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "astar", seen[0])
	assert.Contains(t, seen, "bfs")
}
