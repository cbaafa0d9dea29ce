package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/amazego/internal/broadcast"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
	"github.com/vk/amazego/internal/testutil"
)

const manifest = `
maze "corridor" {
  fork_after = 2
  layout     = <<-EOT
    *******
    *S...G*
    *******
  EOT
}

graph "island" {
  start = 0
  goals = [2]
  node "0" { neighbors = [1] }
  node "1" { neighbors = [0] }
  node "2" {}
}
`

// newTestApp builds an App writing results to a buffer and logs to a SafeBuffer.
func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	a := NewApp(out, logs, c)
	t.Cleanup(func() {
		if os.Getenv("AMAZEGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))
	return path
}

func TestRun_Manifest(t *testing.T) {
	a, out, logs := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1, LogLevel: "debug"})

	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "corridor: path of 5 nodes (tasks="), lines[0])
	assert.Equal(t, "island: no path", lines[1])

	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "maze=corridor")
}

func TestRun_Name(t *testing.T) {
	a, out, _ := newTestApp(t, Config{MazePath: writeManifest(t), Name: "island", ForkAfter: -1})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "island: no path\n", out.String())

	a, _, _ = newTestApp(t, Config{MazePath: writeManifest(t), Name: "nope", ForkAfter: -1})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `maze "nope" not found (available: corridor, island)`)
}

func TestRun_RequirePath(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1, RequirePath: true})
	err := a.Run(context.Background())
	require.ErrorIs(t, err, ErrNoPath)
	assert.Contains(t, err.Error(), "1 of 2 mazes")
}

func TestRun_GenerateAndRender(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Generate: "11x7", Seed: 3, ForkAfter: 1, Render: true, NoColor: true})

	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "generated-11x7-seed3: path of "), text)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 1+7, "summary plus one line per row")
	assert.Contains(t, text, "•")
	assert.Contains(t, text, "█")
}

func TestRun_RenderGraphPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
graph "line" {
  start = 0
  goals = [2]
  node "0" { neighbors = [1] }
  node "1" { neighbors = [2] }
  node "2" {}
}
`), 0o600))

	a, out, _ := newTestApp(t, Config{MazePath: path, ForkAfter: 0, Render: true, NoColor: true})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "line: path of 3 nodes (tasks=1 visited=3)\n0 -> 1 -> 2\n", out.String())
}

func TestRun_Start(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hall.txt")
	require.NoError(t, os.WriteFile(path, []byte("S.*.G\n"), 0o600))

	start := nodeid.ID(3)
	a, out, _ := newTestApp(t, Config{MazePath: path, ForkAfter: 0, Start: &start})
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "hall: path of 2 nodes (tasks=1 visited=2)\n", out.String())

	wall := nodeid.ID(2)
	a, _, _ = newTestApp(t, Config{MazePath: path, ForkAfter: 0, Start: &wall})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start node 2 is not an open cell of hall")
}

func TestRun_LoadError(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: filepath.Join(t.TempDir(), "missing.hcl"), ForkAfter: -1})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load mazes")
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	mazes  []string
	moves  int
	done   []bool
	closed bool
}

func (f *fakeBroadcaster) PlayerCreated(player.ID, nodeid.ID) {}

func (f *fakeBroadcaster) PlayerMoved(player.ID, nodeid.ID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves++
}

func (f *fakeBroadcaster) SetMaze(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mazes = append(f.mazes, name)
}

func (f *fakeBroadcaster) Done(found bool, _ nodeid.Path, _, _ int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done = append(f.done, found)
}

func (f *fakeBroadcaster) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestRun_Broadcast(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1, SocketIOURL: "http://localhost:1"})
	fake := &fakeBroadcaster{}
	var gotURL string
	a.connect = func(_ context.Context, cfg broadcast.Config) (broadcaster, error) {
		gotURL = cfg.URL
		return fake, nil
	}

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, "http://localhost:1", gotURL)
	assert.Equal(t, []string{"corridor", "island"}, fake.mazes)
	assert.Equal(t, []bool{true, false}, fake.done)
	assert.Positive(t, fake.moves)
	assert.True(t, fake.closed)
}

func TestRun_BroadcastConnectError(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1, SocketIOURL: "http://localhost:1"})
	a.connect = func(context.Context, broadcast.Config) (broadcaster, error) {
		return nil, errors.New("refused")
	}

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect broadcaster: refused")
}

func TestRoutes(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1})
	require.NoError(t, a.Run(context.Background()))
	srv := httptest.NewServer(a.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), `amazego_searches_total{result="found"} 1`)
	assert.Contains(t, body.String(), `amazego_searches_total{result="not_found"} 1`)
}

func TestHealthcheckServerLifecycle(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1})
	ctx := context.Background()

	require.NoError(t, a.closeHealthcheckServer(ctx), "closing a server that never started is a no-op")
	require.NoError(t, a.startHealthcheckServer(ctx, freePort(t)))
	require.NotNil(t, a.httpServer)
	require.NoError(t, a.closeHealthcheckServer(ctx))
	assert.Nil(t, a.httpServer)
}

func TestHealthcheckServer_RapidRestart(t *testing.T) {
	a, _, _ := newTestApp(t, Config{MazePath: writeManifest(t), ForkAfter: -1})
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		require.NoError(t, a.startHealthcheckServer(ctx, 0))
		require.NoError(t, a.closeHealthcheckServer(ctx), "iteration %d", i)
		require.Nil(t, a.httpServer)
	}
}
