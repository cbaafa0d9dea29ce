// Package broadcast publishes player activity to a socket.io server so a
// search can be watched live.
package broadcast

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vk/amazego/internal/ctxlog"
	"github.com/vk/amazego/internal/nodeid"
	"github.com/vk/amazego/internal/player"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Event names emitted by the client.
const (
	EventPlayerNew  = "player:new"
	EventPlayerMove = "player:move"
	EventSearchDone = "search:done"
)

// ConnectTimeout bounds how long Connect waits for the server.
const ConnectTimeout = 15 * time.Second

// Config describes the socket.io endpoint.
type Config struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
}

// PlayerEvent is the payload of player:new and player:move.
type PlayerEvent struct {
	Maze   string `json:"maze"`
	Player int    `json:"player"`
	Node   int    `json:"node"`
	Seq    int64  `json:"seq"`
}

// SearchDone is the payload of search:done.
type SearchDone struct {
	Maze    string `json:"maze"`
	Found   bool   `json:"found"`
	Path    []int  `json:"path"`
	Tasks   int64  `json:"tasks"`
	Visited int64  `json:"visited"`
}

// Client emits search events. It implements player.Observer and is safe for
// concurrent use.
type Client struct {
	mu      sync.Mutex
	emit    func(event string, payload any)
	close   func()
	maze    string
	seq     atomic.Int64
	dropped atomic.Int64
}

var _ player.Observer = (*Client)(nil)

// Connect dials the server over websocket and waits for the connection to be
// acknowledged, ctx to end, or ConnectTimeout to pass.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	logger := ctxlog.FromContext(ctx).With("component", "broadcast", "url", cfg.URL)
	logger.Info("Connecting to socket.io server...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	report := func(err error) {
		select {
		case connectChan <- err:
		default:
		}
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected.", "sid", io.Id())
		report(nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		report(err)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(ConnectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", ConnectTimeout)
	}

	logger.Info("📡 Broadcasting player events.")
	return newClient(
		func(event string, payload any) { io.Emit(event, payload) },
		func() { io.Disconnect() },
	), nil
}

// newClient builds a Client around an emit function.
func newClient(emit func(string, any), closeFn func()) *Client {
	return &Client{emit: emit, close: closeFn}
}

// SetMaze names the maze that following events belong to.
func (c *Client) SetMaze(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maze = name
}

// send builds and emits one event. The socket write happens outside c.mu so
// concurrent tasks are not serialized behind each other's emits.
func (c *Client) send(event string, payload func(maze string) any) {
	c.mu.Lock()
	emit, maze := c.emit, c.maze
	c.mu.Unlock()

	if emit == nil {
		c.dropped.Add(1)
		return
	}
	emit(event, payload(maze))
}

// PlayerCreated emits player:new.
func (c *Client) PlayerCreated(id player.ID, start nodeid.ID) {
	c.send(EventPlayerNew, func(maze string) any {
		return PlayerEvent{Maze: maze, Player: int(id), Node: int(start), Seq: c.seq.Add(1)}
	})
}

// PlayerMoved emits player:move.
func (c *Client) PlayerMoved(id player.ID, to nodeid.ID) {
	c.send(EventPlayerMove, func(maze string) any {
		return PlayerEvent{Maze: maze, Player: int(id), Node: int(to), Seq: c.seq.Add(1)}
	})
}

// Done emits search:done.
func (c *Client) Done(found bool, path nodeid.Path, tasks, visited int64) {
	ints := make([]int, len(path))
	for i, n := range path {
		ints[i] = int(n)
	}
	c.send(EventSearchDone, func(maze string) any {
		return SearchDone{Maze: maze, Found: found, Path: ints, Tasks: tasks, Visited: visited}
	})
}

// Dropped returns how many events were discarded after Close.
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Close disconnects. Later events are dropped.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.close != nil {
		c.close()
	}
	c.emit = nil
	c.close = nil
	return nil
}
