// Package player tracks the presence markers ("players") that search tasks
// move through a maze. Each task that starts exploring registers one player
// and moves only that player.
package player

import (
	"sort"
	"sync"

	"github.com/vk/amazego/internal/nodeid"
)

// ID identifies a registered player. IDs start at 1.
type ID int

// Observer is notified of every registration and move. Implementations
// must be safe for concurrent use; calls arrive from many tasks at once.
type Observer interface {
	PlayerCreated(id ID, start nodeid.ID)
	PlayerMoved(id ID, to nodeid.ID)
}

// Player is a snapshot of one presence marker.
type Player struct {
	ID      ID
	Start   nodeid.ID
	Current nodeid.ID
	Trail   []nodeid.ID
}

// Registry owns all players of one maze.
type Registry struct {
	mu        sync.RWMutex
	nextID    ID
	players   map[ID]*Player
	observers []Observer
	keepTrail bool
}

// NewRegistry creates an empty registry. When keepTrail is true every move
// is appended to the player's trail, which rendering uses.
func NewRegistry(keepTrail bool) *Registry {
	return &Registry{
		players:   make(map[ID]*Player),
		keepTrail: keepTrail,
	}
}

// Observe adds an observer. It is meant to be called before a search starts.
func (r *Registry) Observe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// NewPlayer registers a player standing on start and returns its ID.
func (r *Registry) NewPlayer(start nodeid.ID) ID {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	p := &Player{ID: id, Start: start, Current: start}
	if r.keepTrail {
		p.Trail = []nodeid.ID{start}
	}
	r.players[id] = p
	observers := r.observers
	r.mu.Unlock()

	for _, o := range observers {
		o.PlayerCreated(id, start)
	}
	return id
}

// Move places player id on node. Unknown IDs are ignored.
func (r *Registry) Move(id ID, node nodeid.ID) {
	r.mu.Lock()
	p, ok := r.players[id]
	if !ok {
		r.mu.Unlock()
		return
	}
	p.Current = node
	if r.keepTrail && (len(p.Trail) == 0 || p.Trail[len(p.Trail)-1] != node) {
		p.Trail = append(p.Trail, node)
	}
	observers := r.observers
	r.mu.Unlock()

	for _, o := range observers {
		o.PlayerMoved(id, node)
	}
}

// Count returns the number of registered players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Players returns a copy of every player, ordered by ID.
func (r *Registry) Players() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		cp := *p
		cp.Trail = append([]nodeid.ID(nil), p.Trail...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
