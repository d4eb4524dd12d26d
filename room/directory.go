// room/directory.go
package room

import (
	"errors"
	"sync"

	"github.com/wfunc/quizpoker/game"
)

var ErrRoomNotFound = errors.New("room not found")

// Directory owns the canonical GameState of every room, keyed by room code.
// Rooms are created lazily on first contact and never reaped. Every write is
// a full replacement of the room's entry; nothing merges two states.
type Directory struct {
	mutex sync.RWMutex
	rooms map[string]*entry
}

// entry serializes the read-modify-write cycle of one room. Messages for the
// same room apply one at a time in arrival order even if the transport ever
// dispatches them from multiple goroutines; distinct rooms never contend.
type entry struct {
	mutex sync.Mutex
	state game.GameState
}

func NewDirectory() *Directory {
	return &Directory{
		rooms: make(map[string]*entry),
	}
}

// Get returns the current state of a room, if it exists.
func (d *Directory) Get(code string) (game.GameState, bool) {
	d.mutex.RLock()
	e, exists := d.rooms[code]
	d.mutex.RUnlock()
	if !exists {
		return game.GameState{}, false
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.state, true
}

// Put replaces a room's state wholesale, creating the room if needed.
func (d *Directory) Put(code string, state game.GameState) {
	e := d.entryFor(code, func() game.GameState { return state })
	e.mutex.Lock()
	e.state = state
	e.mutex.Unlock()
}

// GetOrCreate returns the room's current state, creating an empty room under
// the code on first contact. hostID and settings only apply at creation.
func (d *Directory) GetOrCreate(code, hostID string, s game.Settings) game.GameState {
	e := d.entryFor(code, func() game.GameState { return game.NewGame(code, hostID, s) })
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.state
}

// Update applies fn to the room's state inside the room's critical section
// and stores the result. If fn fails the stored state is left untouched and
// the error is returned with the pre-transition state.
func (d *Directory) Update(code string, fn func(game.GameState) (game.GameState, error)) (game.GameState, error) {
	d.mutex.RLock()
	e, exists := d.rooms[code]
	d.mutex.RUnlock()
	if !exists {
		return game.GameState{}, ErrRoomNotFound
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	next, err := fn(e.state)
	if err != nil {
		return e.state, err
	}
	e.state = next
	return next, nil
}

// Count returns the number of rooms ever created.
func (d *Directory) Count() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return len(d.rooms)
}

// Codes lists every room code in the directory.
func (d *Directory) Codes() []string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	codes := make([]string, 0, len(d.rooms))
	for code := range d.rooms {
		codes = append(codes, code)
	}
	return codes
}

func (d *Directory) entryFor(code string, initial func() game.GameState) *entry {
	d.mutex.RLock()
	e, exists := d.rooms[code]
	d.mutex.RUnlock()
	if exists {
		return e
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if e, exists = d.rooms[code]; exists {
		return e
	}
	e = &entry{state: initial()}
	d.rooms[code] = e
	return e
}
