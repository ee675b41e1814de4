package gateway

import (
	"sync"

	"github.com/google/uuid"

	"github.com/pawhaven/pawhaven/internal/appearance"
	"github.com/pawhaven/pawhaven/internal/selection"
)

// visitorState holds the per-visitor UI state the SPA kept in browser
// memory: the compare selection and the display mode.
type visitorState struct {
	selection  *selection.Store
	appearance *appearance.Store
}

// visitorRegistry hands out state per visitor cookie. State lives for the
// process lifetime; losing it on restart mirrors the SPA losing in-memory
// state on reload.
type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitorState
}

func newVisitorRegistry() *visitorRegistry {
	return &visitorRegistry{visitors: map[string]*visitorState{}}
}

func (r *visitorRegistry) get(id string) *visitorState {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.visitors[id]
	if !ok {
		state = &visitorState{
			selection:  selection.New(),
			appearance: appearance.New(),
		}
		r.visitors[id] = state
	}
	return state
}

func newVisitorID() string {
	return uuid.NewString()
}
