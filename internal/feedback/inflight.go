package feedback

import "sync"

// inflightGuard prevents concurrent runs of the same AI operation for
// the same resume. Keys look like "hr-review:res-1".
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]struct{})}
}

// TryAcquire marks the key active, reporting false when it already is.
func (g *inflightGuard) TryAcquire(operation, resumeID string) bool {
	key := operation + ":" + resumeID
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// Release clears the key.
func (g *inflightGuard) Release(operation, resumeID string) {
	key := operation + ":" + resumeID
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
