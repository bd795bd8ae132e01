package urx

import "sync"

// hooks collects completion hooks and fires them exactly once. Hooks added
// after firing run immediately.
type hooks struct {
	mu       sync.Mutex
	slice    []CompleteHook
	finished bool
}

func (h *hooks) Add(hook CompleteHook) {
	h.mu.Lock()
	if h.finished {
		h.mu.Unlock()
		hook()
		return
	}
	h.slice = append(h.slice, hook)
	h.mu.Unlock()
}

func (h *hooks) callHooks() {
	h.mu.Lock()
	if h.finished {
		h.mu.Unlock()
		return
	}
	h.finished = true
	fired := h.slice
	h.slice = nil
	h.mu.Unlock()
	for _, hook := range fired {
		hook()
	}
}

func (h *hooks) isFinished() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finished
}
