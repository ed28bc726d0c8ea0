package adminreview

import "sync"

// Registry memegang satu review workflow per sesi admin.
type Registry struct {
	mu        sync.Mutex
	workflows map[string]*Workflow
	gw        Gateway
}

func NewRegistry(gw Gateway) *Registry {
	return &Registry{
		workflows: make(map[string]*Workflow),
		gw:        gw,
	}
}

func (r *Registry) Get(sid string) *Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workflows[sid]
	if !ok {
		w = NewWorkflow(r.gw)
		r.workflows[sid] = w
	}
	return w
}

func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workflows, sid)
}
