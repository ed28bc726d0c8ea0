package attendance

import "sync"

// Registry memegang satu Workflow per sesi login. Workflow dibuat saat halaman
// absensi dibuka dan dibuang saat selesai/ditinggalkan.
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

// Get mengembalikan workflow sesi, membuat baru bila belum ada atau bila
// pemiliknya berganti (login ulang dengan employee lain pada sid sama).
func (r *Registry) Get(sid, employeeID string) *Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workflows[sid]
	if !ok || w.employeeID != employeeID {
		w = NewWorkflow(employeeID, r.gw)
		r.workflows[sid] = w
	}
	return w
}

// Drop menutup dan membuang workflow sesi.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.workflows[sid]; ok {
		w.Close()
		delete(r.workflows, sid)
	}
}
