package ebmlio

import "fmt"

type entry struct {
	master bool
	name   string
}

// Registry tells the Reader which element IDs are masters. It is filled by
// the caller before parsing and only read while parsing. IDs that were never
// registered are not masters.
type Registry struct {
	m map[uint64]entry
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[uint64]entry)}
}

// Register records whether id is a master element. A later call for the
// same id replaces the earlier one.
func (r *Registry) Register(id uint64, master bool) {
	e := r.m[id]
	e.master = master
	r.m[id] = e
}

// RegisterName is Register plus a display name used by dumps and errors.
func (r *Registry) RegisterName(id uint64, master bool, name string) {
	r.m[id] = entry{master: master, name: name}
}

func (r *Registry) IsMaster(id uint64) bool {
	if r == nil {
		return false
	}
	return r.m[id].master
}

func (r *Registry) Known(id uint64) bool {
	if r == nil {
		return false
	}
	_, ok := r.m[id]
	return ok
}

// Name returns the registered name of id, or its hex form.
func (r *Registry) Name(id uint64) string {
	if r != nil {
		if e, ok := r.m[id]; ok && e.name != "" {
			return e.name
		}
	}
	return fmt.Sprintf("0x%X", id)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.m)
}

// Merge copies every entry of other into r, overwriting duplicates.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for id, e := range other.m {
		r.m[id] = e
	}
}
