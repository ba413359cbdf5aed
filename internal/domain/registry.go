package domain

import "iter"

// Registry is an append-only collection of test descriptors, iterated in
// exact declaration order. Descriptors are chained through a next pointer so
// registration is O(1) and entries are never moved. A Registry is never
// cleared or re-ordered at runtime; the process-wide default instance lives
// for the whole process.
type Registry struct {
	head  *Descriptor
	tail  *Descriptor
	count int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a descriptor to the tail of the registry. It is meant to
// be called at declaration time, before any test runs.
func (r *Registry) Register(d *Descriptor) {
	if r.tail != nil {
		r.tail.next = d
	} else {
		r.head = d
	}

	r.tail = d
	r.count++
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return r.count
}

// Executions returns the number of execution instances one unfiltered pass
// would produce: one per plain or fixture descriptor, one per combination
// for cartesian descriptors.
func (r *Registry) Executions() int {
	total := 0

	for d := range r.All() {
		if d.Kind == KindCartesian {
			total += d.Space.Size()
		} else {
			total++
		}
	}

	return total
}

// All returns a lazy, forward-only sequence of descriptors in registration
// order.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for d := r.head; d != nil; d = d.next {
			if !yield(d) {
				return
			}
		}
	}
}
