package object

// Record is a heap-allocated instance of a user-defined type: a map
// from field name to its current value.
type Record struct {
	TypeName string
	Fields   map[string]Value
}

// Heap stores every record object created by `new T` for the life of
// one program run. Identifiers are issued by a monotonically
// increasing counter and never reused; there is no collection (spec.md
// §1, §3).
type Heap struct {
	objects map[int]*Record
	nextID  int
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{objects: map[int]*Record{}}
}

// Alloc creates a new record of the given type name with the given
// field values and returns its freshly assigned identifier.
func (h *Heap) Alloc(typeName string, fields map[string]Value) int {
	id := h.nextID
	h.nextID++
	h.objects[id] = &Record{TypeName: typeName, Fields: fields}
	return id
}

// Get returns the record stored at id. The second result is false if
// id does not name a live object, which should never happen for a
// well-typed program since identifiers are never reused or freed.
func (h *Heap) Get(id int) (*Record, bool) {
	r, ok := h.objects[id]
	return r, ok
}
