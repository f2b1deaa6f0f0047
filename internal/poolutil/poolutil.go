package poolutil

// SlicePool recycles slices so hot loops can reuse their backing arrays.
// Slices are returned with zero length. A full pool drops what is put back.
type SlicePool[T any] struct {
	// MaxRetainCap bounds the capacity of slices kept for reuse, 0 means no bound.
	MaxRetainCap int
	initialCap   int
	pool         chan []T
}

func NewSlicePool[T any](size, initialCap int) *SlicePool[T] {
	return &SlicePool[T]{
		initialCap: initialCap,
		pool:       make(chan []T, size),
	}
}

func (p *SlicePool[T]) Get() []T {
	select {
	case item := <-p.pool:
		return item
	default:
		return make([]T, 0, p.initialCap)
	}
}

func (p *SlicePool[T]) Put(item []T) {
	if item == nil || (p.MaxRetainCap > 0 && cap(item) > p.MaxRetainCap) {
		return
	}
	clear(item)
	select {
	case p.pool <- item[:0]:
	default:
	}
}
