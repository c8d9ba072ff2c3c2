package json

import "sync"

// Allocator abstracts how Value nodes are obtained and released during
// parsing. The default implementation pools nodes with sync.Pool, mirroring
// the buffer-pool pattern the reflective marshaler below uses for its byte
// buffers: both trade a little bookkeeping for fewer allocations on the hot
// parse/marshal path.
type Allocator interface {
	Alloc() *Value
	Free(v *Value)
}

type poolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator returns an Allocator backed by a sync.Pool of Values.
func NewPoolAllocator() Allocator {
	return &poolAllocator{
		pool: sync.Pool{New: func() interface{} { return new(Value) }},
	}
}

func (p *poolAllocator) Alloc() *Value {
	return p.pool.Get().(*Value)
}

func (p *poolAllocator) Free(v *Value) {
	if v == nil {
		return
	}
	*v = Value{}
	p.pool.Put(v)
}

// defaultAllocator is used by Parse/ParseReader when no Allocator is given.
var defaultAllocator = NewPoolAllocator()

// bufferPool pools byte buffers used by the renderer and the reflective
// marshaler, grounded on the same sync.Pool pattern as Allocator above.
var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

func getBuffer() []byte {
	return (*bufferPool.Get().(*[]byte))[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) > 64*1024 {
		return
	}
	bufferPool.Put(&buf)
}
