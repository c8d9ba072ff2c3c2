package json

// Iterator is the common shape of Individual, ArrayIterator, and
// ObjectIterator: Valid reports whether Current may be called, Advance
// moves forward, and is a no-op once Valid is false.
type Iterator interface {
	Valid() bool
	Advance()
	Current() *Value
}

// Individual iterates exactly once over a single, non-aggregate Value.
// Valid is true until the first Advance, then false forever after.
type Individual struct {
	v     *Value
	valid bool
}

// NewIndividual returns an Iterator yielding v exactly once.
func NewIndividual(v *Value) *Individual {
	return &Individual{v: v, valid: true}
}

func (it *Individual) Valid() bool    { return it.valid }
func (it *Individual) Advance()       { it.valid = false }
func (it *Individual) Current() *Value { return it.v }

// ArrayIterator walks the elements of an Array Value in order.
type ArrayIterator struct {
	v   *Value
	pos int
}

// NewArrayIterator returns an Iterator over v's elements. v must be an Array.
func NewArrayIterator(v *Value) *ArrayIterator {
	return &ArrayIterator{v: v}
}

func (it *ArrayIterator) Valid() bool { return it.pos < len(it.v.arr) }
func (it *ArrayIterator) Advance() {
	if it.Valid() {
		it.pos++
	}
}
func (it *ArrayIterator) Current() *Value {
	if !it.Valid() {
		return nil
	}
	return it.v.arr[it.pos]
}

// Key returns the index of the element Current currently points at.
func (it *ArrayIterator) Key() int { return it.pos }

// ObjectIterator walks the members of an Object Value. Order follows the
// object's recorded key order (insertion order when available), which is
// not semantically significant per the JSON data model.
type ObjectIterator struct {
	v    *Value
	keys []string
	pos  int
}

// NewObjectIterator returns an Iterator over v's members. v must be an Object.
func NewObjectIterator(v *Value) *ObjectIterator {
	return &ObjectIterator{v: v, keys: v.Keys()}
}

func (it *ObjectIterator) Valid() bool { return it.pos < len(it.keys) }
func (it *ObjectIterator) Advance() {
	if it.Valid() {
		it.pos++
	}
}
func (it *ObjectIterator) Current() *Value {
	if !it.Valid() {
		return nil
	}
	return it.v.obj[it.keys[it.pos]]
}

// Key returns the member name Current currently points at.
func (it *ObjectIterator) Key() string {
	if !it.Valid() {
		return ""
	}
	return it.keys[it.pos]
}

// begin returns the Iterator appropriate to v's variant: an ArrayIterator
// for Array, an ObjectIterator for Object, or an Individual for anything else.
func begin(v *Value) Iterator {
	switch v.kind {
	case KindArray:
		return NewArrayIterator(v)
	case KindObject:
		return NewObjectIterator(v)
	default:
		return NewIndividual(v)
	}
}

// PreOrderIterator performs a pre-order, depth-first walk of a Value tree:
// a node is yielded before its children, and aggregate children are walked
// left to right. It maintains an explicit stack of Iterators rather than
// recursing, so it can walk trees deeper than the Go call stack would
// comfortably allow.
type PreOrderIterator struct {
	stack []Iterator
}

// NewPreOrderIterator returns a PreOrderIterator rooted at v.
func NewPreOrderIterator(v *Value) *PreOrderIterator {
	return &PreOrderIterator{stack: []Iterator{NewIndividual(v)}}
}

func (p *PreOrderIterator) Valid() bool {
	return len(p.stack) > 0
}

func (p *PreOrderIterator) Current() *Value {
	if !p.Valid() {
		return nil
	}
	return p.stack[len(p.stack)-1].Current()
}

// Advance moves to the next node in pre-order. If the current node is an
// aggregate, its children are pushed (visited next); otherwise the top
// iterator advances, popping and advancing ancestors as they're exhausted.
func (p *PreOrderIterator) Advance() {
	if !p.Valid() {
		return
	}
	cur := p.Current()
	if cur != nil && (cur.kind == KindArray || cur.kind == KindObject) {
		if top, ok := p.stack[len(p.stack)-1].(*Individual); ok {
			top.Advance()
		}
		child := begin(cur)
		p.stack = append(p.stack, child)
		if child.Valid() {
			return
		}
		// Empty aggregate: its iterator is exhausted the moment it's
		// pushed, so fall through to the pop loop instead of leaving
		// Current() pointing at a dead top-of-stack.
	}

	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		top.Advance()
		if top.Valid() {
			return
		}
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// makePreOrderIterator returns a PreOrderIterator rooted at v, matching
// the external-interface naming of the originating specification.
func makePreOrderIterator(v *Value) *PreOrderIterator {
	return NewPreOrderIterator(v)
}
