package list

import (
	"reflect"
	"sort"
	"sync"

	"github.com/larryhastings/big-sub001/bigerr"
)

// Locker is the scoped-resource lock protocol a caller-supplied lock
// must satisfy (spec.md §5): plain Lock/Unlock, matching sync.Locker
// so *sync.Mutex works directly.
type Locker interface {
	Lock()
	Unlock()
}

// List is the doubly-linked list (spec.md §3). The zero value is not
// usable; construct with New.
type List struct {
	head, tail *Node
	length     int
	lock       Locker
}

// New returns a new list holding values in order (empty if none).
// lock is nil (unlocked), a library-allocated mutex (pass &sync.Mutex{}
// yourself, or omit for none), or any caller-supplied Locker; multiple
// lists may share the same lock.
func New(lock Locker, values ...any) *List {
	l := &List{}
	l.head = &Node{kind: HEAD, owner: l}
	l.tail = &Node{kind: TAIL, owner: l}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.lock = lock
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// NewMutex is a convenience for "a library-allocated mutex" from
// spec.md §5.
func NewMutex() *sync.Mutex { return &sync.Mutex{} }

func (l *List) withLock(fn func()) {
	if l.lock != nil {
		l.lock.Lock()
		defer l.lock.Unlock()
	}
	fn()
}

// Len returns the count of DATA nodes (spec.md §3).
func (l *List) Len() int {
	var n int
	l.withLock(func() { n = l.length })
	return n
}

func (l *List) firstData() *Node {
	n := l.head.next
	for n.kind == TOMBSTONE {
		n = n.next
	}
	if n == l.tail {
		return nil
	}
	return n
}

func (l *List) lastData() *Node {
	n := l.tail.prev
	for n.kind == TOMBSTONE {
		n = n.prev
	}
	if n == l.head {
		return nil
	}
	return n
}

// nodeAt returns the DATA node at logical index i (negative counts
// from the end), or nil with an error if out of range.
func (l *List) nodeAt(i int) (*Node, error) {
	n := l.length
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, bigerr.UndefinedIndexErrorf("list index %d out of range (length %d)", i, n)
	}
	cur := l.head.next
	idx := -1
	for cur != l.tail {
		if cur.kind == DATA {
			idx++
			if idx == i {
				return cur, nil
			}
		}
		cur = cur.next
	}
	return nil, bigerr.UndefinedIndexErrorf("list index %d out of range (length %d)", i, n)
}

// Get returns the value at index i.
func (l *List) Get(i int) (any, error) {
	var v any
	var err error
	l.withLock(func() {
		n, e := l.nodeAt(i)
		if e != nil {
			err = e
			return
		}
		v = n.value
	})
	return v, err
}

// Set assigns the value at index i.
func (l *List) Set(i int, value any) error {
	var err error
	l.withLock(func() {
		n, e := l.nodeAt(i)
		if e != nil {
			err = e
			return
		}
		n.value = value
	})
	return err
}

// Append adds value at the end of the list.
func (l *List) Append(value any) {
	l.withLock(func() {
		insertBefore(l.tail, value, l)
		l.length++
	})
}

// Prepend adds value at the start of the list.
func (l *List) Prepend(value any) {
	l.withLock(func() {
		insertBefore(l.head.next, value, l)
		l.length++
	})
}

// Insert inserts value so that it becomes element i (spec.md §4.G).
func (l *List) Insert(i int, value any) error {
	var err error
	l.withLock(func() {
		n := l.length
		if i < 0 {
			i += n
			if i < 0 {
				i = 0
			}
		}
		if i >= n {
			insertBefore(l.tail, value, l)
			l.length++
			return
		}
		target, e := l.nodeAt(i)
		if e != nil {
			err = e
			return
		}
		insertBefore(target, value, l)
		l.length++
	})
	return err
}

// Extend appends every value from values, in order.
func (l *List) Extend(values []any) {
	for _, v := range values {
		l.Append(v)
	}
}

// Rextend is extend via Prepend in reverse order: values end up at
// the start of the list in their original order (values[0] first),
// the opposite of repeated single-value Prepend calls in iteration
// order.
func (l *List) Rextend(values []any) {
	for i := len(values) - 1; i >= 0; i-- {
		l.Prepend(values[i])
	}
}

// Values returns a snapshot slice of every DATA node's value, in
// forward order.
func (l *List) Values() []any {
	var out []any
	l.withLock(func() {
		out = make([]any, 0, l.length)
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind == DATA {
				out = append(out, n.value)
			}
		}
	})
	return out
}

// ReversedValues returns a snapshot slice in reverse order.
func (l *List) ReversedValues() []any {
	var out []any
	l.withLock(func() {
		out = make([]any, 0, l.length)
		for n := l.tail.prev; n != l.head; n = n.prev {
			if n.kind == DATA {
				out = append(out, n.value)
			}
		}
	})
	return out
}

// Clear removes every DATA node. Nodes still referenced by an
// outstanding cursor become TOMBSTONEs retained in the chain so those
// cursors stay valid (spec.md §4.G's clear contract); every other
// node is unlinked and freed.
func (l *List) Clear() {
	l.withLock(func() {
		n := l.head.next
		for n != l.tail {
			next := n.next
			if n.kind == DATA {
				if n.iterRefcount > 0 {
					n.kind = TOMBSTONE
					n.value = nil
				} else {
					n.unlink()
					releaseNode(n)
				}
			}
			n = next
		}
		l.length = 0
	})
}

// Find returns the index of the first DATA node equal to value (Go
// equality via ==, or a provided predicate through Match), or
// (-1, error) if not found.
func (l *List) Find(value any) (int, error) {
	var idx = -1
	l.withLock(func() {
		i := -1
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind != DATA {
				continue
			}
			i++
			if n.value == value {
				idx = i
				return
			}
		}
	})
	if idx < 0 {
		return -1, bigerr.LookupErrorf("value not found")
	}
	return idx, nil
}

// Match returns the index of the first DATA node for which pred
// returns true.
func (l *List) Match(pred func(any) bool) (int, error) {
	var idx = -1
	l.withLock(func() {
		i := -1
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind != DATA {
				continue
			}
			i++
			if pred(n.value) {
				idx = i
				return
			}
		}
	})
	if idx < 0 {
		return -1, bigerr.LookupErrorf("no matching value found")
	}
	return idx, nil
}

// Remove removes the first DATA node equal to value, or returns a
// LookupError (and removes nothing) if there is none. There is no
// default-value form.
func (l *List) Remove(value any) error {
	idx, err := l.Find(value)
	if err != nil {
		return err
	}
	_, err = l.popAt(idx)
	return err
}

// Pop removes and returns the value at index (-1 is the last element).
func (l *List) Pop(index int) (any, error) {
	return l.popAt(index)
}

func (l *List) popAt(index int) (any, error) {
	var v any
	var err error
	l.withLock(func() {
		n, e := l.nodeAt(index)
		if e != nil {
			err = e
			return
		}
		v = n.value
		l.removeNode(n)
	})
	return v, err
}

// removeNode logically removes n: if referenced by a live cursor it
// becomes a TOMBSTONE, otherwise it is unlinked and freed immediately.
// Caller must hold l.lock.
func (l *List) removeNode(n *Node) {
	if n.kind != DATA {
		return
	}
	l.length--
	if n.iterRefcount > 0 {
		n.kind = TOMBSTONE
		n.value = nil
		return
	}
	n.unlink()
	releaseNode(n)
}

// Count returns how many DATA nodes equal value.
func (l *List) Count(value any) int {
	var c int
	l.withLock(func() {
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind == DATA && n.value == value {
				c++
			}
		}
	})
	return c
}

// Reverse reverses the list's DATA node order in place.
func (l *List) Reverse() {
	l.withLock(func() {
		values := make([]any, 0, l.length)
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind == DATA {
				values = append(values, n.value)
			}
		}
		idx := 0
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind == DATA {
				n.value = values[len(values)-1-idx]
				idx++
			}
		}
	})
}

// Sort sorts DATA node values using less, a total order over the
// stored values (callers know their concrete value type).
func (l *List) Sort(less func(a, b any) bool) {
	l.withLock(func() {
		values := make([]any, 0, l.length)
		var nodes []*Node
		for n := l.head.next; n != l.tail; n = n.next {
			if n.kind == DATA {
				values = append(values, n.value)
				nodes = append(nodes, n)
			}
		}
		sort.SliceStable(values, func(i, j int) bool { return less(values[i], values[j]) })
		for i, n := range nodes {
			n.value = values[i]
		}
	})
}

// Rotate rotates the list by n positions: n>0 moves the last n
// elements to the front; n<0 moves the first |n| elements to the
// back.
func (l *List) Rotate(n int) {
	ln := l.Len()
	if ln == 0 {
		return
	}
	n = ((n % ln) + ln) % ln
	if n == 0 {
		return
	}
	l.withLock(func() {
		values := make([]any, 0, l.length)
		var nodes []*Node
		for nd := l.head.next; nd != l.tail; nd = nd.next {
			if nd.kind == DATA {
				values = append(values, nd.value)
				nodes = append(nodes, nd)
			}
		}
		rotated := make([]any, len(values))
		for i := range values {
			rotated[(i+n)%len(values)] = values[i]
		}
		for i, nd := range nodes {
			nd.value = rotated[i]
		}
	})
}

// Truncate discards every DATA node (equivalent to Clear, exposed
// separately since cursor.truncate is scoped to a position while
// List.Truncate always clears the whole list).
func (l *List) Truncate() { l.Clear() }

// Cut extracts the DATA node range [start, stop) into a new list,
// transferring ownership of the moved nodes (spec.md §4.G). Missing
// start (pass -1 for "unset" is not distinguishable from a real
// index, so Cut takes *int) means the first data node; missing stop
// means past the last.
func (l *List) Cut(start, stop *int, lock Locker) (*List, error) {
	return l.cutImpl(start, stop, lock, false)
}

// Rcut is Cut scanning backward: start is the inclusive index of the
// last node moved (missing means the last data node) and stop the
// exclusive index reached going toward the head (missing means past
// the first data node); the result list stores nodes in original
// forward order.
func (l *List) Rcut(start, stop *int, lock Locker) (*List, error) {
	return l.cutImpl(start, stop, lock, true)
}

func (l *List) cutImpl(start, stop *int, lock Locker, reverse bool) (*List, error) {
	var result *List
	var err error
	l.withLock(func() {
		n := l.length
		s, e := 0, n
		if start != nil {
			s = *start
			if s < 0 {
				s += n
			}
		}
		if stop != nil {
			e = *stop
			if e < 0 {
				e += n
			}
		}
		if reverse {
			// Convert the backward (inclusive start, exclusive stop)
			// pair to the equivalent forward [s, e).
			fs, fe := 0, n
			if stop != nil {
				fs = e + 1
			}
			if start != nil {
				fe = s + 1
			}
			s, e = fs, fe
		}
		if s < 0 {
			s = 0
		}
		if e > n {
			e = n
		}
		if e < s {
			err = bigerr.ArgumentValueErrorf("cut: stop %d precedes start %d", e, s)
			return
		}
		result = New(lock)
		if s == e {
			return
		}
		first, ferr := l.nodeAt(s)
		if ferr != nil {
			err = ferr
			return
		}
		count := e - s
		nodes := make([]*Node, 0, count)
		cur := first
		for len(nodes) < count {
			nodes = append(nodes, cur)
			cur = cur.next
		}
		for _, nd := range nodes {
			nd.unlink()
			l.length--
		}
		for _, nd := range nodes {
			nd.owner = result
			insertAtTailNode(result, nd)
			result.length++
		}
	})
	return result, err
}

// insertAtTailNode splices an already-detached node in just before
// dst's tail sentinel, reusing it (not a fresh pool node) so any
// cursor referencing it keeps referencing the same *Node, now owned
// by dst — this is what makes a moved cursor "follow" its node to the
// destination list (spec.md §4.G's cut/splice iterator contract).
func insertAtTailNode(dst *List, n *Node) {
	n.prev = dst.tail.prev
	n.next = dst.tail
	dst.tail.prev.next = n
	dst.tail.prev = n
}

func insertBeforeNode(before *Node, n *Node) {
	n.prev = before.prev
	n.next = before
	before.prev.next = n
	before.prev = n
}

// Splice moves all non-sentinel nodes of other into l, just before
// where's cursor position (or at l's tail when where is nil). other
// must not be l; on completion other is empty.
func (l *List) Splice(other *List, where *Cursor) error {
	return spliceImpl(l, other, where, false)
}

// Rsplice is the mirror image of Splice: moved nodes are inserted in
// reverse order, and the default insertion point (when where is nil)
// is the head rather than the tail.
func (l *List) Rsplice(other *List, where *Cursor) error {
	return spliceImpl(l, other, where, true)
}

func spliceImpl(l, other *List, where *Cursor, reverse bool) error {
	if l == other {
		return bigerr.ArgumentValueErrorf("splice: other must not be the same list")
	}
	first, second := l, other
	if pointerOf(other.lock) < pointerOf(l.lock) {
		first, second = other, l
	}
	lockBoth := func(fn func()) {
		if first.lock != nil {
			first.lock.Lock()
			defer first.lock.Unlock()
		}
		if second.lock != nil && second.lock != first.lock {
			second.lock.Lock()
			defer second.lock.Unlock()
		}
		fn()
	}

	var insertPoint *Node
	lockBoth(func() {
		if where != nil {
			insertPoint = where.node
		} else if reverse {
			insertPoint = l.head.next
		} else {
			insertPoint = l.tail
		}

		var nodes []*Node
		for n := other.head.next; n != other.tail; n = n.next {
			nodes = append(nodes, n)
		}
		for _, n := range nodes {
			n.unlink()
		}
		other.length = 0

		if reverse {
			for i := len(nodes) - 1; i >= 0; i-- {
				n := nodes[i]
				n.owner = l
				insertBeforeNode(insertPoint, n)
				if n.kind == DATA {
					l.length++
				}
			}
		} else {
			for _, n := range nodes {
				n.owner = l
				insertBeforeNode(insertPoint, n)
				if n.kind == DATA {
					l.length++
				}
			}
		}
	})
	return nil
}

// pointerOf extracts an ordering key for a lock, used to acquire two
// locks in ascending id(lock) order (spec.md §5).
func pointerOf(l Locker) uintptr {
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return v.Pointer()
	default:
		return 0
	}
}
