package list

import "github.com/larryhastings/big-sub001/bigerr"

// Direction is a cursor's iteration direction.
type Direction int

const (
	FWD Direction = iota
	REV
)

// Cursor is a first-class iterator handle over a list (spec.md §3).
// Every cursor increments its node's iter_refcount on creation and
// decrements it on Close or movement, reclaiming the node once the
// count reaches zero and the node is a TOMBSTONE (the protocol in
// spec.md §4.G).
type Cursor struct {
	node *Node
	dir  Direction
	list *List
}

func newCursor(list *List, node *Node, dir Direction) *Cursor {
	node.iterRefcount++
	return &Cursor{node: node, dir: dir, list: list}
}

// Head returns a forward cursor positioned at the HEAD sentinel.
func (l *List) Head() *Cursor { return newCursor(l, l.head, FWD) }

// Tail returns a reverse cursor positioned at the TAIL sentinel
// (the starting point for reverse iteration).
func (l *List) Tail() *Cursor { return newCursor(l, l.tail, REV) }

// Iter is equivalent to Head().
func (l *List) Iter() *Cursor { return l.Head() }

// Reversed is equivalent to Tail().
func (l *List) Reversed() *Cursor { return l.Tail() }

// release decrements the cursor's node's iter_refcount and reclaims
// the node if it is now an orphaned TOMBSTONE. Call when a cursor
// moves off a node or is discarded.
func (c *Cursor) release() {
	c.node.iterRefcount--
	maybeReclaim(c.node)
}

// Close releases the cursor's reference to its current node. A
// Cursor must be closed (or moved away from its final node) once the
// caller is done with it, or a TOMBSTONE it was the last reference to
// will never be reclaimed.
func (c *Cursor) Close() { c.release() }

func (c *Cursor) moveTo(n *Node) {
	c.release()
	n.iterRefcount++
	c.node = n
	c.list = n.owner
}

// IsSpecial reports whether the cursor sits on a sentinel or
// TOMBSTONE node.
func (c *Cursor) IsSpecial() bool { return c.node.kind != DATA }

// Special returns "special" when the cursor sits on a non-DATA node,
// or "" otherwise (spec.md §4.G).
func (c *Cursor) Special() string {
	if c.IsSpecial() {
		return "special"
	}
	return ""
}

// Value returns the cursor's current node's value, or
// SpecialNodeError if the cursor sits on a sentinel or TOMBSTONE.
func (c *Cursor) Value() (any, error) {
	if c.IsSpecial() {
		return nil, bigerr.SpecialNodeErrorf("cursor is on a %s node, not a data node", c.node.kind)
	}
	return c.node.value, nil
}

// SetValue assigns the cursor's current node's value.
func (c *Cursor) SetValue(v any) error {
	if c.IsSpecial() {
		return bigerr.SpecialNodeErrorf("cursor is on a %s node, not a data node", c.node.kind)
	}
	c.node.value = v
	return nil
}

// nextData returns the next DATA-or-sentinel node after n, skipping
// any number of adjacent TOMBSTONEs (spec.md §4.G step 3).
func nextData(n *Node) *Node {
	for n.next != nil && n.next.kind == TOMBSTONE {
		n = n.next
	}
	if n.next != nil {
		return n.next
	}
	return n
}

func prevData(n *Node) *Node {
	for n.prev != nil && n.prev.kind == TOMBSTONE {
		n = n.prev
	}
	if n.prev != nil {
		return n.prev
	}
	return n
}

// Next advances the cursor one DATA node forward (for a REV cursor,
// "forward" means toward TAIL), returning the new value. Raises
// UndefinedIndexError on reaching the terminal sentinel.
func (c *Cursor) Next() (any, error) {
	return c.step(1)
}

// Previous is the symmetric operation to Next.
func (c *Cursor) Previous() (any, error) {
	return c.step(-1)
}

func (c *Cursor) step(dir int) (any, error) {
	forward := (dir > 0) == (c.dir == FWD)
	var n *Node
	if forward {
		n = nextData(c.node)
	} else {
		n = prevData(c.node)
	}
	for n.kind == TOMBSTONE {
		if forward {
			n = nextData(n)
		} else {
			n = prevData(n)
		}
	}
	c.moveTo(n)
	if n.kind == HEAD || n.kind == TAIL {
		return nil, bigerr.UndefinedIndexErrorf("cursor reached the %s sentinel", n.kind)
	}
	return n.value, nil
}

// Before returns a new cursor offset by count DATA nodes toward HEAD,
// without consuming the current node.
func (c *Cursor) Before(count int) (*Cursor, error) {
	return c.peek(-count)
}

// After returns a new cursor offset by count DATA nodes toward TAIL.
func (c *Cursor) After(count int) (*Cursor, error) {
	return c.peek(count)
}

func (c *Cursor) peek(count int) (*Cursor, error) {
	n := c.node
	step := 1
	if count < 0 {
		step = -1
		count = -count
	}
	forward := (step > 0) == (c.dir == FWD)
	for i := 0; i < count; i++ {
		var next *Node
		if forward {
			next = nextData(n)
		} else {
			next = prevData(n)
		}
		if next.kind == HEAD || next.kind == TAIL {
			return nil, bigerr.UndefinedIndexErrorf("cursor offset crosses a sentinel")
		}
		n = next
	}
	return newCursor(n.owner, n, c.dir), nil
}

// Reset moves the cursor back to its starting sentinel (HEAD for a
// forward cursor, TAIL for a reverse cursor).
func (c *Cursor) Reset() {
	var n *Node
	if c.dir == FWD {
		n = c.list.head
	} else {
		n = c.list.tail
	}
	c.moveTo(n)
}

// Exhaust moves the cursor to its terminal sentinel.
func (c *Cursor) Exhaust() {
	var n *Node
	if c.dir == FWD {
		n = c.list.tail
	} else {
		n = c.list.head
	}
	c.moveTo(n)
}

// Find produces a new cursor at the first DATA node equal to value,
// scanning from just after the current position in the cursor's
// direction, or nil if exhausted.
func (c *Cursor) Find(value any) *Cursor {
	return c.Match(func(v any) bool { return v == value })
}

// Match is Find generalized to a predicate.
func (c *Cursor) Match(pred func(any) bool) *Cursor {
	n := c.node
	forward := c.dir == FWD
	for {
		if forward {
			n = nextData(n)
		} else {
			n = prevData(n)
		}
		if n.kind == HEAD || n.kind == TAIL {
			return nil
		}
		if n.kind == DATA && pred(n.value) {
			return newCursor(n.owner, n, c.dir)
		}
	}
}

// Truncate discards every node from the cursor's position to the
// forward terminus (inclusive of all nodes strictly after, not the
// cursor's own node), leaving the cursor on the terminal sentinel.
func (c *Cursor) Truncate() {
	c.truncateImpl(true)
}

// Rtruncate discards from the cursor's position to the reverse
// terminus.
func (c *Cursor) Rtruncate() {
	c.truncateImpl(false)
}

func (c *Cursor) truncateImpl(forward bool) {
	l := c.list
	l.withLock(func() {
		var stop *Node
		if forward {
			stop = l.tail
		} else {
			stop = l.head
		}
		var n *Node
		if forward {
			n = c.node.next
		} else {
			n = c.node.prev
		}
		for n != nil && n != stop {
			victim := n
			if forward {
				n = n.next
			} else {
				n = n.prev
			}
			l.removeNode(victim)
		}
		c.moveTo(stop)
	})
}

// Insert inserts value immediately after the cursor's position in its
// direction of travel (append-at-cursor semantics).
func (c *Cursor) Insert(value any) error {
	if c.node.kind == TOMBSTONE {
		return bigerr.SpecialNodeErrorf("cannot insert relative to a TOMBSTONE cursor")
	}
	l := c.list
	var err error
	l.withLock(func() {
		var before *Node
		if c.dir == FWD {
			before = c.node.next
		} else {
			before = c.node
		}
		insertBefore(before, value, l)
		l.length++
	})
	return err
}

// Append inserts value after the cursor's node in the cursor's
// direction of travel.
func (c *Cursor) Append(value any) error {
	return c.Insert(value)
}

// Prepend inserts value before the cursor's node in the cursor's
// direction of travel.
func (c *Cursor) Prepend(value any) error {
	if c.node.kind == TOMBSTONE {
		return bigerr.SpecialNodeErrorf("cannot insert relative to a TOMBSTONE cursor")
	}
	l := c.list
	l.withLock(func() {
		var before *Node
		if c.dir == FWD {
			before = c.node
		} else {
			before = c.node.next
		}
		insertBefore(before, value, l)
		l.length++
	})
	return nil
}

// Extend inserts every value from values, in order, via Append.
func (c *Cursor) Extend(values []any) error {
	for _, v := range values {
		if err := c.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Rextend inserts values in reverse order via Prepend, so that for
// both FWD and REV cursors, Extend(vs) and a loop of Append(v) over
// vs produce identical results (spec.md §4.G).
func (c *Cursor) Rextend(values []any) error {
	for i := len(values) - 1; i >= 0; i-- {
		if err := c.Prepend(values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns the value at the cursor's current position,
// moving the cursor forward to the next DATA node (or terminal
// sentinel).
func (c *Cursor) Pop() (any, error) {
	if c.IsSpecial() {
		return nil, bigerr.SpecialNodeErrorf("cursor is on a %s node, not a data node", c.node.kind)
	}
	l := c.list
	var v any
	l.withLock(func() {
		v = c.node.value
		victim := c.node
		var n *Node
		if c.dir == FWD {
			n = nextData(victim)
		} else {
			n = prevData(victim)
		}
		l.removeNode(victim)
		c.moveTo(n)
	})
	return v, nil
}
