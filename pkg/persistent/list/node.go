package list

// node is one link of a list. The nil *node is the empty marker that ends
// every chain; it carries no item.
type node[T any] struct {
	item T
	next *node[T]
}

// emptyNode returns the empty marker. All calls return the same value.
func emptyNode[T any]() *node[T] {
	return nil
}

// buildNode returns a new node holding item in front of next.
func buildNode[T any](item T, next *node[T]) *node[T] {
	return &node[T]{item, next}
}

func (n *node[T]) isEmpty() bool {
	return n == nil
}

// first returns the item of n. It returns the zero value and false on the
// empty marker.
func (n *node[T]) first() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.item, true
}

// rest returns the node after n. The empty marker is its own rest.
func (n *node[T]) rest() *node[T] {
	if n == nil {
		return nil
	}
	return n.next
}
