// Package list implements persistent list.
//
// A List is never modified once created. Prepend returns a new List that
// shares all of the nodes of the old one, so old versions stay valid and may
// be used from any number of goroutines without synchronization.
package list

// List is a persistent list. The zero value is a valid empty list.
type List[T any] struct {
	head *node[T]
}

// Empty returns the empty list. All calls with the same type parameter return
// equal values.
func Empty[T any]() List[T] {
	return List[T]{emptyNode[T]()}
}

// Prepend returns a new list with an additional value in the front. The
// receiver is left unchanged.
func (l List[T]) Prepend(item T) List[T] {
	return List[T]{buildNode(item, l.head)}
}
