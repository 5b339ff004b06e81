package deque

type node[T any] struct {
	value T
	next  *node[T]
}

// Deque is a linked FIFO ready queue. It is not safe for concurrent use.
type Deque[T any] struct {
	len   int
	front *node[T]
	back  *node[T]
}

func New[T any](values ...T) *Deque[T] {
	d := &Deque[T]{}
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if d.back == nil {
		d.front = n
	} else {
		d.back.next = n
	}
	d.back = n

	d.len++
}

// PopFront removes and returns the front value. ok is false when the deque is empty.
func (d *Deque[T]) PopFront() (v T, ok bool) {
	if d.len == 0 {
		return v, false
	}
	n := d.front
	d.front = n.next
	if d.front == nil {
		d.back = nil
	}

	d.len--
	return n.value, true
}

func (d *Deque[T]) Len() int {
	return d.len
}
