package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequeEmpty(t *testing.T) {
	l := New[int]()
	assert.Equal(t, 0, l.Len())

	_, ok := l.PopFront()
	assert.False(t, ok)
}

func TestDequeBasic(t *testing.T) {
	l := New(1)
	l.PushBack(2)
	l.PushBack(3)
	assert.Equal(t, 3, l.Len())

	for want := 1; want <= 3; want++ {
		v, ok := l.PopFront()
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, 0, l.Len())
	_, ok := l.PopFront()
	assert.False(t, ok)
}

func TestDequeReuseAfterDrain(t *testing.T) {
	l := New(0)
	_, _ = l.PopFront()

	l.PushBack(7)
	l.PushBack(8)
	v, ok := l.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, l.Len())
}

func TestDequeRotate(t *testing.T) {
	l := New(0, 1, 2)
	var order []int
	for i := 0; i < 6; i++ {
		v, _ := l.PopFront()
		order = append(order, v)
		l.PushBack(v)
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, order)
	assert.Equal(t, 3, l.Len())
}
