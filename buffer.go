package charts3d

import (
	"sort"
)

// buffer collects the primitives of one frame. It is truncated, not released,
// between frames so its backing array is reused.
type buffer[T any] struct {
	items []T
}

func (b *buffer[T]) reset() {
	clear(b.items)
	b.items = b.items[:0]
}

func (b *buffer[T]) push(item T) {
	b.items = append(b.items, item)
}

func (b *buffer[T]) Len() int {
	return len(b.items)
}

// farFirst orders the items by decreasing depth so that drawing them in order
// paints the farthest first. Items at equal depth keep their insertion order.
func (b *buffer[T]) farFirst(depth func(T) float64) {
	sort.SliceStable(b.items, func(i, j int) bool {
		return depth(b.items[i]) > depth(b.items[j])
	})
}
