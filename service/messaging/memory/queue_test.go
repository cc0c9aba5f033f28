package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	queue := NewQueue[int]()
	for i := 0; i < 100; i++ {
		queue.Push(i)
	}
	assert.Equal(t, 100, queue.Len())
	for i := 0; i < 100; i++ {
		element, ok := queue.TryPop()
		assert.True(t, ok)
		assert.Equal(t, i, element)
	}
	_, ok := queue.TryPop()
	assert.False(t, ok)
	assert.Equal(t, 0, queue.Len())
}

func TestQueueCloseDrains(t *testing.T) {
	queue := NewQueue[string]()
	queue.Push("a")
	queue.Push("b")
	queue.Close()

	element, ok := queue.TryPop()
	assert.True(t, ok)
	assert.Equal(t, "a", element)
	element, ok = queue.TryPop()
	assert.True(t, ok)
	assert.Equal(t, "b", element)
	_, ok = queue.TryPop()
	assert.False(t, ok)

	assert.Panics(t, func() {
		queue.Push("c")
	})
}

func TestQueueConcurrentProducers(t *testing.T) {
	type item struct {
		producer int
		seq      int
	}
	queue := NewQueue[item]()
	producers := 8
	perProducer := 200

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(producer int) {
			defer wg.Done()
			for seq := 0; seq < perProducer; seq++ {
				queue.Push(item{producer: producer, seq: seq})
			}
		}(p)
	}
	wg.Wait()

	lastSeq := make([]int, producers)
	for i := range lastSeq {
		lastSeq[i] = -1
	}
	received := 0
	for {
		element, ok := queue.TryPop()
		if !ok {
			break
		}
		received++
		// per-producer order must be preserved even when producers interleave
		assert.Equal(t, lastSeq[element.producer]+1, element.seq)
		lastSeq[element.producer] = element.seq
	}
	assert.Equal(t, producers*perProducer, received)
}
