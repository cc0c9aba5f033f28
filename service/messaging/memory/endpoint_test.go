package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPusherPuller(t *testing.T) {
	queue := NewQueue[int]()
	pusher := NewPusher(queue)
	puller := NewPuller(queue)

	// nil element is a flush signal, not a message
	pusher.Push(nil)
	assert.Nil(t, puller.Pull())

	value := 42
	pusher.Push(&value)
	element := puller.Pull()
	if assert.NotNil(t, element) {
		assert.Equal(t, 42, *element)
	}
	// the slot clears on an empty poll
	assert.Nil(t, puller.Pull())
	assert.Nil(t, puller.Pull())
}

func TestPusherClone(t *testing.T) {
	queue := NewQueue[string]()
	pusher := NewPusher(queue)
	clone := pusher.Clone()
	puller := NewPuller(queue)

	first, second := "first", "second"
	pusher.Push(&first)
	clone.Push(&second)

	element := puller.Pull()
	if assert.NotNil(t, element) {
		assert.Equal(t, "first", *element)
	}
	element = puller.Pull()
	if assert.NotNil(t, element) {
		assert.Equal(t, "second", *element)
	}
}
