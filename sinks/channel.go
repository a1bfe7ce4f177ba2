package sinks

import (
	"context"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pushee[*any](&ChannelPushee[any]{})

// ChannelPushee sends every pushed item to a channel and closes it at the end
// of the stream. Sends block; a done context drops the item and everything
// after it.
type ChannelPushee[T any] struct {
	ctx     context.Context
	channel chan<- T
	closed  bool
}

// ChannelPusheeBuilder is a fluent builder for ChannelPushee.
type ChannelPusheeBuilder[T any] struct {
	ctx     context.Context
	channel chan<- T
}

// Channel creates a new ChannelPusheeBuilder for building a ChannelPushee.
func Channel[T any](channel chan<- T) *ChannelPusheeBuilder[T] {
	return &ChannelPusheeBuilder[T]{
		channel: channel,
		ctx:     context.Background(),
	}
}

// Context sets the context bounding the blocking sends.
func (b *ChannelPusheeBuilder[T]) Context(
	ctx context.Context,
) *ChannelPusheeBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the ChannelPushee.
func (b *ChannelPusheeBuilder[T]) Build() *ChannelPushee[T] {
	return &ChannelPushee[T]{ctx: b.ctx, channel: b.channel}
}

// Call implements primitives.Pushee.
func (c *ChannelPushee[T]) Call(item *T) primitives.Unit {
	if c.closed {
		return primitives.Unit{}
	}
	if item == nil {
		c.close()
		return primitives.Unit{}
	}

	select {
	case <-c.ctx.Done():
		c.close()
	case c.channel <- *item:
	}
	return primitives.Unit{}
}

func (c *ChannelPushee[T]) close() {
	c.closed = true
	close(c.channel)
}
