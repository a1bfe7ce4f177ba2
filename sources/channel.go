package sources

import (
	"context"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pullee[*any](&ChannelPullee[any]{})

// ChannelPullee yields the values received from a channel. Each call blocks
// until a value arrives. It returns nil once the channel is closed or the
// context is done.
//
// ---channel -> 1 -- 2 -- 3 -- | -->
//
// -- ChannelPullee --
//
// ------------- 1 -- 2 -- 3 -- nil -->
type ChannelPullee[T any] struct {
	ctx     context.Context
	channel <-chan T
	done    bool
}

// ChannelPulleeBuilder is a fluent builder for ChannelPullee.
type ChannelPulleeBuilder[T any] struct {
	ctx     context.Context
	channel <-chan T
}

// Channel creates a new ChannelPulleeBuilder for building a ChannelPullee.
func Channel[T any](channel <-chan T) *ChannelPulleeBuilder[T] {
	return &ChannelPulleeBuilder[T]{
		channel: channel,
		ctx:     context.Background(),
	}
}

// Context sets the context bounding the blocking receives.
func (b *ChannelPulleeBuilder[T]) Context(
	ctx context.Context,
) *ChannelPulleeBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the ChannelPullee.
func (b *ChannelPulleeBuilder[T]) Build() *ChannelPullee[T] {
	return &ChannelPullee[T]{ctx: b.ctx, channel: b.channel}
}

// Call implements primitives.Pullee.
func (c *ChannelPullee[T]) Call(primitives.Unit) *T {
	if c.done {
		return nil
	}

	select {
	case <-c.ctx.Done():
		c.done = true
		return nil
	case v, ok := <-c.channel:
		if !ok {
			c.done = true
			return nil
		}
		return &v
	}
}
