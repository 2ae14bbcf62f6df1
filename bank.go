package rtfir

import (
	"fmt"
	"sync"
)

// Bank holds one independent Filter per channel, all built from the same
// configuration. It streams chunks of multi-channel audio through the
// filters; history carries over from one Process call to the next.
//
// A Bank is not safe for concurrent use. With Config.EnableParallel set,
// Process itself runs the channels on separate goroutines; each filter is
// only ever touched by one goroutine at a time.
type Bank[F Float] struct {
	filters  []*Filter[F]
	parallel bool
}

// NewBank creates a bank of channels filters.
func NewBank[F Float](config *Config, channels int) (*Bank[F], error) {
	if channels < minChannels || channels > maxChannels {
		return nil, fmt.Errorf("%w: channels must be between %d and %d, got %d",
			ErrInvalidConfig, minChannels, maxChannels, channels)
	}

	filters := make([]*Filter[F], channels)
	for ch := range filters {
		f, err := New[F](config)
		if err != nil {
			return nil, err
		}
		filters[ch] = f
	}

	return &Bank[F]{
		filters:  filters,
		parallel: config.EnableParallel,
	}, nil
}

// Channels returns the number of channels.
func (b *Bank[F]) Channels() int {
	return len(b.filters)
}

// Channel returns the filter for channel i, or nil if i is out of range.
func (b *Bank[F]) Channel(i int) *Filter[F] {
	if i < 0 || i >= len(b.filters) {
		return nil
	}
	return b.filters[i]
}

// Process filters src[ch] into dst[ch] for every channel, one sample at a
// time. dst[ch] must be at least as long as src[ch]; channels may carry
// chunks of different lengths. Nothing is written when an error is returned.
func (b *Bank[F]) Process(dst, src [][]F) error {
	if len(src) != len(b.filters) {
		return fmt.Errorf("%w: expected %d input channels, got %d", ErrChannelMismatch, len(b.filters), len(src))
	}
	if len(dst) != len(b.filters) {
		return fmt.Errorf("%w: expected %d output channels, got %d", ErrChannelMismatch, len(b.filters), len(dst))
	}
	for ch := range src {
		if len(dst[ch]) < len(src[ch]) {
			return fmt.Errorf("%w: channel %d needs %d samples, has %d", ErrBufferTooSmall, ch, len(src[ch]), len(dst[ch]))
		}
	}

	// Sequential processing (default or when parallel disabled)
	if !b.parallel || len(src) <= 1 {
		for ch := range src {
			b.processChannel(ch, dst[ch], src[ch])
		}
		return nil
	}

	// Parallel processing: each channel owns its filter
	var wg sync.WaitGroup
	for ch := range src {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			b.processChannel(channel, dst[channel], src[channel])
		}(ch)
	}
	wg.Wait()

	return nil
}

func (b *Bank[F]) processChannel(ch int, dst, src []F) {
	f := b.filters[ch]
	for i, x := range src {
		dst[i] = f.Step(x)
	}
}
