package recording

import (
	"context"
	"sync/atomic"
)

// ClientDevice stands in for a browser-side getUserMedia prompt whose answer the client has
// already reported. Its tracks record whether they were released.
type ClientDevice struct {
	Granted bool
	stream  *ClientStream
}

func NewClientDevice(granted bool) *ClientDevice {
	return &ClientDevice{Granted: granted}
}

func (d *ClientDevice) Acquire(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !d.Granted {
		return nil, ErrPermissionDenied
	}
	d.stream = &ClientStream{
		tracks: []*ClientTrack{{Kind: "video"}, {Kind: "audio"}},
	}
	return d.stream, nil
}

// Stream returns the last acquired stream, or nil.
func (d *ClientDevice) Stream() *ClientStream {
	return d.stream
}

type ClientStream struct {
	tracks []*ClientTrack
}

func (s *ClientStream) Tracks() []Track {
	out := make([]Track, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = t
	}
	return out
}

// Released reports whether every track has been stopped.
func (s *ClientStream) Released() bool {
	for _, t := range s.tracks {
		if !t.Stopped() {
			return false
		}
	}
	return true
}

type ClientTrack struct {
	Kind    string
	stopped atomic.Bool
}

func (t *ClientTrack) Stop() {
	t.stopped.Store(true)
}

func (t *ClientTrack) Stopped() bool {
	return t.stopped.Load()
}
