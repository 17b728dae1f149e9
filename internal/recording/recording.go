// Package recording holds the per-view recording state machine: acquire the camera and
// microphone, buffer media chunks, and on stop hand one finalized blob to a Finalizer.
//
//	idle -> requesting-permission -> recording -> uploading -> idle
//	idle -> requesting-permission -> permission-denied
package recording

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateIdle                 State = "idle"
	StateRequestingPermission State = "requesting-permission"
	StateRecording            State = "recording"
	StateUploading            State = "uploading"
	StatePermissionDenied     State = "permission-denied"
)

// ContentType of every finalized blob.
const ContentType = "video/webm"

var (
	ErrPermissionDenied = errors.New("camera/microphone permission denied")
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// Track is one acquired hardware track (camera or microphone).
type Track interface {
	Stop()
}

// Stream is a granted media stream.
type Stream interface {
	Tracks() []Track
}

// Device asks for camera and microphone access. Acquire blocks until the user answers and
// returns ErrPermissionDenied on refusal.
type Device interface {
	Acquire(ctx context.Context) (Stream, error)
}

// Blob is the finalized recording.
type Blob struct {
	Data        []byte
	ContentType string
	FinalizedAt time.Time
}

// Finalizer persists a finalized blob (upload, public URL, response record).
type Finalizer interface {
	Finalize(ctx context.Context, blob Blob) error
}

// Controller is single-writer per view; the mutex only guards against a racing stop and write.
type Controller struct {
	mu        sync.Mutex
	state     State
	stream    Stream
	chunks    [][]byte
	size      int
	finalizer Finalizer
	now       func() time.Time
	touched   time.Time
}

func NewController(finalizer Finalizer) *Controller {
	c := &Controller{state: StateIdle, finalizer: finalizer, now: time.Now}
	c.touched = c.now()
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Buffered reports the number of chunks and bytes currently held in memory.
func (c *Controller) Buffered() (chunks int, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.chunks), c.size
}

// LastActivity is the time of the last state change or chunk.
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

// Start requests device access and begins buffering. Starting is only possible from idle or
// after a denial.
func (c *Controller) Start(ctx context.Context, device Device) error {
	c.mu.Lock()
	if c.state != StateIdle && c.state != StatePermissionDenied {
		c.mu.Unlock()
		return ErrAlreadyRecording
	}
	c.setState(StateRequestingPermission)
	c.mu.Unlock()

	stream, err := device.Acquire(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			c.setState(StatePermissionDenied)
		} else {
			c.setState(StateIdle)
		}
		return err
	}
	c.stream = stream
	c.chunks = nil
	c.size = 0
	c.setState(StateRecording)
	return nil
}

// Write buffers one chunk. Empty chunks are dropped.
func (c *Controller) Write(chunk []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRecording {
		return 0, ErrNotRecording
	}
	if len(chunk) == 0 {
		return 0, nil
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	c.chunks = append(c.chunks, buf)
	c.size += len(buf)
	c.touched = c.now()
	return len(chunk), nil
}

// Stop finalizes the buffered chunks into one blob, releases the device, and hands the blob
// to the finalizer. Whatever the finalizer returns, the controller ends idle and the blob is
// not retained.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateRecording {
		c.mu.Unlock()
		return ErrNotRecording
	}
	blob := Blob{
		Data:        bytes.Join(c.chunks, nil),
		ContentType: ContentType,
		FinalizedAt: c.now(),
	}
	c.chunks = nil
	c.size = 0
	c.releaseLocked()
	c.setState(StateUploading)
	c.mu.Unlock()

	err := c.finalizer.Finalize(ctx, blob)

	c.mu.Lock()
	c.setState(StateIdle)
	c.mu.Unlock()
	return err
}

// Discard drops any buffered media and releases the device without finalizing.
func (c *Controller) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateUploading {
		return
	}
	c.chunks = nil
	c.size = 0
	c.releaseLocked()
	c.setState(StateIdle)
}

func (c *Controller) releaseLocked() {
	if c.stream == nil {
		return
	}
	for _, track := range c.stream.Tracks() {
		track.Stop()
	}
	c.stream = nil
}

func (c *Controller) setState(s State) {
	c.state = s
	c.touched = c.now()
}
