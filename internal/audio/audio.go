// Package audio provides sinks for the 16-bit PCM speech stream coming
// out of the realtime session.
package audio

import (
	"io"
	"sync"

	"github.com/oasis-voice/oasis/internal/log"
)

// Discard drops all audio. Used when no playback target is wired up.
type Discard struct{}

func (Discard) Play([]byte) {}
func (Discard) Stop()       {}

// Writer streams raw PCM to an io.Writer, typically a file or a pipe into
// an external player. It holds no buffer of its own, so Stop only marks
// the interruption point for the reader.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	logger log.Logger
}

// NewWriter creates a sink writing PCM to w.
func NewWriter(w io.Writer, logger log.Logger) *Writer {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Writer{w: w, logger: logger}
}

// Play writes one PCM chunk.
func (s *Writer) Play(pcm []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(pcm); err != nil {
		s.logger.Error("failed to write audio", "error", err)
	}
}

// Stop is called on interruption and close. Everything written so far has
// already been flushed downstream.
func (s *Writer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("audio stream stopped")
}
