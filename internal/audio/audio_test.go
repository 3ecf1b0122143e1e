package audio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oasis-voice/oasis/internal/log"
)

func TestWriterStreamsPCM(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, log.NewNop())

	s.Play([]byte{1, 2})
	s.Play([]byte{3, 4})
	s.Stop()

	assert.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
}

func TestDiscard(t *testing.T) {
	var d Discard
	d.Play([]byte{1})
	d.Stop()
}
