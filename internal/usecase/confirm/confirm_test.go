package confirm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswer(t *testing.T) {
	assert.True(t, Answer(true).Confirm(context.Background(), "ok?"))
	assert.False(t, Answer(false).Confirm(context.Background(), "ok?"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{Reply: true}
	assert.True(t, r.Confirm(context.Background(), "Delete this appointment?"))
	assert.Equal(t, []string{"Delete this appointment?"}, r.Prompts)
}
