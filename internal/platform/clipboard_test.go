package platform

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	mu       sync.Mutex
	content  string
	writeErr error
	readErr  error
}

func (f *fakeClipboard) read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, f.readErr
}

func (f *fakeClipboard) write(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.content = s
	return nil
}

func (f *fakeClipboard) get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content
}

func newTestClipboard(ttl time.Duration) (*Clipboard, *fakeClipboard) {
	fake := &fakeClipboard{}
	return newClipboard(ttl, fake.read, fake.write, logger.Nop()), fake
}

func TestClipboard_CopyAndAutoClear(t *testing.T) {
	c, fake := newTestClipboard(20 * time.Millisecond)

	require.NoError(t, c.Copy("hunter2"))
	assert.Equal(t, "hunter2", fake.get())

	assert.Eventually(t, func() bool { return fake.get() == "" }, time.Second, 5*time.Millisecond)
}

func TestClipboard_KeepsForeignContent(t *testing.T) {
	c, fake := newTestClipboard(time.Hour)

	require.NoError(t, c.Copy("hunter2"))
	require.NoError(t, fake.write("copied by the user"))

	c.Clear()

	assert.Equal(t, "copied by the user", fake.get())
}

func TestClipboard_ClearOnLock(t *testing.T) {
	c, fake := newTestClipboard(time.Hour)

	require.NoError(t, c.Copy("hunter2"))
	c.Clear()

	assert.Equal(t, "", fake.get())
}

func TestClipboard_ZeroTTLKeepsSecret(t *testing.T) {
	c, fake := newTestClipboard(0)

	require.NoError(t, c.Copy("hunter2"))
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, "hunter2", fake.get())
	assert.Nil(t, c.timer)
}

func TestClipboard_SecondCopyReplacesTimer(t *testing.T) {
	c, fake := newTestClipboard(time.Hour)

	require.NoError(t, c.Copy("first"))
	first := c.timer
	require.NoError(t, c.Copy("second"))

	assert.NotSame(t, first, c.timer)
	c.Clear()
	assert.Equal(t, "", fake.get())
}

func TestClipboard_Errors(t *testing.T) {
	c, fake := newTestClipboard(time.Hour)

	assert.ErrorIs(t, c.Copy(""), ErrNothingToCopy)

	fake.writeErr = errors.New("no display")
	err := c.Copy("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestClipboard_ReadFailureLeavesContent(t *testing.T) {
	c, fake := newTestClipboard(time.Hour)

	require.NoError(t, c.Copy("hunter2"))
	fake.mu.Lock()
	fake.readErr = errors.New("busy")
	fake.mu.Unlock()

	c.Clear()

	assert.Equal(t, "hunter2", fake.get())
}
