package clip

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeClipboard holds clipboard content in memory and can fail selectively.
type fakeClipboard struct {
	content string
	getErr  error
	setErr  error
}

func (c *fakeClipboard) Get() (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.content, nil
}

func (c *fakeClipboard) Set(text string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.content = text
	return nil
}

type fakeKeys struct {
	copyErr  error
	pasteErr error
	onCopy   func()
	onPaste  func()
	copies   int
	pastes   int
}

func (k *fakeKeys) Copy() error {
	k.copies++
	if k.copyErr != nil {
		return k.copyErr
	}
	if k.onCopy != nil {
		k.onCopy()
	}
	return nil
}

func (k *fakeKeys) Paste() error {
	k.pastes++
	if k.pasteErr != nil {
		return k.pasteErr
	}
	if k.onPaste != nil {
		k.onPaste()
	}
	return nil
}

func TestWithTransientRestoresOnSuccess(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	m := NewMediator(cb, 0)

	var seen string
	err := m.WithTransient("transient", func() error {
		seen = cb.content
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "transient", seen)
	require.Equal(t, "before", cb.content)
}

func TestWithTransientRestoresOnActionFailure(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	m := NewMediator(cb, 0)

	actionErr := errors.New("boom")
	err := m.WithTransient("transient", func() error {
		return actionErr
	})
	require.ErrorIs(t, err, actionErr)
	require.Equal(t, "before", cb.content)
}

func TestWithTransientUnreadableClipboardRestoresEmpty(t *testing.T) {
	cb := &fakeClipboard{content: "before", getErr: errors.New("locked")}
	m := NewMediator(cb, 0)

	err := m.WithTransient("transient", func() error {
		cb.getErr = nil
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "", cb.content)
}

func TestWithTransientSetFailureSurfaces(t *testing.T) {
	cb := &fakeClipboard{content: "before", setErr: errors.New("denied")}
	m := NewMediator(cb, 0)

	ran := false
	err := m.WithTransient("transient", func() error {
		ran = true
		return nil
	})
	require.Error(t, err)
	require.False(t, ran)
}

func TestCaptureReturnsTrimmedSelection(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{}
	keys.onCopy = func() { cb.content = "  helo wrold\n" }
	c := NewCapturer(NewMediator(cb, 0), cb, keys)

	result := c.Capture()
	require.True(t, result.OK)
	require.Equal(t, "helo wrold", result.Text)
	require.Equal(t, 1, keys.copies)
	require.Equal(t, "before", cb.content)
}

func TestCaptureEmptySelection(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{} // copy lands nothing on the sentinel-seeded clipboard
	c := NewCapturer(NewMediator(cb, 0), cb, keys)

	result := c.Capture()
	require.False(t, result.OK)
	require.Empty(t, result.Text)
	require.Equal(t, "before", cb.content)
}

func TestCaptureWhitespaceOnlySelection(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{}
	keys.onCopy = func() { cb.content = "   \n\t" }
	c := NewCapturer(NewMediator(cb, 0), cb, keys)

	result := c.Capture()
	require.False(t, result.OK)
	require.Equal(t, "before", cb.content)
}

func TestCaptureCopyFailure(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{copyErr: errors.New("injection blocked")}
	c := NewCapturer(NewMediator(cb, 0), cb, keys)

	result := c.Capture()
	require.False(t, result.OK)
	require.Equal(t, "before", cb.content)
}

func TestInjectPastesTransientText(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{}
	var pasted string
	keys.onPaste = func() { pasted = cb.content }
	inj := NewInjector(NewMediator(cb, 0), keys)

	require.NoError(t, inj.Inject("answer"))
	require.Equal(t, "answer", pasted)
	require.Equal(t, 1, keys.pastes)
	require.Equal(t, "before", cb.content)
}

func TestInjectFailureStillRestores(t *testing.T) {
	cb := &fakeClipboard{content: "before"}
	keys := &fakeKeys{pasteErr: errors.New("injection blocked")}
	inj := NewInjector(NewMediator(cb, 0), keys)

	require.Error(t, inj.Inject("answer"))
	require.Equal(t, "before", cb.content)
}
