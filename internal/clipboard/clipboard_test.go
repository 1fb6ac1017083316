package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err error
	got []string
}

func (f *fakeWriter) WriteText(text string) error {
	f.got = append(f.got, text)
	return f.err
}

func TestChainStopsAtFirstSuccess(t *testing.T) {
	failing := &fakeWriter{err: errors.New("no display")}
	ok := &fakeWriter{}
	unused := &fakeWriter{}

	err := Chain{failing, ok, unused}.WriteText("01719854378")
	require.NoError(t, err)
	assert.Equal(t, []string{"01719854378"}, failing.got)
	assert.Equal(t, []string{"01719854378"}, ok.got)
	assert.Empty(t, unused.got)
}

func TestChainJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	err := Chain{&fakeWriter{err: errA}, &fakeWriter{err: errB}}.WriteText("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestEmptyChain(t *testing.T) {
	assert.ErrorIs(t, Chain{}.WriteText("x"), ErrUnsupported)
}

func TestOSC52(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOSC52(&buf).WriteText("mroy@niter.edu.bd"))
	assert.Contains(t, buf.String(), "52;c;")
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("mroy@niter.edu.bd")))
}

func TestNew(t *testing.T) {
	t.Setenv("TMUX", "")

	w, err := New(BackendOSC52)
	require.NoError(t, err)
	assert.IsType(t, &OSC52{}, w)

	w, err = New(BackendSystem)
	require.NoError(t, err)
	assert.IsType(t, System{}, w)

	w, err = New("")
	require.NoError(t, err)
	assert.IsType(t, Chain{}, w)

	_, err = New(BackendTmux)
	assert.Error(t, err, "tmux backend needs a tmux session")

	_, err = New("carrier-pigeon")
	assert.Error(t, err)
}
