package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agiangrant/twconfig/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, path string, d *descriptor.Descriptor) {
	t.Helper()
	data, err := descriptor.Marshal(d, descriptor.FormatFromPath(path))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestHolderReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twconfig.toml")
	writeDescriptor(t, path, descriptor.Project())

	h, err := NewHolder(path)
	require.NoError(t, err)
	assert.True(t, descriptor.Project().Equal(h.Get()))

	updates := h.Subscribe()

	changed, err := h.Reload(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)

	next := descriptor.New([]string{"./pages/**/*.html"}, descriptor.Extension{"colors": {"primary": "#ea580c"}}, nil)
	writeDescriptor(t, path, next)

	changed, err = h.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, next.Equal(h.Get()))

	select {
	case got := <-updates:
		assert.True(t, next.Equal(got))
	default:
		t.Fatal("expected an update")
	}
}

func TestHolderReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twconfig.json")
	writeDescriptor(t, path, descriptor.Project())

	h, err := NewHolder(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"content": 7}`), 0644))

	changed, err := h.Reload(context.Background())
	assert.ErrorIs(t, err, descriptor.ErrMalformedConfiguration)
	assert.False(t, changed)
	assert.True(t, descriptor.Project().Equal(h.Get()))
}

func TestHolderSubscriberSeesLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twconfig.toml")
	writeDescriptor(t, path, descriptor.Project())

	h, err := NewHolder(path)
	require.NoError(t, err)
	updates := h.Subscribe()

	for _, color := range []string{"#000001", "#000002"} {
		writeDescriptor(t, path, descriptor.New(nil, descriptor.Extension{"colors": {"primary": color}}, nil))
		_, err := h.Reload(context.Background())
		require.NoError(t, err)
	}

	got := <-updates
	v, _ := got.Extension().Token("colors", "primary")
	assert.Equal(t, "#000002", v)
}

func TestNewHolderMissingFile(t *testing.T) {
	_, err := NewHolder(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHolderStartPicksUpWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twconfig.toml")
	writeDescriptor(t, path, descriptor.Project())

	h, err := NewHolder(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, h.Start(ctx))

	next := descriptor.New([]string{"./app/**/*.html"}, nil, nil)
	writeDescriptor(t, path, next)

	assert.Eventually(t, func() bool {
		return next.Equal(h.Get())
	}, 5*time.Second, 20*time.Millisecond)
}
