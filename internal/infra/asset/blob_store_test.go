package asset

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, files map[string]string, defaultImage string) service.AssetStore {
	t.Helper()
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	for name, body := range files {
		require.NoError(t, bucket.WriteAll(ctx, name, []byte(body), &blob.WriterOptions{ContentType: "image/png"}))
	}

	store := NewBlobStore(bucket, defaultImage, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func readAll(t *testing.T, asset *service.Asset) string {
	t.Helper()
	defer asset.Body.Close()

	data, err := io.ReadAll(asset.Body)
	require.NoError(t, err)

	return string(data)
}

func TestBlobStore_Open(t *testing.T) {
	store := newTestStore(t, map[string]string{
		"mug.png":     "mug-bytes",
		"default.png": "default-bytes",
		"sub/cup.png": "cup-bytes",
	}, "default.png")

	asset, err := store.Open(context.Background(), "mug.png")
	require.NoError(t, err)
	assert.Equal(t, "mug.png", asset.Name)
	assert.Equal(t, "image/png", asset.ContentType)
	assert.Equal(t, int64(len("mug-bytes")), asset.Size)
	assert.Equal(t, "mug-bytes", readAll(t, asset))

	asset, err = store.Open(context.Background(), "sub/cup.png")
	require.NoError(t, err)
	assert.Equal(t, "cup-bytes", readAll(t, asset))
}

func TestBlobStore_FallsBackToDefault(t *testing.T) {
	store := newTestStore(t, map[string]string{"default.png": "default-bytes"}, "default.png")

	asset, err := store.Open(context.Background(), "missing.png")
	require.NoError(t, err)
	assert.Equal(t, "default.png", asset.Name)
	assert.Equal(t, "default-bytes", readAll(t, asset))
}

func TestBlobStore_DefaultMissing(t *testing.T) {
	store := newTestStore(t, map[string]string{}, "default.png")

	_, err := store.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)

	_, err = store.Open(context.Background(), "default.png")
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestBlobStore_RejectsTraversal(t *testing.T) {
	store := newTestStore(t, map[string]string{"default.png": "x"}, "default.png")

	for _, name := range []string{
		"../secret.txt",
		"a/../../etc/passwd",
		"/etc/passwd",
		`..\windows`,
		"C:/boot.ini",
		"",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Open(context.Background(), name)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidImagePath)
		})
	}
}

func TestCleanKey(t *testing.T) {
	key, err := cleanKey("a/./b.png")
	require.NoError(t, err)
	assert.Equal(t, "a/b.png", key)

	key, err = cleanKey("..png")
	require.NoError(t, err, "dots inside a name are not a traversal segment")
	assert.Equal(t, "..png", key)
}
