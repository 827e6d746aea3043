// Package asset serves product images out of a gocloud.dev blob bucket.
package asset

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob" // registers mem://
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

type blobStore struct {
	bucket       *blob.Bucket
	defaultImage string
	logger       *slog.Logger
}

// Params holds dependencies for the asset store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens assets.dir through fileblob, or assets.bucketUrl when no dir is set.
func New(params Params) (service.AssetStore, error) {
	cfg := params.Config.Assets
	if cfg == nil {
		return nil, errors.New("assets config is required")
	}

	var bucket *blob.Bucket
	var err error
	switch {
	case cfg.Dir != "":
		bucket, err = fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
	case cfg.BucketURL != "":
		bucket, err = blob.OpenBucket(params.Ctx, cfg.BucketURL)
	default:
		return nil, errors.New("either assets.dir or assets.bucketUrl must be set")
	}
	if err != nil {
		return nil, errors.Wrap(err, "open asset bucket")
	}

	store := NewBlobStore(bucket, cfg.DefaultImage, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// NewBlobStore wraps an open bucket. The store owns the bucket from here on.
func NewBlobStore(bucket *blob.Bucket, defaultImage string, logger *slog.Logger) service.AssetStore {
	return &blobStore{
		bucket:       bucket,
		defaultImage: defaultImage,
		logger:       logger,
	}
}

// Open resolves name under the bucket root, falling back to the default image.
func (s *blobStore) Open(ctx context.Context, name string) (*service.Asset, error) {
	key, err := cleanKey(name)
	if err != nil {
		return nil, err
	}

	asset, err := s.open(ctx, key)
	if err == nil {
		return asset, nil
	}
	if gcerrors.Code(err) != gcerrors.NotFound {
		return nil, errors.Wrapf(err, "read asset %s", key)
	}

	s.logger.DebugContext(ctx, "Asset missing, serving default image",
		slog.String("name", key),
		slog.String("default", s.defaultImage),
	)

	if s.defaultImage == "" || s.defaultImage == key {
		return nil, domainerrors.ErrImageNotFound
	}

	asset, err = s.open(ctx, s.defaultImage)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "read default asset")
	}

	return asset, nil
}

func (s *blobStore) open(ctx context.Context, key string) (*service.Asset, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, err //nolint:wrapcheck // callers inspect the gcerrors code
	}

	contentType := reader.ContentType()
	if contentType == "" || contentType == defaultContentType {
		if byExt := mime.TypeByExtension(path.Ext(key)); byExt != "" {
			contentType = byExt
		} else if contentType == "" {
			contentType = defaultContentType
		}
	}

	return &service.Asset{
		Name:        key,
		ContentType: contentType,
		Size:        reader.Size(),
		Body:        reader,
	}, nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// cleanKey rejects absolute names and any ".." segment before touching the bucket.
func cleanKey(name string) (string, error) {
	if name == "" {
		return "", domainerrors.ErrInvalidImagePath
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || strings.Contains(name, ":") {
		return "", domainerrors.ErrInvalidImagePath
	}

	for _, segment := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if segment == ".." {
			return "", domainerrors.ErrInvalidImagePath
		}
	}

	return path.Clean(strings.ReplaceAll(name, `\`, "/")), nil
}
