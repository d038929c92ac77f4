// Package storage implements the client-persistent stores on top of a
// gocloud.dev blob bucket. In production the bucket is a fileblob directory
// scoped to one browser-context equivalent; tests use memblob.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// NewBucket opens the on-disk bucket that backs the client stores.
func NewBucket(cfg *config.Config) (*blob.Bucket, error) {
	path := cfg.Storage.Path
	if path == "" {
		path = ".storefront"
	}

	bucket, err := fileblob.OpenBucket(path, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "open storage bucket")
	}

	return bucket, nil
}

// cartStore persists the cart document under a fixed key.
type cartStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewCartStore is the constructor for cartStore.
func NewCartStore(bucket *blob.Bucket, logger *slog.Logger) repository.CartStore {
	return &cartStore{bucket: bucket, logger: logger}
}

// Load restores the persisted sequence. No prior state and malformed stored
// data both yield an empty cart.
func (s *cartStore) Load(ctx context.Context) (entity.Cart, error) {
	data, err := s.bucket.ReadAll(ctx, constants.StorageKeyCart)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return entity.Cart{}, nil
		}

		return nil, errors.Wrap(err, "read cart document")
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Warn("Stored cart document is malformed, starting empty", "error", err)

		return entity.Cart{}, nil
	}

	return cart, nil
}

// Save persists the full sequence, replacing any prior state.
func (s *cartStore) Save(ctx context.Context, cart entity.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart document")
	}

	if err := s.bucket.WriteAll(ctx, constants.StorageKeyCart, data, nil); err != nil {
		return errors.Wrap(err, "write cart document")
	}

	return nil
}

// Clear removes the persisted sequence.
func (s *cartStore) Clear(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, constants.StorageKeyCart); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "delete cart document")
	}

	return nil
}

// tokenStore persists the raw bearer credential under a fixed key.
type tokenStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewTokenStore is the constructor for tokenStore.
func NewTokenStore(bucket *blob.Bucket, logger *slog.Logger) repository.TokenStore {
	return &tokenStore{bucket: bucket, logger: logger}
}

// Get returns the stored raw credential, or repository.ErrTokenNotFound.
func (s *tokenStore) Get(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, constants.StorageKeyToken)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrTokenNotFound
		}

		return "", errors.Wrap(err, "read token document")
	}

	return string(data), nil
}

// Set replaces the stored credential.
func (s *tokenStore) Set(ctx context.Context, token string) error {
	if err := s.bucket.WriteAll(ctx, constants.StorageKeyToken, []byte(token), nil); err != nil {
		return errors.Wrap(err, "write token document")
	}

	return nil
}

// Clear removes the stored credential.
func (s *tokenStore) Clear(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, constants.StorageKeyToken); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "delete token document")
	}

	return nil
}
