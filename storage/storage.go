// Package storage abstracts where uploaded recipe images end up: a
// local media directory or any S3-compatible bucket, picked by config
package storage

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/viper"
)

type Storage interface {
	// Save writes the object under key and returns nothing; keys look
	// like uploads/recipe/<uuid>.<ext> and never collide.
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns where a client can fetch the object from.
	URL(key string) string
}

// New builds the backend selected by storage.type.
func New() (Storage, error) {
	switch viper.GetString("storage.type") {
	case "s3":
		return NewS3()
	case "local":
		return NewLocal(viper.GetString("storage.media_root"))
	default:
		return nil, errors.New("invalid storage type provided")
	}
}
