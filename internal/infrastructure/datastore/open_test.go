package datastore

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/shopcart-api/config"
	"github.com/oksasatya/shopcart-api/internal/infrastructure/filestore"
)

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	h, err := Open(context.Background(), &config.Config{DatastoreDriver: "file", DatastorePath: path}, quiet())
	require.NoError(t, err)
	defer h.Close()

	fs, ok := h.Store.(*filestore.Store)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
	assert.Nil(t, h.Pool)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DatastoreDriver: "mongo"}, quiet())
	assert.ErrorContains(t, err, "mongo")
}
