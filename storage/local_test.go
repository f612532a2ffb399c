package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Upload(ctx, "laws/laws_usa.json", strings.NewReader(`[]`)))

	rc, err := st.Download(ctx, "laws/laws_usa.json")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))

	require.NoError(t, st.Delete(ctx, "laws/laws_usa.json"))
	_, err = st.Download(ctx, "laws/laws_usa.json")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing object is not an error
	assert.NoError(t, st.Delete(ctx, "laws/laws_usa.json"))
}

func TestLocalStorage_KeyCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	st, err := NewLocalStorage(root)
	require.NoError(t, err)

	path, err := st.fullPath("../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, root))

	_, err = st.fullPath("")
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("8f14e45f-ceea-467f-a0e6-3c1d2b7a9e10")
	key := ObjectKey("reports", id, "analysis report.txt")
	assert.Equal(t, "reports/8f/8f14e45f-ceea-467f-a0e6-3c1d2b7a9e10_analysis_report.txt", key)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(StorageConfig{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewStorage(StorageConfig{Type: StorageTypeS3})
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("STORAGE_LOCAL_PATH", "")
	t.Setenv("AWS_REGION", "")

	cfg := ConfigFromEnv()
	assert.Equal(t, StorageTypeLocal, cfg.Type)
	assert.Equal(t, "./data", cfg.LocalPath)
	assert.Equal(t, "us-east-1", cfg.S3Region)

	t.Setenv("STORAGE_TYPE", "s3")
	t.Setenv("AWS_S3_BUCKET", "laws-bucket")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg = ConfigFromEnv()
	assert.Equal(t, StorageTypeS3, cfg.Type)
	assert.Equal(t, "laws-bucket", cfg.S3Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
}
