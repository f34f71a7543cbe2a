package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumconnect/backend/internal/pkg/apperrors"
)

func TestCheckExtension(t *testing.T) {
	tests := []struct {
		filename string
		allowed  []string
		wantErr  bool
	}{
		{"photo.png", ImageExtensions, false},
		{"photo.JPG", ImageExtensions, false},
		{"scan.jpeg", ImageExtensions, false},
		{"doc.pdf", DocumentExtensions, false},
		{"doc.pdf", ImageExtensions, true},
		{"script.sh", ImageExtensions, true},
		{"noextension", ImageExtensions, true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			err := CheckExtension(&multipart.FileHeader{Filename: tt.filename}, tt.allowed)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveFileAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	header := makeFileHeader(t, "avatar.png", "fake image bytes")
	url, err := storage.SaveFile(header, "avatars")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	// the stored name is generated, never the client's
	assert.NotContains(t, url, "avatar.png")

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))

	require.NoError(t, storage.DeleteFile(url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFileEntityScopedSubdirectory(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	header := makeFileHeader(t, "screenshot.png", "fake image bytes")
	url, err := storage.SaveFile(header, "projects/42/images")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/projects/42/images/"))

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	_, err = os.Stat(stored)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFileWithBaseURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	header := makeFileHeader(t, "resume.pdf", "%PDF-1.4")
	url, err := storage.SaveFile(header, "cvs")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/cvs/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	url, err := storage.SaveFile(nil, "avatars")
	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestDeleteFileMissingIsNoError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("/uploads/avatars/nope.png"))
}
