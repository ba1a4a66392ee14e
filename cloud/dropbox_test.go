package cloud_test

import (
	"context"
	"testing"

	pagegrab "github.com/mstolarz/pagegrab"
	"github.com/mstolarz/pagegrab/cloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropboxHandler_Detect(t *testing.T) {
	t.Parallel()

	h := cloud.NewDropboxHandler()

	t.Run("shared link v2", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/scl/fi/abc123/report.docx?rlkey=x")
		require.NotNil(t, info)
		assert.Equal(t, pagegrab.ServiceDropbox, info.Service)
		assert.Equal(t, "abc123", info.FileID)
		assert.Equal(t, "docx", info.FileType)
		assert.True(t, info.IsSharedLink)
	})

	t.Run("shared link v1", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://dropbox.com/s/xyz789/slides.pptx")
		require.NotNil(t, info)
		assert.Equal(t, "xyz789", info.FileID)
		assert.Equal(t, "pptx", info.FileType)
		assert.True(t, info.IsSharedLink)
	})

	t.Run("home path with preview parameter", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/home/Documents?preview=notes.txt")
		require.NotNil(t, info)
		assert.Equal(t, "notes.txt", info.FileID)
		assert.Equal(t, "txt", info.FileType)
		assert.False(t, info.IsSharedLink)
	})

	t.Run("preview path uses the last segment as the filename", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/preview/Work/reports/q3.xlsx")
		require.NotNil(t, info)
		assert.Equal(t, "Work/reports/q3.xlsx", info.FileID)
		assert.Equal(t, "xlsx", info.FileType)
	})

	t.Run("filename is percent-decoded before typing", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/scl/fi/abc123/annual%20report.pdf?rlkey=x")
		require.NotNil(t, info)
		assert.Equal(t, "pdf", info.FileType)
	})

	t.Run("no extension defaults to pdf", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/scl/fi/abc123/README?rlkey=x")
		require.NotNil(t, info)
		assert.Equal(t, "pdf", info.FileType)
	})

	t.Run("unrecognized extension defaults to txt", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/scl/fi/abc123/archive.tar.gz?rlkey=x")
		require.NotNil(t, info)
		assert.Equal(t, "txt", info.FileType)
	})

	t.Run("unrelated dropbox URL does not match", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, h.Detect("https://www.dropbox.com/plans"))
	})
}

func TestDropboxHandler_DownloadURL(t *testing.T) {
	t.Parallel()

	h := cloud.NewDropboxHandler()

	t.Run("replaces the query string with dl=1", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://www.dropbox.com/scl/fi/abc123/report.docx?rlkey=x&st=y")
		require.NotNil(t, info)

		downloadURL, err := h.DownloadURL(context.Background(), info, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://www.dropbox.com/scl/fi/abc123/report.docx?dl=1", downloadURL)
	})

	t.Run("strips fragments too", func(t *testing.T) {
		t.Parallel()

		downloadURL, err := h.DownloadURL(context.Background(), &pagegrab.ServiceFileInfo{
			URL: "https://www.dropbox.com/s/xyz789/slides.pptx#page=2",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://www.dropbox.com/s/xyz789/slides.pptx?dl=1", downloadURL)
	})
}

func TestDropboxHandler_ParseTitle(t *testing.T) {
	t.Parallel()

	h := cloud.NewDropboxHandler()
	assert.Equal(t, "report.docx", h.ParseTitle("report.docx - Dropbox"))
	assert.Equal(t, "report.docx", h.ParseTitle("report.docx | Dropbox"))
}
