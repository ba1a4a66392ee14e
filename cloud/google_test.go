package cloud_test

import (
	"context"
	"testing"

	pagegrab "github.com/mstolarz/pagegrab"
	"github.com/mstolarz/pagegrab/cloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleHandler_Detect(t *testing.T) {
	t.Parallel()

	h := cloud.NewGoogleHandler()

	t.Run("spreadsheet URL with account path", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://docs.google.com/spreadsheets/u/0/d/1AbC-_9/edit?usp=sharing")
		require.NotNil(t, info)
		assert.Equal(t, pagegrab.ServiceGoogle, info.Service)
		assert.Equal(t, "1AbC-_9", info.FileID)
		assert.Equal(t, "xlsx", info.FileType)
		assert.Equal(t, "https://docs.google.com/spreadsheets/d/1AbC-_9/export?format=xlsx", info.ExportURL)
	})

	t.Run("document URL maps to docx", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://docs.google.com/document/d/xYz_42/edit")
		require.NotNil(t, info)
		assert.Equal(t, "xYz_42", info.FileID)
		assert.Equal(t, "docx", info.FileType)
		assert.Equal(t, "https://docs.google.com/document/d/xYz_42/export?format=docx", info.ExportURL)
	})

	t.Run("presentation URL maps to pptx", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://docs.google.com/presentation/d/pres1/edit#slide=id.p")
		require.NotNil(t, info)
		assert.Equal(t, "pptx", info.FileType)
		assert.Equal(t, "https://docs.google.com/presentation/d/pres1/export?format=pptx", info.ExportURL)
	})

	t.Run("unrelated google URL does not match", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, h.Detect("https://drive.google.com/drive/folders/abc"))
		assert.Nil(t, h.Detect("https://docs.google.com/forms/d/abc/viewform"))
	})
}

func TestGoogleHandler_DownloadURL(t *testing.T) {
	t.Parallel()

	h := cloud.NewGoogleHandler()

	t.Run("returns the export URL without a live page", func(t *testing.T) {
		t.Parallel()

		info := h.Detect("https://docs.google.com/spreadsheets/d/1AbC-_9/edit")
		require.NotNil(t, info)

		downloadURL, err := h.DownloadURL(context.Background(), info, nil)
		require.NoError(t, err)
		assert.Equal(t, info.ExportURL, downloadURL)
	})

	t.Run("missing export URL is EUNRESOLVED", func(t *testing.T) {
		t.Parallel()

		_, err := h.DownloadURL(context.Background(), &pagegrab.ServiceFileInfo{FileID: "x"}, nil)
		require.Error(t, err)
		assert.Equal(t, pagegrab.EUNRESOLVED, pagegrab.ErrorCode(err))
	})
}

func TestGoogleHandler_ParseTitle(t *testing.T) {
	t.Parallel()

	h := cloud.NewGoogleHandler()
	assert.Equal(t, "Q3 Budget", h.ParseTitle("Q3 Budget - Google Sheets"))
	assert.Equal(t, "Notes", h.ParseTitle("Notes - Google Docs"))
	assert.Equal(t, "Plain Title", h.ParseTitle("Plain Title"))
}
