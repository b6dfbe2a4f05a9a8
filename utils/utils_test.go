package utils

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetCode(Validation("bad input")))
	assert.Equal(t, http.StatusNotFound, GetCode(NotFound("room")))
	assert.Equal(t, http.StatusConflict, GetCode(Conflict("duplicate")))
	assert.Equal(t, http.StatusUnprocessableEntity, GetCode(StateConflict("occupied")))
	assert.Equal(t, http.StatusInternalServerError, GetCode(errors.New("unclassified")))
}

func TestInternalHidesStoreDetail(t *testing.T) {
	err := Internal(errors.New(`Error 1062: Duplicate entry '101' for key 'rooms.room_number'`))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, GetCode(err))
	assert.Equal(t, "internal server error", err.Error())
}

func TestWriteDocument(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "invoices", "invoice.txt")
	require.NoError(t, WriteDocument(dest, "invoice body"))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "invoice body", string(content))
}

func TestWriteDocumentNoDestination(t *testing.T) {
	assert.NoError(t, WriteDocument("", "discarded"))
}

func TestRenderPaymentCode(t *testing.T) {
	png, err := RenderPaymentCode(decimal.RequireFromString("310.00"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
