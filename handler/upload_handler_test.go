package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/pdf-qa-be/service"
	"github.com/tieubaoca/pdf-qa-be/types"
)

func uploadRouter(docs *fakeDocumentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload-pdf/", NewUploadHandler(service.NewPDFService(), docs).HandleUploadPDF)
	return router
}

func postUpload(t *testing.T, router *gin.Engine, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="sample.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-pdf/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleUploadPDFWrongContentType(t *testing.T) {
	docs := &fakeDocumentRepo{nextID: "abc"}
	router := uploadRouter(docs)

	w := postUpload(t, router, "text/plain", []byte("just text"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body types.DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "O arquivo enviado não é um PDF.", body.Detail)
	assert.Empty(t, docs.docs)
}

func TestHandleUploadPDFInvalidBytes(t *testing.T) {
	docs := &fakeDocumentRepo{nextID: "abc"}
	router := uploadRouter(docs)

	w := postUpload(t, router, "application/pdf", []byte("not really a pdf"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, docs.docs)
}

func TestHandleUploadPDFMissingFile(t *testing.T) {
	router := uploadRouter(&fakeDocumentRepo{})

	req := httptest.NewRequest(http.MethodPost, "/upload-pdf/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUploadPDFSuccess(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.pdf")
	if err != nil {
		t.Skip("testdata/sample.pdf not present:", err)
	}
	if _, err := service.NewPDFService().ExtractText(data); err != nil {
		t.Skip("sample PDF not extractable in this environment:", err)
	}

	docs := &fakeDocumentRepo{nextID: "60f6e8b3a5c28e0c401c81d2"}
	router := uploadRouter(docs)

	w := postUpload(t, router, "application/pdf", data)

	require.Equal(t, http.StatusOK, w.Code)
	var body types.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "60f6e8b3a5c28e0c401c81d2", body.PDFID)
	assert.NotEmpty(t, body.Text)

	// the stored text is exactly what the response carried
	assert.Equal(t, body.Text, docs.docs["60f6e8b3a5c28e0c401c81d2"])
}
