package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/pdf-qa-be/types"
)

func interactionRouter(repo *fakeInteractionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/interactions/", NewInteractionHandler(repo).HandleListInteractions)
	return router
}

func TestHandleListInteractions(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	repo := &fakeInteractionRepo{recorded: []*types.Interaction{
		{PDFID: "doc1", Question: "q1", Resposta: "r1", Explicacao: "e1", Timestamp: now},
		{PDFID: "doc2", Question: "q2", Resposta: "r2", Explicacao: "e2", Timestamp: now},
		{PDFID: "doc1", Question: "q3", Resposta: "r3", Explicacao: "e3", Timestamp: now},
	}}
	router := interactionRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interactions/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var all []*types.Interaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)
	assert.Empty(t, repo.gotPDFID)
}

func TestHandleListInteractionsFiltered(t *testing.T) {
	repo := &fakeInteractionRepo{recorded: []*types.Interaction{
		{PDFID: "doc1", Question: "q1", Resposta: "r1"},
		{PDFID: "doc2", Question: "q2", Resposta: "r2"},
	}}
	router := interactionRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interactions/?pdf_id=doc1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "doc1", repo.gotPDFID)

	var filtered []*types.Interaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "q1", filtered[0].Question)
	assert.Equal(t, "r1", filtered[0].Resposta)
}

func TestHandleListInteractionsEmpty(t *testing.T) {
	router := interactionRouter(&fakeInteractionRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interactions/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// an empty history is an empty array, not null
	assert.JSONEq(t, `[]`, w.Body.String())
}
