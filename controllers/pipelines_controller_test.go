package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SankarPatnaik/dataflow-studio/storage"
)

func validPipelineBody() map[string]any {
	return map[string]any{
		"name": "Orders ETL",
		"configuration": map[string]any{
			"nodes": []map[string]any{
				{"id": "1", "type": "source", "sourceType": "mysql", "position": map[string]int{"x": 10, "y": 20}},
			},
			"connections": []map[string]any{},
		},
	}
}

func TestPipelinesList(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodGet, "/api/pipelines", nil)
	statusOK(t, w)

	pipelines := decodeList(t, w)
	require.Len(t, pipelines, 1)
	assert.Equal(t, "Customer Data ETL", pipelines[0]["name"])
	assert.Equal(t, float64(1), pipelines[0]["userId"])
}

func TestPipelinesGet(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodGet, "/api/pipelines/1", nil)
	statusOK(t, w)
	assert.Equal(t, "active", decodeBody(t, w)["status"])

	w = doRequest(t, router, http.MethodGet, "/api/pipelines/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pipeline not found", decodeBody(t, w)["message"])

	// Non-numeric ids match nothing.
	w = doRequest(t, router, http.MethodGet, "/api/pipelines/abc", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPipelinesCreate(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodPost, "/api/pipelines", validPipelineBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "draft", body["status"])
	assert.Equal(t, float64(1), body["userId"])
	assert.NotEmpty(t, body["createdAt"])
}

func TestPipelinesCreateValidation(t *testing.T) {
	store := storage.New()
	router := newRouter(store)

	payload := validPipelineBody()
	delete(payload, "configuration")

	w := doRequest(t, router, http.MethodPost, "/api/pipelines", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid pipeline data", body["message"])
	assert.Contains(t, fieldNames(t, body), "configuration")

	// Nothing was stored.
	assert.Len(t, store.GetPipelines(1), 1)
}

func TestPipelinesCreateEnumValidation(t *testing.T) {
	router := newRouter(storage.New())

	payload := validPipelineBody()
	payload["status"] = "bogus"

	w := doRequest(t, router, http.MethodPost, "/api/pipelines", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, fieldNames(t, decodeBody(t, w)), "status")
}

func TestPipelinesUpdate(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodPut, "/api/pipelines/1", map[string]any{"status": "paused"})
	statusOK(t, w)

	body := decodeBody(t, w)
	assert.Equal(t, "paused", body["status"])
	// Untouched fields survive the merge.
	assert.Equal(t, "Customer Data ETL", body["name"])

	w = doRequest(t, router, http.MethodPut, "/api/pipelines/99", map[string]any{"status": "paused"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPipelinesDelete(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodDelete, "/api/pipelines/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Second delete of the same id is a 404.
	w = doRequest(t, router, http.MethodDelete, "/api/pipelines/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
