package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SankarPatnaik/dataflow-studio/storage"
)

func TestConnectorsList(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodGet, "/api/connectors", nil)
	statusOK(t, w)

	connectors := decodeList(t, w)
	require.Len(t, connectors, 3)
	assert.Equal(t, "Oracle Production", connectors[0]["name"])
}

func TestConnectorsCreate(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodPost, "/api/connectors", map[string]any{
		"name":          "Warehouse PG",
		"type":          "postgresql",
		"configuration": map[string]any{"host": "warehouse.local", "port": 5432},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["id"])
	assert.Equal(t, "inactive", body["status"])
	assert.Nil(t, body["lastTested"])
}

func TestConnectorsCreateValidation(t *testing.T) {
	router := newRouter(storage.New())

	// Every violated field is enumerated, not just the first.
	w := doRequest(t, router, http.MethodPost, "/api/connectors", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	names := fieldNames(t, decodeBody(t, w))
	assert.Contains(t, names, "name")
	assert.Contains(t, names, "type")
	assert.Contains(t, names, "configuration")
}

func TestConnectorsTest(t *testing.T) {
	t.Run("success flips status to active", func(t *testing.T) {
		store := storage.New(storage.WithRand(func() float64 { return 0.95 }))
		router := newRouter(store)
		before := time.Now()

		w := doRequest(t, router, http.MethodPost, "/api/connectors/3/test", nil)
		statusOK(t, w)

		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])

		connector, ok := body["connector"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "active", connector["status"])

		tested, err := time.Parse(time.RFC3339Nano, connector["lastTested"].(string))
		require.NoError(t, err)
		assert.False(t, tested.Before(before.Truncate(time.Second)))
	})

	t.Run("failure flips status to error", func(t *testing.T) {
		store := storage.New(storage.WithRand(func() float64 { return 0.05 }))
		router := newRouter(store)

		w := doRequest(t, router, http.MethodPost, "/api/connectors/1/test", nil)
		statusOK(t, w)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		connector := body["connector"].(map[string]any)
		assert.Equal(t, "error", connector["status"])
	})

	t.Run("unknown connector", func(t *testing.T) {
		router := newRouter(storage.New())

		w := doRequest(t, router, http.MethodPost, "/api/connectors/99/test", nil)
		statusOK(t, w)

		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Nil(t, body["connector"])
	})
}

func TestConnectorsUpdateAndDelete(t *testing.T) {
	router := newRouter(storage.New())

	w := doRequest(t, router, http.MethodPut, "/api/connectors/1", map[string]any{"name": "Oracle Staging"})
	statusOK(t, w)
	body := decodeBody(t, w)
	assert.Equal(t, "Oracle Staging", body["name"])
	assert.Equal(t, "oracle", body["type"])

	w = doRequest(t, router, http.MethodDelete, "/api/connectors/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/connectors/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Connector not found", decodeBody(t, w)["message"])
}
