// internal/catalog/client_test.go
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetchDefinition(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/aurora-x5", r.URL.Path)
		w.Write([]byte(`{"sku": "aurora-x5"}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, 5*time.Second)
	body, err := client.FetchDefinition(context.Background(), "aurora-x5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sku": "aurora-x5"}`, string(body))
}

func TestClientFetchDefinitionNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL, 5*time.Second)
	_, err := client.FetchDefinition(context.Background(), "missing-sku")
	assert.Error(t, err)
}
