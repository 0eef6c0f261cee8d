package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"c2cq/util"
)

func TestClient_list(t *testing.T) {
	// Arrange
	var requestedPath string
	var requestedQuery map[string][]string
	var requestedUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestedPath = request.URL.Path
		requestedQuery = request.URL.Query()
		requestedUserAgent = request.Header.Get("User-Agent")
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"total": 1, "documents": [{"document_id": 42, "type": "r"}]}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseUrl = server.URL
	config.UserAgent = "c2cq-test"
	config.DefaultParams = map[string]string{"pl": "fr"}
	c := NewClient(config)

	// Act
	page, err := c.ListRoutes(context.Background(), map[string]string{"act": "rock_climbing", "limit": "30"})

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, "/routes", requestedPath)
	util.AssertEqual(t, []string{"rock_climbing"}, requestedQuery["act"])
	util.AssertEqual(t, []string{"30"}, requestedQuery["limit"])
	util.AssertEqual(t, []string{"fr"}, requestedQuery["pl"])
	util.AssertEqual(t, "c2cq-test", requestedUserAgent)
	util.AssertEqual(t, 1, page.Total)
	util.AssertEqual(t, 1, len(page.Documents))
	util.AssertEqual(t, int64(42), page.Documents[0].Id())
}

func TestClient_perCallParamsOverrideDefaults(t *testing.T) {
	// Arrange
	var requestedQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestedQuery = request.URL.Query()
		_, _ = writer.Write([]byte(`{"total": 0, "documents": []}`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseUrl = server.URL
	config.DefaultParams = map[string]string{"pl": "fr"}
	c := NewClient(config)

	// Act
	_, err := c.ListWaypoints(context.Background(), map[string]string{"pl": "de"})

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, []string{"de"}, requestedQuery["pl"])
}

func TestClient_errorStatusPropagates(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`invalid filter value`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseUrl = server.URL
	c := NewClient(config)

	// Act
	page, err := c.ListRoutes(context.Background(), nil)

	// Assert: the remote rejection surfaces as an error, not a sentinel.
	util.AssertNotNil(t, err)
	util.AssertNil(t, page)
}

func TestClient_malformedResponsePropagates(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{not json`))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseUrl = server.URL
	c := NewClient(config)

	// Act
	page, err := c.ListRoutes(context.Background(), nil)

	// Assert
	util.AssertNotNil(t, err)
	util.AssertNil(t, page)
}
