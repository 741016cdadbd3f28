package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/conceptmap/backend/internal/server/middleware"
	"github.com/conceptmap/backend/pkg/graph"
	"github.com/conceptmap/backend/pkg/store"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

type fakeGraphCache struct {
	entries map[string]*graph.Graph
	putErr  error
}

func newFakeGraphCache() *fakeGraphCache {
	return &fakeGraphCache{entries: make(map[string]*graph.Graph)}
}

func (f *fakeGraphCache) Put(ctx context.Context, hash string, transcript string, g *graph.Graph) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.entries[hash] = g
	return nil
}

func (f *fakeGraphCache) Get(ctx context.Context, hash string) (*graph.Graph, error) {
	g, ok := f.entries[hash]
	if !ok {
		return nil, fmt.Errorf("%w: hash %s", store.ErrNotFound, hash)
	}
	return g, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i any) error {
	return tv.validator.Struct(i)
}

func newTestContext(
	t *testing.T, method string, target string, body string, app *middleware.App,
) (*middleware.AppContext, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return &middleware.AppContext{Context: e.NewContext(req, rec), App: app}, rec
}

func TestStoreGraphHandler_GraphOnlySameHash(t *testing.T) {
	cache := newFakeGraphCache()
	app := &middleware.App{Cache: cache}

	body := `{"graph": {
		"nodes": [
			{"id": 1, "label": "Python", "weight": 8, "summary": "", "quiz": []},
			{"id": 2, "label": "Django", "weight": 5, "summary": "", "quiz": []}
		],
		"links": [{"source": 1, "target": 2, "weight": 0.8, "relation": "is used by"}]
	}}`

	var hashes []string
	for range 2 {
		c, rec := newTestContext(t, http.MethodPost, "/store-graph", body, app)
		if err := StoreGraphHandler(c); err != nil {
			t.Fatalf("StoreGraphHandler() failed: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
		}

		var resp struct {
			Hash  string       `json:"hash"`
			Nodes []graph.Node `json:"nodes"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Hash == "" {
			t.Fatalf("response hash is empty")
		}
		if len(resp.Nodes) != 2 {
			t.Fatalf("response has %d nodes, want 2", len(resp.Nodes))
		}
		hashes = append(hashes, resp.Hash)
	}

	if hashes[0] != hashes[1] {
		t.Fatalf("identical payloads stored under different hashes: %s vs %s",
			hashes[0], hashes[1])
	}
	if len(cache.entries) != 1 {
		t.Fatalf("cache holds %d entries, want 1", len(cache.entries))
	}
}

func TestStoreGraphHandler_NormalizesSuppliedGraph(t *testing.T) {
	cache := newFakeGraphCache()
	app := &middleware.App{Cache: cache}

	// quiz and links are omitted entirely.
	body := `{"graph": {"nodes": [{"id": 1, "label": "Python", "weight": 8}]}}`

	c, rec := newTestContext(t, http.MethodPost, "/store-graph", body, app)
	if err := StoreGraphHandler(c); err != nil {
		t.Fatalf("StoreGraphHandler() failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
	}

	var resp struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	stored, ok := cache.entries[resp.Hash]
	if !ok {
		t.Fatalf("no cache entry under returned hash %s", resp.Hash)
	}
	if stored.Links == nil {
		t.Fatalf("stored graph has nil links, want empty slice")
	}
	if stored.Nodes[0].Quiz == nil {
		t.Fatalf("stored node has nil quiz, want empty slice")
	}
	if !strings.Contains(rec.Body.String(), `"quiz":[]`) {
		t.Fatalf("response should serialize quiz as [], got: %s", rec.Body)
	}
}

func TestStoreGraphHandler_MissingInput(t *testing.T) {
	app := &middleware.App{Cache: newFakeGraphCache()}

	c, rec := newTestContext(t, http.MethodPost, "/store-graph", `{}`, app)
	if err := StoreGraphHandler(c); err != nil {
		t.Fatalf("StoreGraphHandler() failed: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}

func TestStoreGraphHandler_InvalidSuppliedGraph(t *testing.T) {
	app := &middleware.App{Cache: newFakeGraphCache()}

	// Link target references a node that does not exist.
	body := `{"graph": {
		"nodes": [{"id": 1, "label": "Python", "weight": 8}],
		"links": [{"source": 1, "target": 99, "weight": 0.5, "relation": "mentions"}]
	}}`

	c, rec := newTestContext(t, http.MethodPost, "/store-graph", body, app)
	if err := StoreGraphHandler(c); err != nil {
		t.Fatalf("StoreGraphHandler() failed: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}
