package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"hearth-home-server/moderation"
	"hearth-home-server/query"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

// listingJSON is the slice of the wire shape these tests care about.
type listingJSON struct {
	ID          uint    `json:"ID"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Kind        string  `json:"kind"`
	Bedrooms    int     `json:"bedrooms"`
	City        string  `json:"city"`
	Featured    bool    `json:"featured"`
	Status      string  `json:"status"`
	ReportCount int     `json:"reportCount"`
	Views       int     `json:"views"`
}

// buildListingTestApp wires the listing routes against an in-memory store
// seeded with the demo fixtures, mirroring the wiring in main.go.
func buildListingTestApp() (*iris.Application, *storage.MemoryListingStore) {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	store := storage.NewMemoryListingStore()
	store.Seed(storage.FixtureListings(1, time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)))
	Bind(store, query.NewEngine(store), moderation.NewMachine(store), nil, nil)

	app := iris.New()
	// Correct trailing-slash paths in-process instead of issuing the 301/307
	// redirects a real client would follow; httptest recorders do not.
	app.Configure(iris.WithoutPathCorrectionRedirection)
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	listings := app.Party("/api/listings")
	{
		listings.Get("/", SearchListings)
		listings.Post("/search", SearchListingsAI)
		listings.Get("/{id:uint}", GetListing)
		listings.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, CreateListing)
		listings.Post("/{id:uint}/report", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, ReportListing)
	}
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app, store
}

func signListingTestToken(id uint) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: id, Role: "buyer"})
	return string(token)
}

func doJSON(t *testing.T, app *iris.Application, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func decodeListings(t *testing.T, resp *httptest.ResponseRecorder) []listingJSON {
	t.Helper()
	var results []listingJSON
	if err := json.Unmarshal(resp.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode listings: %v (body: %s)", err, resp.Body.String())
	}
	return results
}

func TestSearchListingsBedsitters(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/?kind=rent&bedrooms=0", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	results := decodeListings(t, resp)
	if len(results) != 4 {
		t.Fatalf("expected 4 bedsitters, got %d", len(results))
	}
	for _, l := range results {
		if l.Kind != "rent" || l.Bedrooms != 0 {
			t.Fatalf("unexpected listing in bedsitter search: %+v", l)
		}
	}
}

func TestSearchListingsContradictoryRangeIsEmptyArray(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/?minPrice=5000&maxPrice=1000", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if results := decodeListings(t, resp); len(results) != 0 {
		t.Fatalf("expected empty result set, got %d listings", len(results))
	}
}

func TestSearchListingsFourPlusSentinel(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/?bedrooms=4%2B", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	results := decodeListings(t, resp)
	if len(results) == 0 {
		t.Fatal("expected at least one 4+ bedroom listing")
	}
	for _, l := range results {
		if l.Bedrooms < 4 {
			t.Fatalf("listing %d has %d bedrooms, expected 4+", l.ID, l.Bedrooms)
		}
	}
}

func TestSearchListingsAIFallsBackToUnfiltered(t *testing.T) {
	// translator is nil, so the handler runs an unfiltered search.
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/listings/search", "", `{"query":"cheap bedsitter in austin"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Results []listingJSON `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode search response: %v", err)
	}
	if len(payload.Results) != 16 {
		t.Fatalf("expected all 16 listings, got %d", len(payload.Results))
	}
}

func TestGetListingIncrementsViews(t *testing.T) {
	app, store := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/3", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var l listingJSON
	if err := json.Unmarshal(resp.Body.Bytes(), &l); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if l.ID != 3 {
		t.Fatalf("expected listing 3, got %d", l.ID)
	}

	stored, err := store.FetchListingByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	if stored.Views != 1 {
		t.Fatalf("expected 1 view after fetch, got %d", stored.Views)
	}
}

func TestGetListingNotFound(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/999", "", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCreateListingRequiresAuth(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/listings/", "", `{"title":"x","kind":"rent","city":"Austin","price":100}`)
	if resp.Code == http.StatusCreated {
		t.Fatalf("expected rejection without token, got %d", resp.Code)
	}
}

func TestCreateListingStartsActive(t *testing.T) {
	app, store := buildListingTestApp()

	body := `{"title":"Bright Corner Studio","kind":"rent","city":"Portland","price":925,"bedrooms":0,"bathrooms":1,"amenities":["Wifi"],"images":[]}`
	resp := doJSON(t, app, http.MethodPost, "/api/listings/", signListingTestToken(42), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var l listingJSON
	if err := json.Unmarshal(resp.Body.Bytes(), &l); err != nil {
		t.Fatalf("failed to decode created listing: %v", err)
	}
	if l.Status != "active" || l.ReportCount != 0 {
		t.Fatalf("new listing must start active with zero reports, got %+v", l)
	}

	stored, err := store.FetchListingByID(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("created listing not in store: %v", err)
	}
	if stored.CreatorID != 42 {
		t.Fatalf("creator must come from the token, got %d", stored.CreatorID)
	}
}

func TestCreateListingRejectsUnknownKind(t *testing.T) {
	app, _ := buildListingTestApp()

	body := `{"title":"x","kind":"lease","city":"Austin","price":100}`
	resp := doJSON(t, app, http.MethodPost, "/api/listings/", signListingTestToken(42), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid kind, got %d", resp.Code)
	}
}

func TestReportFlowSuspendsAtThreshold(t *testing.T) {
	app, _ := buildListingTestApp()

	// Three distinct reporters push listing 2 over the threshold.
	for reporter := uint(10); reporter < 13; reporter++ {
		resp := doJSON(t, app, http.MethodPost, "/api/listings/2/report", signListingTestToken(reporter), `{"reason":"spam"}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("report %d: expected 200, got %d: %s", reporter, resp.Code, resp.Body.String())
		}
		var l listingJSON
		if err := json.Unmarshal(resp.Body.Bytes(), &l); err != nil {
			t.Fatalf("failed to decode report response: %v", err)
		}
		want := "active"
		if reporter == 12 {
			want = "suspended"
		}
		if l.Status != want {
			t.Fatalf("after report %d expected status %q, got %q", l.ReportCount, want, l.Status)
		}
	}

	// The suspended listing no longer surfaces in search...
	resp := doJSON(t, app, http.MethodGet, "/api/listings/", "", "")
	for _, l := range decodeListings(t, resp) {
		if l.ID == 2 {
			t.Fatal("suspended listing must not appear in search results")
		}
	}

	// ...but direct fetch still works for owners and moderators.
	resp = doJSON(t, app, http.MethodGet, "/api/listings/2", "", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 on direct fetch, got %d", resp.Code)
	}
	var l listingJSON
	if err := json.Unmarshal(resp.Body.Bytes(), &l); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if l.Status != "suspended" || l.ReportCount != 3 {
		t.Fatalf("expected suspended listing with 3 reports, got %+v", l)
	}
}

func TestReportUnknownListing(t *testing.T) {
	app, store := buildListingTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/listings/999/report", signListingTestToken(10), `{"reason":"spam"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if reports := store.Reports(); len(reports) != 0 {
		t.Fatalf("no audit record may be written for a missing listing, got %d", len(reports))
	}
}

func TestReportRequiresReason(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/listings/2/report", signListingTestToken(10), `{}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a reason, got %d", resp.Code)
	}
}

func TestCanonicalOrderingOverHTTP(t *testing.T) {
	app, _ := buildListingTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/listings/", "", "")
	results := decodeListings(t, resp)
	if len(results) != 16 {
		t.Fatalf("expected 16 listings, got %d", len(results))
	}
	if !results[0].Featured || !results[1].Featured {
		t.Fatalf("featured listings must lead the results, got %v then %v",
			fmt.Sprintf("id=%d featured=%v", results[0].ID, results[0].Featured),
			fmt.Sprintf("id=%d featured=%v", results[1].ID, results[1].Featured))
	}
	for _, l := range results[2:] {
		if l.Featured {
			t.Fatalf("featured listing %d sorted after non-featured ones", l.ID)
		}
	}
}
