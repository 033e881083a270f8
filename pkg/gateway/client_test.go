package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	consoleerrors "github.com/eidora/mythos/pkg/errors"
	"github.com/eidora/mythos/pkg/mythology"
)

func TestFetchNarrativesRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]mythology.NarrativeFragment{
			{ID: "n1", Title: "The Crossing", Archetype: mythology.ArchetypeHero},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.FetchNarratives(context.Background(), 10)
	if err != nil {
		t.Fatalf("FetchNarratives: %v", err)
	}

	if gotPath != "/api/mythology/narratives" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "limit=10" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Errorf("narratives = %+v", got)
	}
}

func TestSubmitInteractionPostsDraft(t *testing.T) {
	var received mythology.InteractionDraft
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/api/mythology/process" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(mythology.NarrativeFragment{ID: "new", Title: "Woven"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	draft := mythology.InteractionDraft{
		UserInteraction: "asked about rivers",
		AIResponse:      "spoke of deltas",
		Outcome:         mythology.OutcomeSuccess,
		SessionID:       "s1",
	}
	fragment, err := client.SubmitInteraction(context.Background(), draft)
	if err != nil {
		t.Fatalf("SubmitInteraction: %v", err)
	}
	if fragment.ID != "new" {
		t.Errorf("fragment = %+v", fragment)
	}
	if received != draft {
		t.Errorf("server received %+v, want %+v", received, draft)
	}
}

func TestDreamEndpoints(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path+"?"+r.URL.RawQuery)
		json.NewEncoder(w).Encode(mythology.DreamScenario{ID: "d1", ResonanceScore: 0.9})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	if _, err := client.TriggerDream(ctx); err != nil {
		t.Fatalf("TriggerDream: %v", err)
	}
	if _, err := client.TriggerEnhancedDream(ctx, mythology.ToneWonder); err != nil {
		t.Fatalf("TriggerEnhancedDream: %v", err)
	}
	if _, err := client.TriggerMergerDream(ctx); err != nil {
		t.Fatalf("TriggerMergerDream: %v", err)
	}

	want := []string{
		"/api/mythology/dream?",
		"/api/mythology/enhanced-dream?seed_emotion=Wonder",
		"/api/mythology/consciousness-merger?",
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("call %d hit %q, want %q", i, paths[i], p)
		}
	}
}

func TestServerErrorMapsToBadStatus(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "exhausted", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchStats(context.Background())
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeBadStatus {
		t.Errorf("code = %q, want BAD_STATUS", got)
	}
	if !consoleerrors.IsRetryable(err) {
		t.Error("5xx should be marked retryable")
	}
	// Failures surface, they are not retried internally.
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestClientErrorNotRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such myth", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchDreams(context.Background(), 5)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if consoleerrors.IsRetryable(err) {
		t.Error("4xx should not be retryable")
	}
}

func TestNetworkFailureMapsToTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClientWithOptions(server.URL, ClientOptions{Timeout: time.Second})
	_, err := client.FetchStats(context.Background())
	if err == nil {
		t.Fatal("expected error against a closed server")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeTransport {
		t.Errorf("code = %q, want TRANSPORT", got)
	}
	if !consoleerrors.IsRetryable(err) {
		t.Error("network failures should be retryable")
	}
}

func TestMalformedBodyMapsToDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchStats(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if got := consoleerrors.GetCode(err); got != consoleerrors.ErrCodeDecode {
		t.Errorf("code = %q, want DECODE", got)
	}
}

func TestSearchAndStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/mythology/search":
			if kw := r.URL.Query().Get("keyword"); kw != "river" {
				t.Errorf("keyword = %q", kw)
			}
			json.NewEncoder(w).Encode([]mythology.NarrativeFragment{{ID: "n9"}})
		case "/api/status":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(StatusCheck{ID: "c1", ClientName: body["client_name"]})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	results, err := client.SearchNarratives(context.Background(), "river")
	if err != nil {
		t.Fatalf("SearchNarratives: %v", err)
	}
	if len(results) != 1 || results[0].ID != "n9" {
		t.Errorf("results = %+v", results)
	}

	check, err := client.CheckStatus(context.Background(), "test-console")
	if err != nil {
		t.Fatalf("CheckStatus: %v", err)
	}
	if check.ClientName != "test-console" {
		t.Errorf("check = %+v", check)
	}
}
