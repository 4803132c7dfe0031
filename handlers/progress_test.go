package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"reelview/handlers"
	"reelview/services/progress"
)

type fakeProgressStore struct {
	values  map[string]float64
	entries []progress.Entry
	lastSet float64
}

func (f *fakeProgressStore) Get(key string) float64 {
	return f.values[key]
}

func (f *fakeProgressStore) Set(key string, value float64) float64 {
	f.lastSet = value
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	if f.values == nil {
		f.values = make(map[string]float64)
	}
	f.values[key] = value
	return value
}

func (f *fakeProgressStore) Snapshot() map[string]float64 {
	return f.values
}

func (f *fakeProgressStore) ContinueWatching() []progress.Entry {
	return f.entries
}

func TestProgressHandler_Get(t *testing.T) {
	store := &fakeProgressStore{values: map[string]float64{"603": 42.5}}
	handler := handlers.NewProgressHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/progress/603", nil)
	req = mux.SetURLVars(req, map[string]string{"key": "603"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["progress"] != 42.5 {
		t.Fatalf("unexpected progress %v", response["progress"])
	}
}

func TestProgressHandler_GetRejectsBadKey(t *testing.T) {
	handler := handlers.NewProgressHandler(&fakeProgressStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/progress/not-a-key", nil)
	req = mux.SetURLVars(req, map[string]string{"key": "not-a-key"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestProgressHandler_Set(t *testing.T) {
	store := &fakeProgressStore{}
	handler := handlers.NewProgressHandler(store)

	req := httptest.NewRequest(http.MethodPut, "/api/progress/1399-s2-e5", strings.NewReader("73.25"))
	req = mux.SetURLVars(req, map[string]string{"key": "1399-s2-e5"})
	rec := httptest.NewRecorder()

	handler.Set(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["progress"] != 73.25 {
		t.Fatalf("unexpected progress %v", response["progress"])
	}
	if store.lastSet != 73.25 {
		t.Fatalf("store saw %v", store.lastSet)
	}
}

func TestProgressHandler_SetRejectsNonNumberBody(t *testing.T) {
	handler := handlers.NewProgressHandler(&fakeProgressStore{})

	req := httptest.NewRequest(http.MethodPut, "/api/progress/603", strings.NewReader(`{"progress": 50}`))
	req = mux.SetURLVars(req, map[string]string{"key": "603"})
	rec := httptest.NewRecorder()

	handler.Set(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestProgressHandler_Snapshot(t *testing.T) {
	store := &fakeProgressStore{values: map[string]float64{"603": 50, "1399-s1-e1": 12}}
	handler := handlers.NewProgressHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/progress", nil)
	rec := httptest.NewRecorder()

	handler.Snapshot(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var response map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response) != 2 || response["603"] != 50 {
		t.Fatalf("unexpected snapshot %+v", response)
	}
}
