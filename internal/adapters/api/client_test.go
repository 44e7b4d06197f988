package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Deltawerks/starprint/internal/ports"
)

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"configured": true, "sc_path": "/games/sc"})
	}))
	defer srv.Close()

	status, err := New(srv.URL).Status(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !status.Configured || status.GamePath != "/games/sc" {
		t.Errorf("status = %+v", status)
	}
}

func TestSetPath_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Path string `json:"path"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Path != "/bad" {
			t.Errorf("path = %q", body.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Data.p4k not found"})
	}))
	defer srv.Close()

	err := New(srv.URL).SetPath(context.Background(), "/bad")
	var se *ports.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want StatusError, got %v", err)
	}
	if se.Code != http.StatusBadRequest || se.Detail != "Data.p4k not found" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestCategories_BuildsTree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"categories":[
			{"name":"Weapons","children":[
				{"name":"Rifles","path":"weapons/rifles","leaf":true}
			]},
			{"name":"Armor","path":"armor","leaf":true}
		]}`)
	}))
	defer srv.Close()

	roots, err := New(srv.URL).Categories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots", len(roots))
	}
	if !roots[0].HasChildren() || roots[0].Children[0].Path != "weapons/rifles" {
		t.Errorf("branch node = %+v", roots[0])
	}
	if !roots[1].IsLeaf() {
		t.Errorf("armor should be a leaf: %+v", roots[1])
	}
}

func TestItems_PercentEncodesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		io.WriteString(w, `{"items":[{"id":"1","name":"Gladius","type":"Ship"}]}`)
	}))
	defer srv.Close()

	items, err := New(srv.URL).Items(context.Background(), "ships/aegis::AEGS")
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/items/ships%2Faegis::AEGS" {
		t.Errorf("request path = %q", gotPath)
	}
	if len(items) != 1 || items[0].Name != "Gladius" {
		t.Errorf("items = %+v", items)
	}
}

func TestSearch_EncodesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		io.WriteString(w, `{"results":[]}`)
	}))
	defer srv.Close()

	results, err := New(srv.URL).Search(context.Background(), "behring p4 & co")
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery != "behring p4 & co" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestGenerateThumbnails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		io.WriteString(w, `{"status":"complete","generated":3,"skipped":5,"failed":0}`)
	}))
	defer srv.Close()

	report, err := New(srv.URL).GenerateThumbnails(context.Background(), "weapons/rifles")
	if err != nil {
		t.Fatal(err)
	}
	if !report.Complete() || report.Generated != 3 || report.Skipped != 5 || report.Failed != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestExport_ApplicationFailurePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"error","message":"geometry missing"}`)
	}))
	defer srv.Close()

	result, err := New(srv.URL).Export(context.Background(), "guid-1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Succeeded() {
		t.Error("non-success status must not report success")
	}
	if result.Message != "geometry missing" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestDownload_ResolvesRelativeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dl/1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, "obj-bytes")
	}))
	defer srv.Close()

	rc, err := New(srv.URL).Download(context.Background(), "/dl/1")
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "obj-bytes" {
		t.Errorf("body = %q", data)
	}
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Download(context.Background(), "/missing")
	var se *ports.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Errorf("want 404 StatusError, got %v", err)
	}
}
