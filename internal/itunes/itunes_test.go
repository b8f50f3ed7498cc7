package itunes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/handiism/album-collage/internal/http"
	"github.com/handiism/album-collage/internal/itunes/dto"
	"github.com/handiism/album-collage/internal/model"
)

func TestResult_HighResArtworkURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		size int
		want string
	}{
		{
			name: "standard thumbnail",
			url:  "https://is1-ssl.mzstatic.com/image/thumb/Music/source/100x100bb.jpg",
			size: 600,
			want: "https://is1-ssl.mzstatic.com/image/thumb/Music/source/600x600bb.jpg",
		},
		{
			name: "other starting size",
			url:  "https://example.com/art/30x30bb.png",
			size: 600,
			want: "https://example.com/art/600x600bb.png",
		},
		{
			name: "no artwork",
			url:  "",
			size: 600,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := dto.Result{ArtworkURL100: tt.url}
			if got := r.HighResArtworkURL(tt.size); got != tt.want {
				t.Errorf("HighResArtworkURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func searchServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("entity"); got != "album" {
			t.Errorf("entity = %q, want album", got)
		}
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		fmt.Fprint(w, body)
	}))
}

func newTestClient(srvURL string) *Client {
	c := NewClient(internalhttp.NewClient("test"), 600)
	c.baseURL = srvURL
	return c
}

func TestClient_LookupArtworkURL(t *testing.T) {
	srv := searchServer(t, `{
		"resultCount": 1,
		"results": [{
			"artistName": "Pink Floyd",
			"collectionName": "The Wall",
			"artworkUrl100": "https://example.com/a/100x100bb.jpg"
		}]
	}`)
	defer srv.Close()

	got, err := newTestClient(srv.URL).LookupArtworkURL(context.Background(), "Pink Floyd", "The Wall")
	if err != nil {
		t.Fatalf("LookupArtworkURL failed: %v", err)
	}
	if got != "https://example.com/a/600x600bb.jpg" {
		t.Errorf("artwork URL = %q", got)
	}
}

func TestClient_LookupArtworkURL_NoResults(t *testing.T) {
	srv := searchServer(t, `{"resultCount": 0, "results": []}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).LookupArtworkURL(context.Background(), "Nobody", "Nothing")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("err = %v, want ErrNoResults", err)
	}
}

func TestClient_LookupArtworkURL_MissingArtwork(t *testing.T) {
	srv := searchServer(t, `{"resultCount": 1, "results": [{"artistName": "X", "collectionName": "Y"}]}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).LookupArtworkURL(context.Background(), "X", "Y")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("err = %v, want ErrNoResults", err)
	}
}

// artServer serves both the search endpoint and the artwork itself so a
// whole FetchCover round trip runs against local handlers.
func artServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"resultCount": 1, "results": [{"artworkUrl100": %q}]}`,
			srv.URL+"/art/100x100bb.png")
	})
	mux.HandleFunc("/art/600x600bb.png", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 600, 600))); err != nil {
			t.Fatal(err)
		}
		w.Write(buf.Bytes())
	})

	srv = httptest.NewServer(mux)
	return srv
}

func TestFetcher_FetchCover(t *testing.T) {
	srv := artServer(t)
	defer srv.Close()

	httpClient := internalhttp.NewClient("test")
	client := NewClient(httpClient, 600)
	client.baseURL = srv.URL + "/search"
	fetcher := NewFetcher(client, httpClient, 600, 2)

	cover := fetcher.FetchCover(context.Background(), model.Entry{Artist: "A", Album: "B"})
	if cover.Placeholder {
		t.Fatalf("expected fetched cover, got placeholder: %v", cover.Err)
	}
	if cover.Image.Bounds().Dx() != 600 {
		t.Errorf("cover width = %d, want 600", cover.Image.Bounds().Dx())
	}
}

func TestFetcher_PlaceholderOnLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	httpClient := internalhttp.NewClient("test")
	client := NewClient(httpClient, 600)
	client.baseURL = srv.URL
	fetcher := NewFetcher(client, httpClient, 600, 2)

	cover := fetcher.FetchCover(context.Background(), model.Entry{Artist: "A", Album: "B"})
	if !cover.Placeholder {
		t.Fatal("expected placeholder cover")
	}
	if cover.Err == nil {
		t.Error("placeholder should record the failure reason")
	}
	if cover.Image == nil || cover.Image.Bounds().Dx() != 600 || cover.Image.Bounds().Dy() != 600 {
		t.Errorf("placeholder must be 600x600, got %v", cover.Image.Bounds())
	}
}

func TestFetcher_EmptyEntrySkipsNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"resultCount": 0, "results": []}`)
	}))
	defer srv.Close()

	httpClient := internalhttp.NewClient("test")
	client := NewClient(httpClient, 600)
	client.baseURL = srv.URL
	fetcher := NewFetcher(client, httpClient, 600, 2)

	cover := fetcher.FetchCover(context.Background(), model.Entry{})
	if !cover.Placeholder || cover.Err != nil {
		t.Errorf("empty entry should yield a clean placeholder: %+v", cover)
	}
	if hits != 0 {
		t.Errorf("empty entry hit the network %d times", hits)
	}
}

func TestFetcher_FetchAll_PreservesOrder(t *testing.T) {
	srv := artServer(t)
	defer srv.Close()

	httpClient := internalhttp.NewClient("test")
	client := NewClient(httpClient, 600)
	client.baseURL = srv.URL + "/search"
	fetcher := NewFetcher(client, httpClient, 600, 3)

	entries := []model.Entry{
		{Artist: "a", Album: "1"},
		{Artist: "b", Album: "2"},
		{Artist: "c", Album: "3"},
		{Artist: "d", Album: "4"},
		{Artist: "e", Album: "5"},
	}

	covers := fetcher.FetchAll(context.Background(), entries, func(model.Cover) {})

	if len(covers) != len(entries) {
		t.Fatalf("got %d covers, want %d", len(covers), len(entries))
	}
	for i, c := range covers {
		if c.Entry != entries[i] {
			t.Errorf("covers[%d].Entry = %+v, want %+v", i, c.Entry, entries[i])
		}
		if c.Image == nil {
			t.Errorf("covers[%d].Image is nil", i)
		}
	}
}
