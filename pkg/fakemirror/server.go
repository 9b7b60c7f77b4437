package fakemirror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/craftget/craftget/pkg/fetch"
	"github.com/craftget/craftget/pkg/mirror"
)

// Server is an in-memory mirror for tests: it serves whatever
// bodies are registered, counts hits per path, and can inject a
// bounded number of corrupted or failed responses for any path.
type Server struct {
	HS *httptest.Server

	mu      sync.Mutex
	files   map[string][]byte
	hits    map[string]int
	corrupt map[string]int
	fail    map[string]int
	lastUA  string
}

func New() *Server {
	s := &Server{
		files:   make(map[string][]byte),
		hits:    make(map[string]int),
		corrupt: make(map[string]int),
		fail:    make(map[string]int),
	}
	s.HS = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) Close() {
	s.HS.Close()
}

// URL is the mirror base, trailing slash included.
func (s *Server) URL() string {
	return s.HS.URL + "/"
}

// Mirror returns a mirror.Mirror pointed entirely at this server.
func (s *Server) Mirror() mirror.Mirror {
	return mirror.Mirror{
		VersionManifest: s.URL(),
		Assets:          s.URL() + "assets/",
		Client:          s.URL(),
		Libraries:       s.URL(),
	}
}

func (s *Server) handle(
	w http.ResponseWriter, r *http.Request,
) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	s.mu.Lock()
	s.hits[path]++
	s.lastUA = r.Header.Get("User-Agent")

	if s.fail[path] > 0 {
		s.fail[path]--
		s.mu.Unlock()
		http.Error(w, "injected failure", 500)
		return
	}

	body, ok := s.files[path]
	corrupted := false
	if ok && s.corrupt[path] > 0 {
		s.corrupt[path]--
		corrupted = true
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", 404)
		return
	}
	if corrupted {
		body = mangle(body)
	}
	w.Write(body)
}

// mangle returns bytes that never hash to the original's digest.
func mangle(b []byte) []byte {
	out := make([]byte, len(b)+1)
	copy(out, b)
	out[len(b)] = '!'
	return out
}

// SetFile registers body at path (no leading slash).
func (s *Server) SetFile(path string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = body
}

// SetJSON marshals v and registers it at path.
func (s *Server) SetJSON(path string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.SetFile(path, body)
}

// AddObject stores data in the served object store and returns its
// hash.
func (s *Server) AddObject(data []byte) string {
	hash := fetch.Sum(data)
	s.SetFile("assets/"+hash[:2]+"/"+hash, data)
	return hash
}

// CorruptNext makes the next n responses for path return mangled
// bytes with status 200.
func (s *Server) CorruptNext(path string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.corrupt[path] = n
}

// FailNext makes the next n responses for path return status 500.
func (s *Server) FailNext(path string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = n
}

func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// ObjectHits counts requests under the served object store.
func (s *Server) ObjectHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for path, n := range s.hits {
		if strings.HasPrefix(path, "assets/") {
			total += n
		}
	}
	return total
}

func (s *Server) LastUserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUA
}
