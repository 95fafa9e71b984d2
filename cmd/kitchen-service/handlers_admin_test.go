package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ramasethuai/annapurnaskitchen/internal/admin"
)

//
// ===== STUB REPO (implements admin.Repository in memory) =====
//

type stubAdminRepo struct {
	byName map[string]admin.Admin
	nextID int64
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byName: make(map[string]admin.Admin)}
}

func (s *stubAdminRepo) Create(ctx context.Context, username, passwordHash string) error {
	if _, ok := s.byName[username]; ok {
		return admin.ErrAlreadyExist
	}
	s.nextID++
	s.byName[username] = admin.Admin{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	return nil
}

func (s *stubAdminRepo) GetByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	a, ok := s.byName[username]
	if !ok {
		return nil, admin.ErrNotFound
	}
	cp := a
	return &cp, nil
}

func (s *stubAdminRepo) List(ctx context.Context) ([]admin.Admin, error) {
	names := make([]string, 0, len(s.byName))
	for n := range s.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]admin.Admin, 0, len(names))
	for _, n := range names {
		out = append(out, s.byName[n])
	}
	return out, nil
}

func (s *stubAdminRepo) Count(ctx context.Context) (int, error) {
	return len(s.byName), nil
}

func newAdminRouter(repo admin.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// same routes as main, without the session gate
	r.GET("/api/admin/admins", listAdminsHandler(repo))
	r.POST("/api/admin/admins", createAdminHandler(repo))
	return r
}

//
// ===== TESTS =====
//

func TestCreateAdmin_PasswordTooShort(t *testing.T) {
	repo := newStubAdminRepo()
	r := newAdminRouter(repo)

	// Length is counted in characters, not bytes: "ñññ" is six bytes
	// but only three characters.
	for _, body := range []string{
		`{"username":"helper","password":"five5"}`,
		`{"username":"helper","password":"ñññ"}`,
		`{"username":"helper","password":"ñññññ"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: status=%d body=%s", body, w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Password should be at least 6 characters.") {
			t.Fatalf("body=%s: unexpected error: %s", body, w.Body.String())
		}
	}
	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("admin stored despite rejection: n=%d", n)
	}
}

// Six characters is enough even when every one of them is two bytes.
func TestCreateAdmin_MultibytePasswordAtMinimum(t *testing.T) {
	repo := newStubAdminRepo()
	r := newAdminRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(`{"username":"helper","password":"ññññññ"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("admin not stored: n=%d", n)
	}
}

// Six characters is the minimum, so exactly six must pass.
func TestCreateAdmin_StoresHashNotPlaintext(t *testing.T) {
	repo := newStubAdminRepo()
	r := newAdminRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(`{"username":"helper","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	a, err := repo.GetByUsername(context.Background(), "helper")
	if err != nil {
		t.Fatalf("admin not stored: %v", err)
	}
	if a.PasswordHash == "secret" {
		t.Fatalf("password stored in plaintext")
	}
	if !admin.CheckPassword(a.PasswordHash, "secret") {
		t.Fatalf("stored hash does not verify the password")
	}
}

func TestCreateAdmin_MissingFields(t *testing.T) {
	repo := newStubAdminRepo()
	r := newAdminRouter(repo)

	for _, body := range []string{
		`{"password":"secret"}`,
		`{"username":"helper"}`,
		`{"username":"   ","password":"secret"}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: status=%d, expected 400", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Username and password are required.") {
			t.Fatalf("body=%s: unexpected error: %s", body, w.Body.String())
		}
	}
}

func TestCreateAdmin_Duplicate(t *testing.T) {
	repo := newStubAdminRepo()
	hash, _ := admin.HashPassword("secret")
	_ = repo.Create(context.Background(), "helper", hash)
	r := newAdminRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(`{"username":"helper","password":"another6"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d body=%s, expected 409", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Username already exists.") {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestCreateAdmin_TrimsUsername(t *testing.T) {
	repo := newStubAdminRepo()
	r := newAdminRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(`{"username":"  helper  ","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if _, err := repo.GetByUsername(context.Background(), "helper"); err != nil {
		t.Fatalf("username not trimmed before storing: %v", err)
	}
}

func TestListAdmins_UsernamesOnly(t *testing.T) {
	repo := newStubAdminRepo()
	hash, _ := admin.HashPassword("secret")
	_ = repo.Create(context.Background(), "annapurna", hash)
	_ = repo.Create(context.Background(), "helper", hash)
	r := newAdminRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/admins", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []admin.Entry
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[0].Username != "annapurna" || got[1].Username != "helper" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if strings.Contains(w.Body.String(), hash) {
		t.Fatalf("password hash leaked into the response")
	}
}
