package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Pavan19102006/Jagadeesh-project/client/store"
)

// authBackend answers /auth/login and /auth/register, and echoes the
// Authorization header it sees on /dashboard/student.
func authBackend(t *testing.T, role Role, registerHits *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login", "/auth/register":
			if r.URL.Path == "/auth/register" && registerHits != nil {
				*registerHits++
			}
			body, _ := io.ReadAll(r.Body)
			var in map[string]any
			_ = json.Unmarshal(body, &in)
			if in["password"] == "wrong" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, "Invalid username or password")
				return
			}
			_ = json.NewEncoder(w).Encode(AuthResponse{
				Token: "tok-" + in["username"].(string),
				User:  User{ID: 7, Username: in["username"].(string), FullName: "Sam Lee", Role: role},
			})
		case "/dashboard/student":
			_ = json.NewEncoder(w).Encode(map[string]string{"auth": r.Header.Get("Authorization")})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_PersistsSession(t *testing.T) {
	srv := authBackend(t, RoleStudent, nil)
	s := store.NewMemoryStore()
	c := newTestClient(t, srv.URL, WithStore(s))

	resp, err := c.Login(context.Background(), "sam", "student123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-sam" {
		t.Fatalf("token = %q", resp.Token)
	}
	if tok, _ := s.Get(store.TokenKey); tok != "tok-sam" {
		t.Fatalf("stored token = %q", tok)
	}
	u, err := c.CurrentUser()
	if err != nil || u == nil || u.Username != "sam" || u.Role != RoleStudent {
		t.Fatalf("CurrentUser = %+v, %v", u, err)
	}
	if HomePath(u) != "/student" {
		t.Fatalf("HomePath = %q", HomePath(u))
	}

	raw, err := c.Fetch(context.Background(), "/dashboard/student", nil)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	var echoed map[string]string
	_ = json.Unmarshal(raw, &echoed)
	if echoed["auth"] != "Bearer tok-sam" {
		t.Fatalf("Authorization after login = %q", echoed["auth"])
	}
}

func TestLogin_FailureKeepsStoreEmpty(t *testing.T) {
	srv := authBackend(t, RoleStudent, nil)
	s := store.NewMemoryStore()
	c := newTestClient(t, srv.URL, WithStore(s))

	_, err := c.Login(context.Background(), "sam", "wrong")
	if err == nil || err.Error() != "Invalid username or password" {
		t.Fatalf("expected backend message, got %v", err)
	}
	if !IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if tok, _ := s.Get(store.TokenKey); tok != "" {
		t.Fatalf("token stored after failed login: %q", tok)
	}
}

func TestRegister_MismatchSendsNothing(t *testing.T) {
	hits := 0
	srv := authBackend(t, RoleStudent, &hits)
	c := newTestClient(t, srv.URL)

	_, err := c.Register(context.Background(), RegisterRequest{
		Username: "new", Email: "new@campus.edu", FullName: "New Student",
		Password: "secret1", ConfirmPassword: "secret2",
	})
	if err == nil || err.Error() != "Passwords do not match" {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	if !IsValidation(err) {
		t.Fatalf("expected validation error")
	}
	if hits != 0 {
		t.Fatalf("register endpoint called %d times", hits)
	}
}

func TestRegister_AdminHomeAndLogout(t *testing.T) {
	srv := authBackend(t, RoleAdmin, nil)
	path := filepath.Join(t.TempDir(), "storage.json")
	fs := store.NewFileStore(path)
	c := newTestClient(t, srv.URL, WithStore(fs))

	_, err := c.Register(context.Background(), RegisterRequest{
		Username: "dean", Email: "dean@campus.edu", FullName: "Dean",
		Password: "secret1", ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// A second client on the same file sees the session.
	c2 := newTestClient(t, srv.URL, WithStore(store.NewFileStore(path)))
	u, err := c2.CurrentUser()
	if err != nil || u == nil {
		t.Fatalf("CurrentUser: %+v %v", u, err)
	}
	if HomePath(u) != "/admin" {
		t.Fatalf("HomePath = %q", HomePath(u))
	}

	if err := c.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if u, err := c2.CurrentUser(); err != nil || u != nil {
		t.Fatalf("CurrentUser after logout = %+v, %v", u, err)
	}
	if tok, _ := c2.Token(); tok != "" {
		t.Fatalf("token after logout = %q", tok)
	}
}

func TestCurrentUser_Corrupt(t *testing.T) {
	s := store.NewMemoryStore()
	_ = s.Set(store.UserKey, "{not json")
	c := newTestClient(t, "http://example.com", WithStore(s))
	if _, err := c.CurrentUser(); err == nil {
		t.Fatalf("expected decode error")
	}
	if HomePath(nil) != "/student" {
		t.Fatalf("HomePath(nil) = %q", HomePath(nil))
	}
}
