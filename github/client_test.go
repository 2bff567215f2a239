package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientFetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/Sh0ckWaveZero" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("Accept = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"Sh0ckWaveZero","public_repos":150,"followers":31}`))
	}))
	defer srv.Close()

	st, err := NewClient(WithBaseURL(srv.URL)).FetchUser(context.Background(), "Sh0ckWaveZero")
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if st.PublicRepoCount != 150 || st.FollowerCount != 31 {
		t.Errorf("got %+v", st)
	}
	if st.Source != SourceLive || st.FetchedAt.IsZero() {
		t.Errorf("Source = %q FetchedAt = %v", st.Source, st.FetchedAt)
	}
}

func TestClientFetchUserUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"rate limited", http.StatusForbidden, `{"message":"API rate limit exceeded"}`},
		{"not found", http.StatusNotFound, `{"message":"Not Found"}`},
		{"malformed body", http.StatusOK, `not json`},
		{"missing fields", http.StatusOK, `{"login":"x"}`},
		{"negative count", http.StatusOK, `{"public_repos":-1,"followers":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(WithBaseURL(srv.URL)).FetchUser(context.Background(), "someone")
			if !errors.Is(err, ErrFetchUnavailable) {
				t.Errorf("err = %v, want ErrFetchUnavailable", err)
			}
		})
	}
}

func TestClientFetchUserNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(url)).FetchUser(context.Background(), "someone")
	if !errors.Is(err, ErrFetchUnavailable) {
		t.Errorf("err = %v, want ErrFetchUnavailable", err)
	}
}
