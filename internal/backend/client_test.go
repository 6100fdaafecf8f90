package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harrylevesque/storefront/internal/models"
)

func TestLoginPostsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/auth/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "pekka@example.com" || body.Password != "hunter2" {
			t.Errorf("unexpected body %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"auth_token": "abc123"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	res, err := c.Login(context.Background(), models.LoginRequest{Email: "pekka@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if res.AuthToken != "abc123" {
		t.Errorf("AuthToken = %q, want abc123", res.AuthToken)
	}
}

func TestLoginWithoutTokenIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "nope"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, time.Second).Login(context.Background(), models.LoginRequest{})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if res.AuthToken != "" {
		t.Errorf("AuthToken = %q, want empty", res.AuthToken)
	}
}

func TestRegisterPostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["role"] != "Seller" || body["image"] != "avatar.png" || body["name"] != "Pekka" {
			t.Errorf("unexpected body %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status": "success"}`))
	}))
	defer srv.Close()

	image := "avatar.png"
	res, err := New(srv.URL, time.Second).Register(context.Background(), models.RegisterRequest{
		Name:  "Pekka",
		Email: "pekka@example.com",
		Image: &image,
		Role:  models.RoleSeller,
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if !res.Succeeded() {
		t.Errorf("expected success, got %+v", res)
	}
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Register(context.Background(), models.RegisterRequest{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusConflict || se.Body != "conflict" {
		t.Errorf("unexpected error %+v", se)
	}
}

func TestEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	res, err := New(srv.URL, time.Second).Register(context.Background(), models.RegisterRequest{})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if res.Succeeded() {
		t.Error("an empty body carries no success status")
	}
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, time.Second).Login(context.Background(), models.LoginRequest{}); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	if _, err := New(srv.URL, 50*time.Millisecond).Login(context.Background(), models.LoginRequest{}); err == nil {
		t.Fatal("expected a timeout error")
	}
}
