package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testMailer(t *testing.T, handler http.HandlerFunc) *Mailer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := NewMailer("key-test", "mg.example.com", "Eats <noreply@example.com>")
	m.baseURL = srv.URL
	return m
}

func TestSend(t *testing.T) {
	var (
		gotPath string
		gotForm map[string]string
		gotUser string
		gotPass string
	)
	m := testMailer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotForm = map[string]string{
			"from":    r.PostForm.Get("from"),
			"to":      r.PostForm.Get("to"),
			"subject": r.PostForm.Get("subject"),
			"text":    r.PostForm.Get("text"),
		}
		w.WriteHeader(http.StatusOK)
	})

	err := m.Send(context.Background(), "client@example.com", "Verify Your Email", "code inside")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if gotPath != "/mg.example.com/messages" {
		t.Errorf("expected domain-scoped messages path, got %q", gotPath)
	}
	if gotUser != "api" || gotPass != "key-test" {
		t.Errorf("expected basic auth api/key-test, got %s/%s", gotUser, gotPass)
	}
	if gotForm["to"] != "client@example.com" || gotForm["subject"] != "Verify Your Email" {
		t.Errorf("unexpected form fields: %+v", gotForm)
	}
	if gotForm["from"] == "" || gotForm["text"] != "code inside" {
		t.Errorf("unexpected form fields: %+v", gotForm)
	}
}

func TestSend_Non2xx(t *testing.T) {
	m := testMailer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"Forbidden"}`, http.StatusUnauthorized)
	})

	err := m.Send(context.Background(), "client@example.com", "s", "t")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected status code in error, got: %v", err)
	}
}

func TestEnabled(t *testing.T) {
	if NewMailer("", "", "noreply@example.com").Enabled() {
		t.Error("mailer without credentials must report disabled")
	}
	if !NewMailer("key", "mg.example.com", "noreply@example.com").Enabled() {
		t.Error("mailer with credentials must report enabled")
	}
}

func TestSendVerification_DisabledIsNoOp(t *testing.T) {
	m := NewMailer("", "", "")
	// Must not panic or attempt the network.
	m.SendVerification("client@example.com", "code")
}
