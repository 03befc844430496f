package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPaystackVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref-123" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_abc" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":4500000}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_abc")
	res, err := client.VerifyTransaction(context.Background(), "ref-123")
	if err != nil {
		t.Fatalf("VerifyTransaction failed: %v", err)
	}
	if !res.Success {
		t.Error("want Success=true")
	}
	if res.AmountSubunits != 4500000 {
		t.Errorf("amount = %d, want 4500000", res.AmountSubunits)
	}
	if res.GatewayStatus != "success" {
		t.Errorf("gateway status = %s", res.GatewayStatus)
	}
}

func TestPaystackVerifyFailedTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"abandoned","amount":2000000}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_abc")
	res, err := client.VerifyTransaction(context.Background(), "ref-dead")
	if err != nil {
		t.Fatalf("VerifyTransaction failed: %v", err)
	}
	if res.Success {
		t.Error("abandoned transaction must not report Success")
	}
	if res.AmountSubunits != 2000000 {
		t.Errorf("amount = %d, want 2000000", res.AmountSubunits)
	}
}

func TestPaystackVerifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_abc")
	if _, err := client.VerifyTransaction(context.Background(), "ref-502"); err == nil {
		t.Fatal("want error on 502 from gateway")
	}
}

func TestPaystackInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/xyz","access_code":"xyz","reference":"ref-new"}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_abc")
	res, err := client.InitializeTransaction(context.Background(), "jane.2021@bouesti.edu.ng", 2000000, "https://app.example/callback", nil)
	if err != nil {
		t.Fatalf("InitializeTransaction failed: %v", err)
	}
	if res.AuthorizationURL != "https://checkout.paystack.com/xyz" {
		t.Errorf("authorization url = %s", res.AuthorizationURL)
	}
	if res.Reference != "ref-new" {
		t.Errorf("reference = %s", res.Reference)
	}
}
