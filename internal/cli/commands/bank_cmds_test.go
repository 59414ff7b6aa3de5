package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Teller/internal/cli/model"
)

func TestClients_Run_ListAndOffline(t *testing.T) {
	buf := captureOut(t)

	var requests int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/clients" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-access" {
			t.Fatalf("missing bearer header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(model.Page[model.ClientRecord]{
			Content:       []model.ClientRecord{{ID: 1, LastName: "Mensah", FirstName: "Afi"}},
			TotalElements: 1,
			TotalPages:    1,
		})
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loginAs(t, cfg, "afi")

	cmd := clientsCmd{}
	if err := cmd.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("clients: %v", err)
	}
	if !strings.Contains(buf.String(), "Mensah") {
		t.Fatalf("client not printed: %q", buf.String())
	}

	// офлайн-режим читает снапшот, записанный первым вызовом, без сети
	buf.Reset()
	if err := cmd.Run(context.Background(), cfg, []string{"--offline"}); err != nil {
		t.Fatalf("clients --offline: %v", err)
	}
	if requests != 1 {
		t.Fatalf("offline mode must not hit the server, requests=%d", requests)
	}
	if !strings.Contains(buf.String(), "Offline snapshot") || !strings.Contains(buf.String(), "Mensah") {
		t.Fatalf("offline output: %q", buf.String())
	}
}

func TestDeposit_Run(t *testing.T) {
	buf := captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/ACC-1/deposit" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var req model.OperationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Amount != 250 {
			t.Fatalf("amount = %v", req.Amount)
		}
		_ = json.NewEncoder(w).Encode(model.TransactionRecord{
			Type: model.TransactionDeposit, Amount: 250, BalanceAfter: 750, AccountNumber: "ACC-1",
		})
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loginAs(t, cfg, "afi")

	cmd := depositCmd{}
	if err := cmd.Run(context.Background(), cfg, []string{"ACC-1", "250", "cash", "in"}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if !strings.Contains(buf.String(), "750.00") {
		t.Fatalf("new balance not printed: %q", buf.String())
	}

	// некорректная сумма → ErrUsage
	if err := cmd.Run(context.Background(), cfg, []string{"ACC-1", "-5"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage for negative amount, got %v", err)
	}
}

func TestWithdraw_Run_InsufficientBalance(t *testing.T) {
	captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"solde insuffisant"}`))
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loginAs(t, cfg, "afi")

	err := (withdrawCmd{}).Run(context.Background(), cfg, []string{"ACC-1", "9999"})
	if err == nil || !strings.Contains(err.Error(), "insufficient balance") {
		t.Fatalf("expected insufficient balance error, got %v", err)
	}
}

func TestTransfer_Run_SameAccount(t *testing.T) {
	captureOut(t)

	cfg := testConfig(t, "http://unused")
	err := (transferCmd{}).Run(context.Background(), cfg, []string{"ACC-1", "ACC-1", "10"})
	if err == nil || !strings.Contains(err.Error(), "must differ") {
		t.Fatalf("expected same-account error, got %v", err)
	}
}

func TestStatement_Run_WritesFile(t *testing.T) {
	captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/statements/ACC-1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 test"))
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loginAs(t, cfg, "afi")

	out := filepath.Join(t.TempDir(), "statement.pdf")
	err := (statementCmd{}).Run(context.Background(), cfg,
		[]string{"ACC-1", "2026-01-01", "2026-02-01", "--out", out})
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || !strings.HasPrefix(string(b), "%PDF") {
		t.Fatalf("statement file not written: %v %q", err, b)
	}
}

func TestDashboard_Run(t *testing.T) {
	buf := captureOut(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/stats" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(model.DashboardStats{
			TotalClients: 12, TotalAccounts: 20, ActiveAccounts: 18,
			TotalBalance: 1234.5, TotalTransactions: 77,
		})
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loginAs(t, cfg, "afi")

	if err := (dashboardCmd{}).Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if !strings.Contains(buf.String(), "1234.50") || !strings.Contains(buf.String(), "77") {
		t.Fatalf("dashboard output: %q", buf.String())
	}
}
