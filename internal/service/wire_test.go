package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/hisaab/internal/middleware"
	"github.com/mmynk/hisaab/pkg/api"
)

// post sends a raw Connect JSON request and returns the status and body.
func (e *testEnv) post(t *testing.T, procedure, token, body string, header http.Header) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.url+procedure, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s failed: %v", procedure, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, data
}

func TestWireAmountsHaveTwoDecimals(t *testing.T) {
	env := setupTestServer(t)
	groupID, alice, bob, _ := setupGroup(t, env)

	body := fmt.Sprintf(`{"description":"Rent","amount":"100","groupId":"%d","participantIds":["%d","%d"]}`,
		groupID, alice.id, bob.id)
	status, data := env.post(t, "/hisaab.v1.ExpenseService/AddExpense", alice.token, body, nil)
	if status != http.StatusOK {
		t.Fatalf("AddExpense status = %d, body = %s", status, data)
	}

	var resp struct {
		Expense struct {
			Amount    string `json:"amount"`
			CreatedAt string `json:"createdAt"`
			Shares    []struct {
				Amount string `json:"amount"`
			} `json:"shares"`
		} `json:"expense"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
	if resp.Expense.Amount != "100.00" {
		t.Errorf("amount on the wire = %q, want \"100.00\"", resp.Expense.Amount)
	}
	for i, s := range resp.Expense.Shares {
		if s.Amount != "50.00" {
			t.Errorf("share %d on the wire = %q, want \"50.00\"", i, s.Amount)
		}
	}
	if _, err := time.Parse(time.RFC3339, resp.Expense.CreatedAt); err != nil {
		t.Errorf("createdAt = %q is not RFC 3339: %v", resp.Expense.CreatedAt, err)
	}

	status, data = env.post(t, "/hisaab.v1.BalanceService/GetGroupBalances", bob.token,
		fmt.Sprintf(`{"groupId":"%d"}`, groupID), nil)
	if status != http.StatusOK {
		t.Fatalf("GetGroupBalances status = %d, body = %s", status, data)
	}
	for _, want := range []string{`"amount":"50.00"`, `"net":"-50.00"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("GetGroupBalances body %s does not contain %s", data, want)
		}
	}
}

// syncBuffer is a bytes.Buffer safe for the server goroutines to log into.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFailuresLogRequestID(t *testing.T) {
	var logs syncBuffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	env := setupTestServer(t)
	alice := env.register(t, "alice")

	req := as(alice, &api.GetGroupRequest{GroupId: 9999})
	req.Header().Set(middleware.RequestIDHeader, "req-42")
	_, err := env.groups.GetGroup(context.Background(), req)
	wantCode(t, err, connect.CodeNotFound)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry["msg"] == "GetGroup failed" && entry["request_id"] == "req-42" {
			found = true
		}
	}
	if !found {
		t.Errorf("GetGroup failure was not logged with request_id req-42:\n%s", logs.String())
	}
}
