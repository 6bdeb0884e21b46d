package tests

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/application/services"
	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/codec"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/persistence/bolt"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/queue"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/validation-status-listener/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deliverySecret = "integration-secret"

type stack struct {
	server *httptest.Server
	repo   application.ValidationRequestRepository
}

func newStack(t *testing.T, repo application.ValidationRequestRepository, pinger handlers.Pinger) *stack {
	t.Helper()
	logger := testhelpers.DiscardLogger()

	listener := queue.NewListener(codec.NewDecoder(), services.NewIncomingMessageService(repo, logger), logger)
	h := handlers.NewHandlers(listener, services.NewQueryService(repo), pinger, deliverySecret, logger)

	server := httptest.NewServer(handlers.NewRouter(h, logger, 5*time.Second))
	t.Cleanup(server.Close)
	return &stack{server: server, repo: repo}
}

func setupBolt(t *testing.T) *stack {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "requests.db"), testhelpers.DiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newStack(t, bolt.NewValidationRequestRepository(db), db)
}

func (s *stack) seed(t *testing.T, ids ...int64) {
	t.Helper()
	for _, id := range ids {
		_, err := s.repo.Save(context.Background(), domain.NewValidationRequest(id))
		require.NoError(t, err)
	}
}

func (s *stack) deliveryRequest(t *testing.T, deliveryID, key, payload string) *http.Request {
	t.Helper()
	raw, err := json.Marshal(handlers.Delivery{
		ID:       deliveryID,
		Body:     base64.StdEncoding.EncodeToString([]byte(payload)),
		Queue:    "validation-status",
		Metadata: map[string]string{handlers.MetadataKey: key},
	})
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte(deliverySecret))
	mac.Write(raw)

	req, err := http.NewRequest(http.MethodPost, s.server.URL+"/v1/deliveries", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.SignatureHeader, "sha256="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func (s *stack) deliver(t *testing.T, deliveryID, key, payload string) *http.Response {
	t.Helper()
	resp, err := s.server.Client().Do(s.deliveryRequest(t, deliveryID, key, payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *stack) postMessage(t *testing.T, key, payload string) *http.Response {
	t.Helper()
	resp, err := s.server.Client().Post(s.server.URL+"/v1/messages/"+key, "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *stack) fetch(t *testing.T, id int64) map[string]any {
	t.Helper()
	resp, err := s.server.Client().Get(fmt.Sprintf("%s/v1/validation-requests/%d", s.server.URL, id))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}

func runFullFlow(t *testing.T, s *stack) {
	s.seed(t, 101, 102, 104)
	validity := true

	resp := s.deliver(t, "d-1", "101", testhelpers.OKPayload(t, &validity, time.Now()))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.deliver(t, "d-2", "102", testhelpers.FailurePayload(t, "FAILED", "E503", " registry offline"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.postMessage(t, "104", testhelpers.OKPayload(t, &validity, time.Now().AddDate(-200, 0, 0)))
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	// late failure for an already valid request keeps the status
	resp = s.deliver(t, "d-3", "101", testhelpers.FailurePayload(t, "ERROR", "LATE", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	r101 := s.fetch(t, 101)
	assert.Equal(t, "VALID", r101["status"])
	assert.Equal(t, float64(1), r101["retries"])
	assert.Equal(t, "LATE", r101["failReason"])

	r102 := s.fetch(t, 102)
	assert.Equal(t, "FAILED", r102["status"])
	assert.Equal(t, "E503 registry offline", r102["failReason"])
	assert.Nil(t, r102["validOn"])

	r104 := s.fetch(t, 104)
	assert.Equal(t, "VALID", r104["status"])
	assert.NotNil(t, r104["responseReceived"])
}

func runRejections(t *testing.T, s *stack) {
	validity := false

	// unknown id on the success path is rejected but acknowledged
	resp := s.deliver(t, "d-10", "9000", testhelpers.OKPayload(t, &validity, time.Now()))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.postMessage(t, "9000", testhelpers.OKPayload(t, &validity, time.Now()))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.postMessage(t, "12a", testhelpers.OKPayload(t, &validity, time.Now()))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unknown id on the failure path writes nothing
	resp = s.deliver(t, "d-11", "9001", testhelpers.FailurePayload(t, "ERROR", "E1", "boom"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err := s.repo.FindByID(context.Background(), 9001)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func runConcurrentDeliveries(t *testing.T, s *stack) {
	const numRequests = 20
	ids := make([]int64, numRequests)
	for i := range ids {
		ids[i] = int64(500 + i)
	}
	s.seed(t, ids...)

	validity := true
	requests := make([]*http.Request, len(ids))
	for i, id := range ids {
		key := strconv.FormatInt(id, 10)
		requests[i] = s.deliveryRequest(t, "d-"+key, key, testhelpers.OKPayload(t, &validity, time.Now()))
	}

	type result struct {
		code int
		err  error
	}
	var wg sync.WaitGroup
	results := make(chan result, numRequests)

	for _, req := range requests {
		wg.Add(1)
		go func(req *http.Request) {
			defer wg.Done()
			resp, err := s.server.Client().Do(req)
			if err != nil {
				results <- result{err: err}
				return
			}
			resp.Body.Close()
			results <- result{code: resp.StatusCode}
		}(req)
	}

	wg.Wait()
	close(results)

	for r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, http.StatusOK, r.code)
	}
	for _, id := range ids {
		assert.Equal(t, "VALID", s.fetch(t, id)["status"])
	}
}

func TestIntegration_Bolt(t *testing.T) {
	t.Run("full flow", func(t *testing.T) { runFullFlow(t, setupBolt(t)) })
	t.Run("rejections", func(t *testing.T) { runRejections(t, setupBolt(t)) })
	t.Run("concurrent deliveries", func(t *testing.T) { runConcurrentDeliveries(t, setupBolt(t)) })
}

func TestIntegration_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := testhelpers.SetupTestDatabase(t)
	defer testDB.Cleanup(t)

	setup := func(t *testing.T) *stack {
		testDB.CleanTables(t)
		return newStack(t, postgres.NewValidationRequestRepository(testDB.DB), testDB.DB)
	}

	t.Run("full flow", func(t *testing.T) { runFullFlow(t, setup(t)) })
	t.Run("rejections", func(t *testing.T) { runRejections(t, setup(t)) })
	t.Run("concurrent deliveries", func(t *testing.T) { runConcurrentDeliveries(t, setup(t)) })
}
