package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonBody(s string) io.Reader {
	return bytes.NewReader([]byte(s))
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// TestConcurrentRegistration verifies the idempotency resolver: N concurrent
// registrations of the same natural key all succeed and all observe the same
// effect record. The losing inserts recover by re-reading the winner, so the
// race never surfaces as a client error.
func TestConcurrentRegistration(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 50
	body := `{"order_ref":"RACE-ORD-1","doc_type":"SALES_INVOICE","document":{"total":120000}}`

	var wg sync.WaitGroup
	var createdCount atomic.Int64
	ids := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/postings",
				jsonBody(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Tenant-ID", app.tenantID.String())

			r, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer r.Body.Close()

			if r.StatusCode == http.StatusCreated {
				createdCount.Add(1)
			}
			var result struct {
				Data struct {
					ID string `json:"id"`
				} `json:"data"`
			}
			_ = json.NewDecoder(r.Body).Decode(&result)
			ids[idx] = result.Data.ID
		}(i)
	}

	wg.Wait()

	unique := make(map[string]struct{})
	for _, id := range ids {
		require.NotEmpty(t, id, "every registration must return the record")
		unique[id] = struct{}{}
	}

	assert.Len(t, unique, 1, "all racers must observe the same effect record")
	assert.Equal(t, int64(1), createdCount.Load(), "exactly one racer creates the record")
}

// TestConcurrentClaim verifies the optimistic claim: when N sweepers race for
// the same retry-due effect, the conditional update picks exactly one winner
// and the vendor is invoked exactly once.
func TestConcurrentClaim(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Register a tracking push and fail it once so it becomes retry-due.
	app.mpFail.Store(true)
	resp, created := app.do(t, http.MethodPost, "/api/v1/tracking",
		`{"order_ref":"CLAIM-ORD-1","carrier":"CJ","tracking_no":"CJ555"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	effectID := created["data"].(map[string]any)["id"].(string)

	resp2, _ := app.do(t, http.MethodPost, "/api/v1/effects/"+effectID+"/execute", "")
	require.Equal(t, http.StatusBadGateway, resp2.StatusCode)
	failedCalls := app.mpSubmits.Load()

	app.mpFail.Store(false)

	// Rewind the schedule so the effect is due now, then race N sweepers.
	ctx := context.Background()
	eff, err := app.effectRepo.GetByID(ctx, mustUUID(t, effectID))
	require.NoError(t, err)
	require.NotNil(t, eff.NextRetryAt)

	due := time.Now().UTC().Add(-time.Second)
	eff.NextRetryAt = &due
	require.NoError(t, app.effectRepo.Update(ctx, nil, eff))

	creds, err := app.creds.ForTenant(ctx, app.tenantID)
	require.NoError(t, err)

	concurrency := 20
	var wg sync.WaitGroup
	var wins atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := app.engine.ExecuteClaimed(ctx, eff.ID, creds)
			if err == nil && got != nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load(), "exactly one claimant wins the conditional update")
	assert.Equal(t, failedCalls+1, app.mpSubmits.Load(), "winner invokes the vendor exactly once")

	resp3, got := app.do(t, http.MethodGet, "/api/v1/effects/"+effectID, "")
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	assert.Equal(t, "SUCCESS", got["data"].(map[string]any)["status"])
}

// TestConcurrentExecution verifies the exactly-once guarantee end to end:
// N concurrent executes of one INITIAL effect produce one vendor result.
// The terminal-state guard ensures no second result ever overwrites the
// first, regardless of interleaving.
func TestConcurrentExecution(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, created := app.do(t, http.MethodPost, "/api/v1/postings",
		`{"order_ref":"EXEC-ORD-1","doc_type":"SALES_INVOICE","document":{"total":70000}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	effectID := created["data"].(map[string]any)["id"].(string)

	concurrency := 20
	var wg sync.WaitGroup
	results := make([]string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req, _ := http.NewRequest(http.MethodPost,
				app.server.URL+"/api/v1/effects/"+effectID+"/execute", jsonBody(""))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Tenant-ID", app.tenantID.String())

			r, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer r.Body.Close()

			var result struct {
				Data struct {
					ResultID string `json:"result_id"`
					Status   string `json:"status"`
				} `json:"data"`
			}
			_ = json.NewDecoder(r.Body).Decode(&result)
			results[idx] = result.Data.ResultID
		}(i)
	}
	wg.Wait()

	// Every caller that got a result got the SAME result.
	unique := make(map[string]struct{})
	for _, id := range results {
		if id != "" {
			unique[id] = struct{}{}
		}
	}
	assert.LessOrEqual(t, len(unique), 1, "at most one vendor result identifier may exist")

	resp2, got := app.do(t, http.MethodGet, "/api/v1/effects/"+effectID, "")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	data := got["data"].(map[string]any)
	assert.Equal(t, "SUCCESS", data["status"])
	assert.Equal(t, int64(1), app.erpSubmits.Load(), "vendor result is produced exactly once")
}
