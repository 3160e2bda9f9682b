package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-listing/internal/client"
	"github.com/sanosuguru/go-event-listing/internal/domain/event"
	"github.com/sanosuguru/go-event-listing/internal/ui"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func twoEvents() []event.Event {
	return []event.Event{
		{ID: 1, Name: "A", Date: "2025-01-01"},
		{ID: 2, Name: "B", Date: "2025-01-02"},
	}
}

// TestEventListingFlow はストアからクリックまでの一連の流れを確認する
func TestEventListingFlow(t *testing.T) {
	stack := NewTestStack(t, twoEvents())

	// 1. API は成功エンベロープを返す
	t.Run("APIが成功エンベロープを返す", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		rec := httptest.NewRecorder()
		stack.API.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"status":"success","data":[{"id":1,"name":"A","date":"2025-01-01"},{"id":2,"name":"B","date":"2025-01-02"}]}`,
			rec.Body.String(),
		)
	})

	// 2. クライアントが読み込み、テーブルに2行描画される
	t.Run("クライアントが一覧を描画する", func(t *testing.T) {
		outcome := stack.Fetcher.Load(context.Background())
		require.Equal(t, client.OutcomeRendered, outcome)

		rows := stack.Table.Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, "A", rows[0].Name)
		assert.Equal(t, "2025-01-01", rows[0].Date)
		assert.Equal(t, ui.ActionLabel, rows[0].Button.Label)
		assert.Equal(t, "B", rows[1].Name)
		assert.Equal(t, "2025-01-02", rows[1].Date)
	})

	// 3. 2行目のボタンをクリックすると ID 2 が通知される
	t.Run("クリックでIDが通知される", func(t *testing.T) {
		notifier := &recordingNotifier{}
		actions := ui.NewActionHandler(notifier)

		id, err := actions.Click(stack.Table, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, id)
		assert.Equal(t, []string{"You clicked on event ID: 2"}, notifier.messages)
	})

	// 4. 再読み込みしても行は重複しない
	t.Run("再読み込みで行が置き換わる", func(t *testing.T) {
		require.Equal(t, client.OutcomeRendered, stack.Fetcher.Load(context.Background()))
		assert.Equal(t, 2, stack.Table.Len())
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(stack.Metrics.ClientLoadsTotal.WithLabelValues("rendered")))
}

func TestEventListingFlow_WebPage(t *testing.T) {
	stack := NewTestStack(t, []event.Event{
		{ID: 7, Name: "<b>Launch</b>", Date: "2025-03-03"},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	stack.Web.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))

	body := rec.Body.String()
	assert.Contains(t, body, `id="eventTableBody"`)
	assert.Contains(t, body, `data-id="7"`)
	assert.Contains(t, body, "2025-03-03")
	// イベント名はエスケープされてテキストとして表示される
	assert.Contains(t, body, "&lt;b&gt;Launch&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Launch</b>")
}

func TestEventListingFlow_EmptyStore(t *testing.T) {
	stack := NewTestStack(t, nil)

	require.Equal(t, client.OutcomeRendered, stack.Fetcher.Load(context.Background()))
	assert.Equal(t, 0, stack.Table.Len())

	_, err := ui.NewActionHandler(&recordingNotifier{}).Click(stack.Table, 0)
	assert.ErrorIs(t, err, ui.ErrNoSuchRow)
}

func TestEventListingFlow_FailedLoadKeepsTable(t *testing.T) {
	stack := NewTestStack(t, twoEvents())
	require.Equal(t, client.OutcomeRendered, stack.Fetcher.Load(context.Background()))

	// クライアントは常に success を要求するため、fail を返すハンドラーで確認する
	failing := client.NewFetcher(
		newHandlerTransport(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"status":"fail","message":"Bad request while fetching events."}`)
		})),
		"/events",
		stack.Table,
	)

	assert.Equal(t, client.OutcomeFailed, failing.Load(context.Background()))
	assert.Equal(t, 2, stack.Table.Len())
}

func TestEventListingFlow_OverHTTP(t *testing.T) {
	stack := NewTestStack(t, twoEvents())

	srv := httptest.NewServer(stack.API)
	defer srv.Close()

	table := ui.NewTable()
	fetcher := client.NewFetcher(client.NewHTTPTransport(0), srv.URL+"/events", table)

	require.Equal(t, client.OutcomeRendered, fetcher.Load(context.Background()))
	require.Equal(t, 2, table.Len())

	row, ok := table.Row(0)
	require.True(t, ok)
	assert.Equal(t, 1, row.Button.EventID)
}

func TestEventListingFlow_Metrics(t *testing.T) {
	stack := NewTestStack(t, twoEvents())

	for _, target := range []string{"/events", "/events?mode=fail", "/events?mode=error", "/events?mode=bogus"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		stack.API.ServeHTTP(httptest.NewRecorder(), req)
	}

	m := stack.Metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EnvelopesTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EnvelopesTotal.WithLabelValues("fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EnvelopesTotal.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoredEvents))
}
