package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) money.Money {
	t.Helper()

	amount, err := money.NewFromString(value)
	require.NoError(t, err)
	return amount
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *sheetsGateway {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return New(Options{
		ScriptURL: server.URL,
		Token:     "test-token",
		Timeout:   time.Second,
	})
}

func decodeRequest(t *testing.T, r *http.Request) request {
	t.Helper()

	var req request
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestSheetsGateway_Append(t *testing.T) {
	t.Parallel()

	var got request
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = decodeRequest(t, r)
		_ = json.NewEncoder(w).Encode(response{OK: true})
	})

	record := model.TransactionRecord{
		Type:         model.TransactionTypeExpense,
		Date:         "14.03.2024",
		Amount:       mustMoney(t, "1234.56"),
		Counterparty: "ООО Ромашка",
		Group:        "поставщик",
		Memo:         "цемент",
	}

	require.NoError(t, gateway.Append(context.Background(), record))

	assert.Equal(t, "test-token", got.Token)
	assert.Equal(t, actionAppend, got.Action)
	assert.Equal(t, "expense", got.Type)
	assert.Equal(t, "14.03.2024", got.Date)
	assert.Equal(t, "1234.56", got.Amount)
	assert.Equal(t, "ООО Ромашка", got.Whom)
	assert.Equal(t, "поставщик", got.Group)
	assert.Equal(t, "цемент", got.What)
}

func TestSheetsGateway_Append_ScriptRefusal(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{OK: false, Error: "bad token"})
	})

	err := gateway.Append(context.Background(), model.TransactionRecord{})
	require.Error(t, err)
	assert.Equal(t, model.FailureGatewayBadResponse, model.GatewayFailureCategory(err))
}

func TestSheetsGateway_Append_BadStatus(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := gateway.Append(context.Background(), model.TransactionRecord{})
	require.Error(t, err)
	assert.Equal(t, model.FailureGatewayBadResponse, model.GatewayFailureCategory(err))
}

func TestSheetsGateway_Append_Timeout(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(response{OK: true})
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := gateway.Append(ctx, model.TransactionRecord{})
	require.Error(t, err)
	assert.Equal(t, model.FailureGatewayTimeout, model.GatewayFailureCategory(err))
}

func TestSheetsGateway_Append_NetworkFailure(t *testing.T) {
	t.Parallel()

	gateway := New(Options{
		// Nothing listens here.
		ScriptURL: "http://127.0.0.1:1",
		Token:     "test-token",
		Timeout:   time.Second,
	})

	err := gateway.Append(context.Background(), model.TransactionRecord{})
	require.Error(t, err)
	assert.Equal(t, model.FailureGatewayNetwork, model.GatewayFailureCategory(err))
}

func TestSheetsGateway_DeleteLast(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, actionDeleteLast, req.Action)

		_ = json.NewEncoder(w).Encode(response{OK: true, Deleted: &recordPayload{
			Type:   "revenue",
			Date:   "15.03.2024",
			Amount: "50000",
			Whom:   "ИП Петров",
		}})
	})

	record, err := gateway.DeleteLast(context.Background())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, model.TransactionTypeRevenue, record.Type)
	assert.Equal(t, "50000.00", record.Amount.StringFixed())
	assert.Equal(t, "ИП Петров", record.Counterparty)
}

func TestSheetsGateway_DeleteLast_EmptySheet(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{OK: true})
	})

	record, err := gateway.DeleteLast(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSheetsGateway_Stats(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, actionStats, req.Action)
		assert.Equal(t, "month", req.Period)

		_ = json.NewEncoder(w).Encode(response{
			OK:        true,
			Revenue:   "125000.50",
			Expense:   "40000",
			MonthName: "март",
			TopGroups: []groupPayload{{Group: "поставщик", Amount: "30000"}},
		})
	})

	stats, err := gateway.Stats(context.Background(), model.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, "125000.50", stats.Revenue.StringFixed())
	assert.Equal(t, "85000.50", stats.Balance().StringFixed())
	assert.Equal(t, "март", stats.MonthName)
	require.Len(t, stats.TopGroups, 1)
	assert.Equal(t, "поставщик", stats.TopGroups[0].Group)
}

func TestSheetsGateway_Stats_EmptyFieldsParseAsZero(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{OK: true})
	})

	stats, err := gateway.Stats(context.Background(), model.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, "0.00", stats.Revenue.StringFixed())
	assert.Equal(t, "0.00", stats.Balance().StringFixed())
}

func TestSheetsGateway_Stats_UnreadableAmount(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(response{OK: true, Revenue: "много", Expense: "0"})
	})

	_, err := gateway.Stats(context.Background(), model.PeriodToday)
	require.Error(t, err)
	assert.Equal(t, model.FailureGatewayBadResponse, model.GatewayFailureCategory(err))
}

func TestSheetsGateway_TopPayers(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, actionTopPayers, req.Action)
		assert.Equal(t, 10, req.Limit)

		_ = json.NewEncoder(w).Encode(response{OK: true, Payers: []payerPayload{
			{Name: "ИП Петров", Total: "50000", Count: 3},
		}})
	})

	payers, err := gateway.TopPayers(context.Background(), model.PeriodYear, 10)
	require.NoError(t, err)
	require.Len(t, payers, 1)
	assert.Equal(t, "ИП Петров", payers[0].Name)
	assert.Equal(t, 3, payers[0].Count)
}

func TestSheetsGateway_Transactions(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, actionTransactions, req.Action)
		assert.Equal(t, "expense", req.Type)

		_ = json.NewEncoder(w).Encode(response{OK: true, Transactions: []recordPayload{
			{Type: "expense", Date: "14.03.2024", Amount: "1234.56", Whom: "ООО Ромашка", Group: "поставщик"},
		}})
	})

	records, err := gateway.Transactions(context.Background(), model.TransactionTypeExpense, model.PeriodMonth)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1234.56", records[0].Amount.StringFixed())
	assert.Equal(t, "поставщик", records[0].Group)
}
