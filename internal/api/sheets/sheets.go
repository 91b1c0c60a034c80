package sheets

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/service"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/money"
	"resty.dev/v3"
)

type sheetsGateway struct {
	httpClient *resty.Client
	token      string
}

var _ service.Gateway = (*sheetsGateway)(nil)

// Options represents options that required for creating new instance of sheets gateway.
type Options struct {
	// ScriptURL is the webhook endpoint of the spreadsheet script.
	ScriptURL string
	// Token authenticates every call; the script compares it verbatim.
	Token string
	// Timeout bounds each webhook round trip.
	Timeout time.Duration
}

// New creates a new instance of sheets gateway.
func New(opts Options) *sheetsGateway {
	httpClient := resty.New().
		SetBaseURL(opts.ScriptURL).
		SetTimeout(opts.Timeout)

	return &sheetsGateway{
		httpClient: httpClient,
		token:      opts.Token,
	}
}

func (s *sheetsGateway) Append(ctx context.Context, record model.TransactionRecord) error {
	_, err := s.call(ctx, request{
		Action: actionAppend,
		Type:   string(record.Type),
		Date:   record.Date,
		Amount: record.Amount.StringFixed(),
		Whom:   record.Counterparty,
		Group:  record.Group,
		What:   record.Memo,
	})
	if err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}

	return nil
}

func (s *sheetsGateway) DeleteLast(ctx context.Context) (*model.TransactionRecord, error) {
	result, err := s.call(ctx, request{Action: actionDeleteLast})
	if err != nil {
		return nil, fmt.Errorf("delete last transaction: %w", err)
	}

	if result.Deleted == nil {
		return nil, nil
	}

	record, err := convertRecord(*result.Deleted)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *sheetsGateway) Stats(ctx context.Context, period model.Period) (*model.StatsReport, error) {
	result, err := s.call(ctx, request{Action: actionStats, Period: string(period)})
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	revenue, err := convertAmount(result.Revenue)
	if err != nil {
		return nil, err
	}
	expense, err := convertAmount(result.Expense)
	if err != nil {
		return nil, err
	}

	topGroups, err := convertGroups(result.TopGroups)
	if err != nil {
		return nil, err
	}

	return &model.StatsReport{
		Revenue:   revenue,
		Expense:   expense,
		MonthName: result.MonthName,
		TopGroups: topGroups,
	}, nil
}

func (s *sheetsGateway) GroupTotals(ctx context.Context, period model.Period) ([]model.GroupTotal, error) {
	result, err := s.call(ctx, request{Action: actionGroupTotals, Period: string(period)})
	if err != nil {
		return nil, fmt.Errorf("fetch group totals: %w", err)
	}

	return convertGroups(result.Items)
}

func (s *sheetsGateway) TopPayers(ctx context.Context, period model.Period, limit int) ([]model.Payer, error) {
	result, err := s.call(ctx, request{Action: actionTopPayers, Period: string(period), Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("fetch top payers: %w", err)
	}

	payers := make([]model.Payer, 0, len(result.Payers))
	for _, payer := range result.Payers {
		total, err := convertAmount(payer.Total)
		if err != nil {
			return nil, err
		}

		payers = append(payers, model.Payer{
			Name:  payer.Name,
			Total: total,
			Count: payer.Count,
		})
	}

	return payers, nil
}

func (s *sheetsGateway) Transactions(ctx context.Context, transactionType model.TransactionType, period model.Period) ([]model.TransactionRecord, error) {
	result, err := s.call(ctx, request{
		Action: actionTransactions,
		Type:   string(transactionType),
		Period: string(period),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	records := make([]model.TransactionRecord, 0, len(result.Transactions))
	for _, payload := range result.Transactions {
		record, err := convertRecord(payload)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// call performs one webhook round trip and classifies every way it can
// fail into a gateway failure category.
func (s *sheetsGateway) call(ctx context.Context, req request) (*response, error) {
	req.Token = s.token

	var result response

	httpResponse, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("")
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if httpResponse.StatusCode() != http.StatusOK {
		return nil, badResponse(fmt.Sprintf("status %d: %s", httpResponse.StatusCode(), httpResponse.String()))
	}

	if !result.OK {
		return nil, badResponse(fmt.Sprintf("script refused the call: %s", result.Error))
	}

	return &result, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &model.GatewayError{Category: model.FailureGatewayTimeout, Detail: err.Error()}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &model.GatewayError{Category: model.FailureGatewayTimeout, Detail: err.Error()}
	}

	return &model.GatewayError{Category: model.FailureGatewayNetwork, Detail: err.Error()}
}

func badResponse(detail string) error {
	return &model.GatewayError{Category: model.FailureGatewayBadResponse, Detail: detail}
}

func convertAmount(value string) (money.Money, error) {
	amount, err := money.NewFromString(value)
	if err != nil {
		return money.Money{}, badResponse(fmt.Sprintf("unreadable amount %q", value))
	}

	return amount, nil
}

func convertGroups(payloads []groupPayload) ([]model.GroupTotal, error) {
	groups := make([]model.GroupTotal, 0, len(payloads))
	for _, payload := range payloads {
		amount, err := convertAmount(payload.Amount)
		if err != nil {
			return nil, err
		}

		groups = append(groups, model.GroupTotal{Group: payload.Group, Amount: amount})
	}

	return groups, nil
}

func convertRecord(payload recordPayload) (model.TransactionRecord, error) {
	amount, err := convertAmount(payload.Amount)
	if err != nil {
		return model.TransactionRecord{}, err
	}

	return model.TransactionRecord{
		Type:         model.TransactionType(payload.Type),
		Date:         payload.Date,
		Amount:       amount,
		Counterparty: payload.Whom,
		Group:        payload.Group,
		Memo:         payload.What,
	}, nil
}
