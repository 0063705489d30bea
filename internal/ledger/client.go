// Package ledger binds the remote ledger service's HTTP API.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"go.uber.org/ratelimit"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxResponseBytes   = 32 << 20
)

// Client performs single request/response calls against the ledger service.
// It never retries; timeouts are owned by the underlying http.Client.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    ratelimit.Limiter
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRateLimit caps outbound requests per second. Non-positive values disable the cap.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = ratelimit.NewUnlimited()
			return
		}
		c.limiter = ratelimit.New(rps)
	}
}

// NewClient constructs a Client for the service rooted at rawURL.
func NewClient(rawURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse ledger url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("ledger url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("ledger url missing host")
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		limiter:    ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchChain reads every block in the server's order.
func (c *Client) FetchChain(ctx context.Context) ([]model.Block, error) {
	var dtos []blockDTO
	if err := c.do(ctx, OpFetchChain, http.MethodGet, c.baseURL.JoinPath("blockchain"), nil, &dtos); err != nil {
		return nil, err
	}
	blocks, err := buildBlocks(dtos)
	if err != nil {
		return nil, &Error{Kind: KindProtocol, Op: OpFetchChain, Err: err}
	}
	return blocks, nil
}

// FetchPending reads the remote's pending transaction queue.
func (c *Client) FetchPending(ctx context.Context) ([]model.Transaction, error) {
	var dtos []transactionDTO
	if err := c.do(ctx, OpFetchPending, http.MethodGet, c.baseURL.JoinPath("pending"), nil, &dtos); err != nil {
		return nil, err
	}
	txs, err := buildTransactions(dtos)
	if err != nil {
		return nil, &Error{Kind: KindProtocol, Op: OpFetchPending, Err: err}
	}
	return txs, nil
}

// FetchBalance reads the balance of user. A missing account yields an error of KindNotFound.
func (c *Client) FetchBalance(ctx context.Context, user string) (model.Balance, error) {
	if user == "" || user == "." || user == ".." {
		return model.Balance{}, &Error{Kind: KindValidation, Op: OpFetchBalance, Message: fmt.Sprintf("invalid user %q", user)}
	}
	// JoinPath takes escaped segments; escaping keeps user a single segment.
	endpoint := c.baseURL.JoinPath("balance", url.PathEscape(user))
	var dto balanceDTO
	if err := c.do(ctx, OpFetchBalance, http.MethodGet, endpoint, nil, &dto); err != nil {
		return model.Balance{}, err
	}
	return buildBalance(dto, user), nil
}

// SubmitTransfer enqueues a transfer on the remote. It does not wait for block inclusion.
func (c *Client) SubmitTransfer(ctx context.Context, req model.TransferRequest) (model.TransferResult, error) {
	body := transferRequestDTO{From: req.From, To: req.To, Amount: req.Amount}
	var dto transferResponseDTO
	if err := c.do(ctx, OpSubmitTransfer, http.MethodPost, c.baseURL.JoinPath("transfer"), body, &dto); err != nil {
		return model.TransferResult{}, err
	}
	return model.TransferResult{Status: dto.Status}, nil
}

// SubmitFaucet credits test funds and returns the account's updated balance.
func (c *Client) SubmitFaucet(ctx context.Context, req model.FaucetRequest) (model.Balance, error) {
	body := faucetRequestDTO{To: req.To, Amount: req.Amount}
	var dto balanceDTO
	if err := c.do(ctx, OpSubmitFaucet, http.MethodPost, c.baseURL.JoinPath("faucet"), body, &dto); err != nil {
		return model.Balance{}, err
	}
	return buildBalance(dto, req.To), nil
}

func (c *Client) do(ctx context.Context, op, method string, endpoint *url.URL, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: KindProtocol, Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			Kind:    statusKind(resp.StatusCode),
			Op:      op,
			Status:  resp.StatusCode,
			Message: remoteMessage(raw),
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindProtocol, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func remoteMessage(raw []byte) string {
	var res errorResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return ""
	}
	return res.Error
}
