package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyLength = 512

type transactionsAPIClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewTransactionsAPIClient calls the transactions backend over HTTP. Every
// endpoint is a GET on BaseUrl/<endpoint> with params sent as query values.
// maxRequestsPerSecond <= 0 disables the outbound limiter.
func NewTransactionsAPIClient(baseUrl string, timeout time.Duration, maxRequestsPerSecond int, logger *zap.Logger) contracts.TransactionsAPI {
	var limiter *rate.Limiter
	if maxRequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), maxRequestsPerSecond)
	}
	return &transactionsAPIClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *transactionsAPIClient) Fetch(ctx context.Context, endpoint models.Endpoint, params interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("transactionsAPIClient.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint.String()),
	)

	if !endpoint.IsRegistered() {
		c.Log.Error("transactionsAPIClient.Fetch unknown endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
		)
		return nil, exceptions.ErrUnknownEndpoint(nil, endpoint.String())
	}

	query, err := buildQuery(params)
	if err != nil {
		c.Log.Error("transactionsAPIClient.Fetch error building query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/%s", c.BaseUrl, endpoint)
	if len(query) > 0 {
		requestURL = requestURL + "?" + query.Encode()
	}

	if c.Limiter != nil {
		err = c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("transactionsAPIClient.Fetch rate limiter wait failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrBackendRateLimit(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		c.Log.Error("transactionsAPIClient.Fetch error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("transactionsAPIClient.Fetch error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		if ctx.Err() == context.DeadlineExceeded {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("transactionsAPIClient.Fetch error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		backendErr := fmt.Errorf("%s", truncate(bytes.TrimSpace(body), maxErrorBodyLength))
		c.Log.Error("transactionsAPIClient.Fetch backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return nil, exceptions.ErrBackendStatus(backendErr, endpoint.String(), resp.StatusCode)
	}

	c.Log.Info("transactionsAPIClient.Fetch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint.String()),
		zap.Int(constvars.LoggingResponseLengthKey, len(body)),
	)
	return body, nil
}

// buildQuery flattens params through their JSON form, so the query names
// match the JSON tags the backend expects.
func buildQuery(params interface{}) (url.Values, error) {
	query := url.Values{}
	if params == nil {
		return query, nil
	}

	serialized, err := json.Marshal(params)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	if string(serialized) == "null" {
		return query, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(serialized))
	decoder.UseNumber()
	var fields map[string]interface{}
	err = decoder.Decode(&fields)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	for name, value := range fields {
		if value == nil {
			continue
		}
		query.Set(name, fmt.Sprint(value))
	}
	return query, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
