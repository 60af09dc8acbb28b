package scores

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/metrics"
	"github.com/mborisov/betpool/pkg/clients"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	maxRetries         = 3
	retryBase          = time.Second
	minRequestInterval = time.Second
	regularSeasonType  = 2
)

// ExternalServiceError wraps any provider failure that survives the
// retry budget.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("scoreboard provider unavailable: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// Event is one provider game normalized into local vocabulary.
type Event struct {
	ExternalID string
	HomeTeam   string
	HomeAbbr   string
	AwayTeam   string
	AwayAbbr   string
	HomeScore  int
	AwayScore  int
	StartTime  time.Time
	Status     string
	Completed  bool
	Winner     *string
	IsTie      bool
}

// Provider statuses onto stored game statuses. Anything unknown is
// treated as scheduled.
var statusMapping = map[string]string{
	"Final":       domain.GameStatusFinal,
	"Final/OT":    domain.GameStatusFinal,
	"In Progress": domain.GameStatusInProgress,
	"Scheduled":   domain.GameStatusScheduled,
	"Postponed":   domain.GameStatusPostponed,
	"Cancelled":   domain.GameStatusCancelled,
}

type rawCompetitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		DisplayName  string `json:"displayName"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

type rawEvent struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"status"`
	Competitions []struct {
		Competitors []rawCompetitor `json:"competitors"`
	} `json:"competitions"`
}

type scoreboardResponse struct {
	Events []rawEvent `json:"events"`
}

type Client struct {
	url         string
	client      clients.HTTPClientI
	retryBase   time.Duration
	minInterval time.Duration

	mu          sync.Mutex
	lastRequest time.Time
}

func NewClient(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:         url,
		client:      client,
		retryBase:   retryBase,
		minInterval: minRequestInterval,
	}
}

// CurrentBoard fetches the scoreboard for the provider's current week.
func (c *Client) CurrentBoard(ctx context.Context) ([]Event, error) {
	return c.fetch(ctx, c.url+"/scoreboard")
}

// WeekBoard fetches the regular-season scoreboard for one week.
func (c *Client) WeekBoard(ctx context.Context, year, week int) ([]Event, error) {
	url := fmt.Sprintf("%s/scoreboard?seasontype=%d&week=%d&year=%d", c.url, regularSeasonType, week, year)
	return c.fetch(ctx, url)
}

func (c *Client) fetch(ctx context.Context, url string) ([]Event, error) {
	var body []byte

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(c.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.throttle(ctx); err != nil {
			return err
		}

		statusCode, respBody, respHeaders, err := c.client.Get(ctx, url, nil)
		if err != nil {
			metrics.ProviderRequests.WithLabelValues("error").Inc()
			return retry.RetryableError(err)
		}

		switch statusCode {
		case http.StatusOK:
			metrics.ProviderRequests.WithLabelValues("success").Inc()
			body = respBody
			return nil
		case http.StatusTooManyRequests:
			metrics.ProviderRequests.WithLabelValues("rate_limited").Inc()
			c.waitRetryAfter(ctx, respHeaders)
			return retry.RetryableError(fmt.Errorf("provider rate limited"))
		default:
			metrics.ProviderRequests.WithLabelValues("error").Inc()
			return retry.RetryableError(fmt.Errorf("unexpected status code %d", statusCode))
		}
	})
	if err != nil {
		zap.L().Error("scoreboard fetch failed", zap.String("url", url), zap.Error(err))
		return nil, &ExternalServiceError{Err: err}
	}

	return parseBoard(body)
}

// throttle enforces the minimum spacing between provider requests
// across all callers sharing this client.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	elapsed := time.Since(c.lastRequest)
	if wait := c.minInterval - elapsed; wait > 0 {
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		c.mu.Lock()
	}
	c.lastRequest = time.Now()
	c.mu.Unlock()
	return nil
}

func (c *Client) waitRetryAfter(ctx context.Context, headers http.Header) {
	wait := 5 * time.Second
	if v := headers.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			wait = time.Duration(secs) * time.Second
		}
	}
	zap.L().Warn("provider rate limited", zap.Duration("retryAfter", wait))
	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}
}

func parseBoard(body []byte) ([]Event, error) {
	var resp scoreboardResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse scoreboard response: %w", err)
	}

	events := make([]Event, 0, len(resp.Events))
	for _, raw := range resp.Events {
		event, err := parseEvent(raw)
		if err != nil {
			zap.L().Warn("skipping malformed event", zap.String("eventID", raw.ID), zap.Error(err))
			continue
		}
		events = append(events, *event)
	}
	return events, nil
}

func parseEvent(raw rawEvent) (*Event, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("event has no id")
	}
	if len(raw.Competitions) == 0 || len(raw.Competitions[0].Competitors) != 2 {
		return nil, fmt.Errorf("expected 2 competitors")
	}

	startTime, err := time.Parse(time.RFC3339, raw.Date)
	if err != nil {
		return nil, fmt.Errorf("bad event date %q: %w", raw.Date, err)
	}

	providerStatus := raw.Status.Type.Name
	status, ok := statusMapping[providerStatus]
	if !ok {
		status = domain.GameStatusScheduled
	}
	completed := providerStatus == "Final" || providerStatus == "Final/OT"

	event := Event{
		ExternalID: raw.ID,
		StartTime:  startTime.UTC(),
		Status:     status,
		Completed:  completed,
	}

	for _, competitor := range raw.Competitions[0].Competitors {
		score, _ := strconv.Atoi(competitor.Score)
		if competitor.HomeAway == "home" {
			event.HomeTeam = competitor.Team.DisplayName
			event.HomeAbbr = competitor.Team.Abbreviation
			event.HomeScore = score
		} else {
			event.AwayTeam = competitor.Team.DisplayName
			event.AwayAbbr = competitor.Team.Abbreviation
			event.AwayScore = score
		}
	}
	if event.HomeTeam == "" || event.AwayTeam == "" {
		return nil, fmt.Errorf("missing home or away competitor")
	}

	if completed {
		if event.HomeScore > event.AwayScore {
			event.Winner = &event.HomeTeam
		} else if event.AwayScore > event.HomeScore {
			event.Winner = &event.AwayTeam
		} else {
			event.IsTie = true
		}
	}
	return &event, nil
}
