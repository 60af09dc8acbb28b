package scores

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401547417",
      "date": "2025-09-07T17:00:00Z",
      "status": {"type": {"name": "Final"}},
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "27", "team": {"displayName": "Kansas City Chiefs", "abbreviation": "KC"}},
            {"homeAway": "away", "score": "20", "team": {"displayName": "Buffalo Bills", "abbreviation": "BUF"}}
          ]
        }
      ]
    },
    {
      "id": "401547418",
      "date": "2025-09-07T20:25:00Z",
      "status": {"type": {"name": "Scheduled"}},
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "0", "team": {"displayName": "Dallas Cowboys", "abbreviation": "DAL"}},
            {"homeAway": "away", "score": "0", "team": {"displayName": "New York Giants", "abbreviation": "NYG"}}
          ]
        }
      ]
    }
  ]
}`

func newTestClient(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	client := NewClient("https://scores.test/nfl", httpClient)
	client.retryBase = time.Millisecond
	client.minInterval = 0
	return client, httpClient
}

func TestCurrentBoard(t *testing.T) {
	ctx := context.Background()

	t.Run("parses and normalizes events", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Get(gomock.Any(), "https://scores.test/nfl/scoreboard", nil).
			Return(http.StatusOK, []byte(scoreboardFixture), http.Header{}, nil)

		events, err := client.CurrentBoard(ctx)
		assert.NoError(t, err)
		assert.Len(t, events, 2)

		final := events[0]
		assert.Equal(t, "401547417", final.ExternalID)
		assert.Equal(t, domain.GameStatusFinal, final.Status)
		assert.True(t, final.Completed)
		assert.Equal(t, 27, final.HomeScore)
		assert.Equal(t, 20, final.AwayScore)
		assert.Equal(t, "Kansas City Chiefs", *final.Winner)
		assert.False(t, final.IsTie)

		scheduled := events[1]
		assert.Equal(t, domain.GameStatusScheduled, scheduled.Status)
		assert.False(t, scheduled.Completed)
		assert.Nil(t, scheduled.Winner)
	})

	t.Run("retries transient failures before succeeding", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		gomock.InOrder(
			httpClient.EXPECT().
				Get(gomock.Any(), gomock.Any(), nil).
				Return(http.StatusBadGateway, nil, http.Header{}, nil),
			httpClient.EXPECT().
				Get(gomock.Any(), gomock.Any(), nil).
				Return(http.StatusOK, []byte(scoreboardFixture), http.Header{}, nil),
		)

		events, err := client.CurrentBoard(ctx)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("exhausted retries surface an external service error", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Get(gomock.Any(), gomock.Any(), nil).
			Return(http.StatusInternalServerError, nil, http.Header{}, nil).
			Times(maxRetries + 1)

		_, err := client.CurrentBoard(ctx)
		var extErr *ExternalServiceError
		assert.ErrorAs(t, err, &extErr)
	})

	t.Run("malformed body fails without retrying the parse", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Get(gomock.Any(), gomock.Any(), nil).
			Return(http.StatusOK, []byte("not json"), http.Header{}, nil)

		_, err := client.CurrentBoard(ctx)
		assert.Error(t, err)
	})
}

func TestWeekBoard(t *testing.T) {
	client, httpClient := newTestClient(t)

	httpClient.EXPECT().
		Get(gomock.Any(), "https://scores.test/nfl/scoreboard?seasontype=2&week=3&year=2025", nil).
		Return(http.StatusOK, []byte(`{"events":[]}`), http.Header{}, nil)

	events, err := client.WeekBoard(context.Background(), 2025, 3)
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseEvent(t *testing.T) {
	base := rawEvent{
		ID:   "1",
		Date: "2025-09-07T17:00:00Z",
	}
	base.Status.Type.Name = "Final"

	home := rawCompetitor{HomeAway: "home", Score: "21"}
	home.Team.DisplayName = "Kansas City Chiefs"
	away := rawCompetitor{HomeAway: "away", Score: "21"}
	away.Team.DisplayName = "Buffalo Bills"
	base.Competitions = []struct {
		Competitors []rawCompetitor `json:"competitors"`
	}{{Competitors: []rawCompetitor{home, away}}}

	t.Run("equal final scores flag a tie", func(t *testing.T) {
		event, err := parseEvent(base)
		assert.NoError(t, err)
		assert.True(t, event.IsTie)
		assert.Nil(t, event.Winner)
	})

	t.Run("unknown status maps to scheduled", func(t *testing.T) {
		raw := base
		raw.Status.Type.Name = "Halftime Show"

		event, err := parseEvent(raw)
		assert.NoError(t, err)
		assert.Equal(t, domain.GameStatusScheduled, event.Status)
		assert.False(t, event.Completed)
	})

	t.Run("missing competitors are rejected", func(t *testing.T) {
		raw := base
		raw.Competitions = nil

		_, err := parseEvent(raw)
		assert.Error(t, err)
	})
}
