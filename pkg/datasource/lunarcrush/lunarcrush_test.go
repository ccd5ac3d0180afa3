package lunarcrush

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/datasource/lunarcrush/lunarcrushapi"
	"github.com/SnakeO/LunarCrushAPIv4/pkg/testing/httptesting"
)

func TestLunarCrush_QueryCoins(t *testing.T) {
	var saved *http.Request
	l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientSaver(&saved, `{
		"config": {"sort": "galaxy_score", "limit": 2, "desc": true},
		"data": [
			{"id": 1, "symbol": "BTC", "name": "Bitcoin", "price": 58254.31, "galaxy_score": 72, "alt_rank": 14, "last_updated_price": 1714608764},
			{"id": 2, "symbol": "ETH", "name": "Ethereum", "price": 2961.08, "galaxy_score": 70, "alt_rank": 31, "max_supply": null}
		]
	}`)))

	coins, err := l.QueryCoins(context.Background(), "galaxy_score", 2)
	require.NoError(t, err)
	require.Len(t, coins, 2)

	assert.Equal(t, "/api4/public/coins/list/v2", saved.URL.Path)
	assert.Equal(t, "sort=galaxy_score&limit=2&desc=1.0", saved.URL.RawQuery)

	assert.Equal(t, "BTC", coins[0].Symbol)
	assert.Equal(t, 58254.31, coins[0].Price)
	assert.Equal(t, int64(1714608764), coins[0].LastUpdatedPrice.Time().Unix())
	assert.Equal(t, 31, coins[1].AltRank)
	assert.Zero(t, coins[1].MaxSupply)
}

func TestLunarCrush_QueryCoin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var saved *http.Request
		l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientSaver(&saved,
			`{"data": {"id": 1, "symbol": "BTC", "name": "Bitcoin", "market_cap_rank": 1}}`)))

		coin, err := l.QueryCoin(context.Background(), "btc")
		require.NoError(t, err)
		assert.Equal(t, "https://lunarcrush.com/api4/public/coins/btc/v1", saved.URL.String())
		assert.Equal(t, "Bitcoin", coin.Name)
		assert.Equal(t, 1, coin.MarketCapRank)
	})

	t.Run("error body", func(t *testing.T) {
		var saved *http.Request
		l := New("BAD", lunarcrushapi.WithHTTPClient(httptesting.HttpClientSaverWithStatus(&saved,
			http.StatusUnauthorized, `{"error": "Unauthorized"}`)))

		coin, err := l.QueryCoin(context.Background(), "btc")
		assert.Nil(t, coin)
		assert.EqualError(t, err, "lunarcrush: coin btc: Unauthorized")
	})

	t.Run("empty data", func(t *testing.T) {
		l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientWithContent(`{"data": null}`)))

		_, err := l.QueryCoin(context.Background(), "nope")
		assert.Error(t, err)
	})
}

func TestLunarCrush_QueryTopicSummary(t *testing.T) {
	l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientWithContent(`{
		"data": {
			"topic": "bitcoin",
			"title": "Bitcoin",
			"topic_rank": 3,
			"related_topics": ["ethereum", "crypto"],
			"types_count": {"tweet": 12034, "reddit-post": 311},
			"interactions_24h": 91872345,
			"num_contributors": 51234,
			"categories": ["cryptocurrencies"],
			"trend": "up"
		}
	}`)))

	summary, err := l.QueryTopicSummary(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", summary.Title)
	assert.Equal(t, 3, summary.TopicRank)
	assert.Equal(t, []string{"ethereum", "crypto"}, summary.RelatedTopics)
	assert.Equal(t, float64(12034), summary.TypesCount["tweet"])
	assert.Equal(t, "up", summary.Trend)
}

func TestLunarCrush_TransportError(t *testing.T) {
	l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientWithError(context.DeadlineExceeded)))

	_, err := l.QueryTopicSummary(context.Background(), "bitcoin")
	assert.True(t, lunarcrushapi.IsTransportError(err))
}

func TestLunarCrush_QueryTopicSummaryFromFile(t *testing.T) {
	l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientFromFile("testdata/topic_bitcoin.json")))

	summary, err := l.QueryTopicSummary(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, float64(204511), summary.NumPosts)
	assert.Equal(t, float64(74), summary.TypesSentiment["tweet"])
	assert.Len(t, summary.RelatedTopics, 3)

	l = New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientFromFile("testdata/missing.json")))
	_, err = l.QueryTopicSummary(context.Background(), "bitcoin")
	assert.True(t, lunarcrushapi.IsTransportError(err))
}

func TestLunarCrush_QueryCoinsJson(t *testing.T) {
	var saved *http.Request
	l := New("KEY", lunarcrushapi.WithHTTPClient(httptesting.HttpClientSaverWithJson(&saved, map[string]interface{}{
		"data": []Coin{{ID: 3, Symbol: "SOL", Name: "Solana", GalaxyScore: 68}},
	})))

	coins, err := l.QueryCoins(context.Background(), "alt_rank", 1)
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "SOL", coins[0].Symbol)
	assert.Equal(t, "sort=alt_rank&limit=1&desc=1.0", saved.URL.RawQuery)
}
