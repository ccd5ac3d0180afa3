package lunarcrush

import (
	"time"
)

// Timestamp is a unix timestamp in seconds.
type Timestamp int64

func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Coin is one entry of the coins list, or the coin detail object. Fields the
// API leaves null stay zero.
type Coin struct {
	ID                  int64     `json:"id"`
	Symbol              string    `json:"symbol"`
	Name                string    `json:"name"`
	Topic               string    `json:"topic,omitempty"`
	Price               float64   `json:"price"`
	PriceBTC            float64   `json:"price_btc"`
	Volume24h           float64   `json:"volume_24h"`
	Volatility          float64   `json:"volatility"`
	CirculatingSupply   float64   `json:"circulating_supply"`
	MaxSupply           float64   `json:"max_supply"`
	PercentChange1h     float64   `json:"percent_change_1h"`
	PercentChange24h    float64   `json:"percent_change_24h"`
	PercentChange7d     float64   `json:"percent_change_7d"`
	MarketCap           float64   `json:"market_cap"`
	MarketCapRank       int       `json:"market_cap_rank"`
	Interactions24h     float64   `json:"interactions_24h"`
	SocialVolume24h     float64   `json:"social_volume_24h"`
	SocialDominance     float64   `json:"social_dominance"`
	MarketDominance     float64   `json:"market_dominance"`
	GalaxyScore         float64   `json:"galaxy_score"`
	GalaxyScorePrevious float64   `json:"galaxy_score_previous"`
	AltRank             int       `json:"alt_rank"`
	AltRankPrevious     int       `json:"alt_rank_previous"`
	Sentiment           float64   `json:"sentiment"`
	Categories          string    `json:"categories,omitempty"`
	LastUpdatedPrice    Timestamp `json:"last_updated_price"`
}

// TopicSummary is the 24 hour aggregation returned for a single topic.
type TopicSummary struct {
	Topic             string             `json:"topic"`
	Title             string             `json:"title"`
	TopicRank         int                `json:"topic_rank"`
	RelatedTopics     []string           `json:"related_topics"`
	TypesCount        map[string]float64 `json:"types_count"`
	TypesInteractions map[string]float64 `json:"types_interactions"`
	TypesSentiment    map[string]float64 `json:"types_sentiment"`
	Interactions24h   float64            `json:"interactions_24h"`
	NumContributors   float64            `json:"num_contributors"`
	NumPosts          float64            `json:"num_posts"`
	Categories        []string           `json:"categories"`
	Trend             string             `json:"trend"`
}

type envelope[T any] struct {
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
}
