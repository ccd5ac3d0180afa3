package lunarcrush

import (
	"context"

	"github.com/pkg/errors"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/datasource/lunarcrush/lunarcrushapi"
)

type LunarCrush struct {
	client *lunarcrushapi.RestClient
}

func New(apiKey string, options ...lunarcrushapi.Option) *LunarCrush {
	return &LunarCrush{client: lunarcrushapi.NewClient(apiKey, options...)}
}

// Client returns the underlying client for the endpoints without a typed helper.
func (l *LunarCrush) Client() *lunarcrushapi.RestClient {
	return l.client
}

// QueryCoins returns the top coins by the sort metric, highest first. It uses
// the realtime list endpoint.
func (l *LunarCrush) QueryCoins(ctx context.Context, sort string, limit int) ([]Coin, error) {
	var resp envelope[[]Coin]
	req := l.client.Coins.NewListV2Request().Sort(sort).Limit(limit).Desc(true)
	if err := req.DoInto(ctx, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, errors.Errorf("lunarcrush: coins list: %s", resp.Error)
	}

	return resp.Data, nil
}

// QueryCoin takes the numeric id or the symbol of the coin.
func (l *LunarCrush) QueryCoin(ctx context.Context, coin string) (*Coin, error) {
	var resp envelope[*Coin]
	if err := l.client.Coins.GetInto(ctx, coin, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, errors.Errorf("lunarcrush: coin %s: %s", coin, resp.Error)
	}

	if resp.Data == nil {
		return nil, errors.Errorf("lunarcrush: coin %s not found", coin)
	}

	return resp.Data, nil
}

func (l *LunarCrush) QueryTopicSummary(ctx context.Context, topic string) (*TopicSummary, error) {
	var resp envelope[*TopicSummary]
	if err := l.client.Topics.GetInto(ctx, topic, &resp); err != nil {
		return nil, err
	}

	if resp.Error != "" {
		return nil, errors.Errorf("lunarcrush: topic %s: %s", topic, resp.Error)
	}

	if resp.Data == nil {
		return nil, errors.Errorf("lunarcrush: topic %s not found", topic)
	}

	return resp.Data, nil
}
