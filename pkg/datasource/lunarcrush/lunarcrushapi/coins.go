package lunarcrushapi

import (
	"context"
	"fmt"
)

// CoinService covers the coin endpoints. coin is the numeric id or the symbol
// of the coin or token, see the coins list.
type CoinService struct {
	client Requester
}

// NewListV2Request lists all tracked coins with data updated every few seconds.
func (s *CoinService) NewListV2Request() *ListRequest {
	return newListRequest(s.client, "/public/coins/list/v2")
}

// NewListRequest lists all tracked coins. The result is heavily cached and up
// to 1 hour behind.
func (s *CoinService) NewListRequest() *ListRequest {
	return newListRequest(s.client, "/public/coins/list/v1")
}

func coinPath(coin string) string {
	return fmt.Sprintf("/public/coins/%s/v1", coin)
}

func (s *CoinService) Get(ctx context.Context, coin string) (interface{}, error) {
	return s.client.Request(ctx, coinPath(coin), nil)
}

// GetInto is Get decoding the response into v.
func (s *CoinService) GetInto(ctx context.Context, coin string, v interface{}) error {
	return s.client.RequestInto(ctx, coinPath(coin), nil, v)
}

func (s *CoinService) NewTimeSeriesRequest(coin string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/coins/%s/time-series/v2", coin))
}

// Meta returns project information such as the website and social links.
func (s *CoinService) Meta(ctx context.Context, coin string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/coins/%s/meta/v1", coin), nil)
}
