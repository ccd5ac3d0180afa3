package lunarcrushapi

import (
	"context"
	"fmt"
)

type StockService struct {
	client Requester
}

func (s *StockService) NewListV2Request() *ListRequest {
	return newListRequest(s.client, "/public/stocks/list/v2")
}

// NewListRequest is cached and up to 1 hour behind.
func (s *StockService) NewListRequest() *ListRequest {
	return newListRequest(s.client, "/public/stocks/list/v1")
}

// Get takes the numeric id or the symbol of the stock.
func (s *StockService) Get(ctx context.Context, stock string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/stocks/%s/v1", stock), nil)
}

func (s *StockService) NewTimeSeriesRequest(stock string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/stocks/%s/time-series/v2", stock))
}
