package lunarcrushapi

import (
	"context"
	"fmt"
)

// NFTService covers the NFT collection endpoints. nft is the numeric id or
// the symbol of the collection.
type NFTService struct {
	client Requester
}

func (s *NFTService) NewListV2Request() *ListRequest {
	return newListRequest(s.client, "/public/nfts/list/v2")
}

// NewListRequest is cached and up to 1 hour behind.
func (s *NFTService) NewListRequest() *ListRequest {
	return newListRequest(s.client, "/public/nfts/list/v1")
}

func (s *NFTService) Get(ctx context.Context, nft string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/nfts/%s/v1", nft), nil)
}

func (s *NFTService) NewTimeSeriesV2Request(nft string) *BucketTimeSeriesRequest {
	return &BucketTimeSeriesRequest{client: s.client, path: fmt.Sprintf("/public/nfts/%s/time-series/v2", nft)}
}

func (s *NFTService) NewTimeSeriesRequest(nft string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/nfts/%s/time-series/v1", nft))
}
