package lunarcrushapi

import (
	"context"
	"fmt"
)

// CreatorService covers the social creator endpoints. id is the unique id or
// the screen name of the creator on network.
type CreatorService struct {
	client Requester
}

// List returns the trending creators over all of social, based on interactions.
func (s *CreatorService) List(ctx context.Context) (interface{}, error) {
	return s.client.Request(ctx, "/public/creators/list/v1", nil)
}

func (s *CreatorService) Get(ctx context.Context, network Network, id string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/creator/%s/%s/v1", network, id), nil)
}

func (s *CreatorService) NewTimeSeriesRequest(network Network, id string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/creator/%s/%s/time-series/v1", network, id))
}

func (s *CreatorService) NewPostsRequest(network Network, id string) *PostsRequest {
	return &PostsRequest{client: s.client, path: fmt.Sprintf("/public/creator/%s/%s/posts/v1", network, id)}
}
