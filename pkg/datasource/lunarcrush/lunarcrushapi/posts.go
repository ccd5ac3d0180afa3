package lunarcrushapi

import (
	"context"
	"fmt"
)

// PostService covers single post endpoints. postID is the network's own id,
// e.g. the tweet number or the part after watch?v= of a youtube url.
type PostService struct {
	client Requester
}

func (s *PostService) Get(ctx context.Context, postType PostType, postID string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/posts/%s/%s/v1", postType, postID), nil)
}

// TimeSeries returns the interactions over time, daily for posts older than
// 365 days and hourly otherwise.
func (s *PostService) TimeSeries(ctx context.Context, postType PostType, postID string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/posts/%s/%s/time-series/v1", postType, postID), nil)
}
