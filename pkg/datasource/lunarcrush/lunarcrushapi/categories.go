package lunarcrushapi

import (
	"context"
	"fmt"
)

// CategoryService covers the social category endpoints. A category is the
// aggregation of all posts of all topics within it.
type CategoryService struct {
	client Requester
}

func (s *CategoryService) List(ctx context.Context) (interface{}, error) {
	return s.client.Request(ctx, "/public/categories/list/v1", nil)
}

func (s *CategoryService) Get(ctx context.Context, category string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/category/%s/v1", category), nil)
}

func (s *CategoryService) Topics(ctx context.Context, category string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/category/%s/topics/v1", category), nil)
}

func (s *CategoryService) NewTimeSeriesRequest(category string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/category/%s/time-series/v1", category))
}

func (s *CategoryService) NewPostsRequest(category string) *PostsRequest {
	return &PostsRequest{client: s.client, path: fmt.Sprintf("/public/category/%s/posts/v1", category)}
}

func (s *CategoryService) News(ctx context.Context, category string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/category/%s/news/v1", category), nil)
}

func (s *CategoryService) Creators(ctx context.Context, category string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/category/%s/creators/v1", category), nil)
}
