package lunarcrushapi

import (
	"context"
	"fmt"
)

const (
	searchPath       = "/public/searches/search"
	createSearchPath = "/public/searches/create"
)

// SearchService covers searches and custom search aggregations. Create,
// update and delete are plain GET requests like every other endpoint.
type SearchService struct {
	client Requester
}

func (s *SearchService) NewSearchRequest() *SearchRequest {
	return &SearchRequest{client: s.client}
}

// List returns the saved searches.
func (s *SearchService) List(ctx context.Context) (interface{}, error) {
	return s.client.Request(ctx, "/public/searches/list", nil)
}

func (s *SearchService) NewCreateRequest(name, searchJSON string) *CreateSearchRequest {
	return &CreateSearchRequest{client: s.client, name: name, searchJSON: searchJSON}
}

func (s *SearchService) NewUpdateRequest(slug string) *UpdateSearchRequest {
	return &UpdateSearchRequest{client: s.client, path: fmt.Sprintf("/public/searches/%s/update", slug)}
}

func (s *SearchService) Delete(ctx context.Context, slug string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/searches/%s/delete", slug), nil)
}

// Get returns the summary output of a custom search aggregation.
func (s *SearchService) Get(ctx context.Context, slug string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/searches/%s", slug), nil)
}
