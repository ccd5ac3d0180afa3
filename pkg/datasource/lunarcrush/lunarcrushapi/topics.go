package lunarcrushapi

import (
	"context"
	"fmt"
)

// TopicService covers the social topic endpoints. A topic is all lower case
// and may only contain letters, numbers, spaces, # and $. It is put into the
// path as given.
type TopicService struct {
	client Requester
}

// List returns the trending social topics.
func (s *TopicService) List(ctx context.Context) (interface{}, error) {
	return s.client.Request(ctx, "/public/topics/list/v1", nil)
}

// WhatsUp returns an AI summary of the hottest news and posts for a topic.
func (s *TopicService) WhatsUp(ctx context.Context, topic string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/topic/%s/whatsup/v1", topic), nil)
}

// Get returns a 24 hour aggregation of the topic's social activity compared
// to the previous 24 hours. Coins, stocks and NFTs can also be looked up by
// their numeric id, e.g. "coins:1" or "stocks:7056".
func (s *TopicService) Get(ctx context.Context, topic string) (interface{}, error) {
	return s.client.Request(ctx, topicPath(topic), nil)
}

// GetInto is Get decoding the response into v.
func (s *TopicService) GetInto(ctx context.Context, topic string, v interface{}) error {
	return s.client.RequestInto(ctx, topicPath(topic), nil, v)
}

func topicPath(topic string) string {
	return fmt.Sprintf("/public/topic/%s/v1", topic)
}

func (s *TopicService) NewTimeSeriesV2Request(topic string) *BucketTimeSeriesRequest {
	return &BucketTimeSeriesRequest{client: s.client, path: fmt.Sprintf("/public/topic/%s/time-series/v2", topic)}
}

func (s *TopicService) NewTimeSeriesRequest(topic string) *TimeSeriesRequest {
	return newTimeSeriesRequest(s.client, fmt.Sprintf("/public/topic/%s/time-series/v1", topic))
}

func (s *TopicService) NewPostsRequest(topic string) *PostsRequest {
	return &PostsRequest{client: s.client, path: fmt.Sprintf("/public/topic/%s/posts/v1", topic)}
}

// News returns the top news posts, ranked by the social posts mentioning them.
func (s *TopicService) News(ctx context.Context, topic string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/topic/%s/news/v1", topic), nil)
}

func (s *TopicService) Creators(ctx context.Context, topic string) (interface{}, error) {
	return s.client.Request(ctx, fmt.Sprintf("/public/topic/%s/creators/v1", topic), nil)
}
