package lunarcrushapi

import "context"

type SystemService struct {
	client Requester
}

// Changes returns the recent system changes.
func (s *SystemService) Changes(ctx context.Context) (interface{}, error) {
	return s.client.Request(ctx, "/public/system/changes", nil)
}
