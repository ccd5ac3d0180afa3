package lunarcrushapi

import (
	"context"
	"time"
)

func optionalString[T ~string](v *T) ParamValue {
	if v == nil {
		return NullValue{}
	}

	return StringValue(*v)
}

func optionalInt(v *int) ParamValue {
	if v == nil {
		return NullValue{}
	}

	return IntValue(*v)
}

func optionalBool(v *bool) ParamValue {
	if v == nil {
		return NullValue{}
	}

	return BoolValue(*v)
}

func optionalTime(v *time.Time) ParamValue {
	if v == nil {
		return NullValue{}
	}

	return TimestampValue(*v)
}

func optionalSequence(v []string) ParamValue {
	if v == nil {
		return NullValue{}
	}

	return SequenceValue(v)
}

// ListRequest queries one of the coins, stocks or nfts list endpoints.
type ListRequest struct {
	client Requester
	path   string

	sort   *string
	filter []string
	limit  *int
	desc   *bool
	page   *int
}

func newListRequest(client Requester, path string) *ListRequest {
	return &ListRequest{client: client, path: path}
}

// Sort sorts the output by the given metric, e.g. "galaxy_score".
func (r *ListRequest) Sort(metric string) *ListRequest {
	r.sort = &metric
	return r
}

// Filter keeps the entries in any of the given sub categories / sectors.
// Multiple sectors are sent comma separated.
func (r *ListRequest) Filter(sectors ...string) *ListRequest {
	if sectors == nil {
		sectors = []string{}
	}

	r.filter = sectors
	return r
}

// Limit defaults to 10 on the server, the maximum is 1000 per page.
func (r *ListRequest) Limit(limit int) *ListRequest {
	r.limit = &limit
	return r
}

func (r *ListRequest) Desc(desc bool) *ListRequest {
	r.desc = &desc
	return r
}

// Page starts at 0 and only applies together with Limit.
func (r *ListRequest) Page(page int) *ListRequest {
	r.page = &page
	return r
}

func (r *ListRequest) Path() string { return r.path }

func (r *ListRequest) Parameters() *Params {
	return NewParams().
		Set("sort", optionalString(r.sort)).
		Set("filter", optionalSequence(r.filter)).
		Set("limit", optionalInt(r.limit)).
		Set("desc", optionalBool(r.desc)).
		Set("page", optionalInt(r.page))
}

func (r *ListRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, r.path, r.Parameters())
}

func (r *ListRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, r.path, r.Parameters(), v)
}

// TimeSeriesRequest queries a v1 style time series endpoint.
type TimeSeriesRequest struct {
	client Requester
	path   string

	bucket   *Bucket
	interval *Interval
	start    *time.Time
	end      *time.Time
}

func newTimeSeriesRequest(client Requester, path string) *TimeSeriesRequest {
	return &TimeSeriesRequest{client: client, path: path}
}

// Bucket defaults to hours on the server.
func (r *TimeSeriesRequest) Bucket(bucket Bucket) *TimeSeriesRequest {
	r.bucket = &bucket
	return r
}

// Interval is ignored by the server when Start or End is set.
func (r *TimeSeriesRequest) Interval(interval Interval) *TimeSeriesRequest {
	r.interval = &interval
	return r
}

func (r *TimeSeriesRequest) Start(start time.Time) *TimeSeriesRequest {
	r.start = &start
	return r
}

func (r *TimeSeriesRequest) End(end time.Time) *TimeSeriesRequest {
	r.end = &end
	return r
}

func (r *TimeSeriesRequest) Path() string { return r.path }

func (r *TimeSeriesRequest) Parameters() *Params {
	return NewParams().
		Set("bucket", optionalString(r.bucket)).
		Set("interval", optionalString(r.interval)).
		Set("start", optionalTime(r.start)).
		Set("end", optionalTime(r.end))
}

func (r *TimeSeriesRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, r.path, r.Parameters())
}

func (r *TimeSeriesRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, r.path, r.Parameters(), v)
}

// BucketTimeSeriesRequest queries a v2 time series endpoint, which only takes
// a bucket. Without a bucket the server returns the last week by hour.
type BucketTimeSeriesRequest struct {
	client Requester
	path   string

	bucket *Bucket
}

func (r *BucketTimeSeriesRequest) Bucket(bucket Bucket) *BucketTimeSeriesRequest {
	r.bucket = &bucket
	return r
}

func (r *BucketTimeSeriesRequest) Path() string { return r.path }

func (r *BucketTimeSeriesRequest) Parameters() *Params {
	return NewParams().Set("bucket", optionalString(r.bucket))
}

func (r *BucketTimeSeriesRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, r.path, r.Parameters())
}

func (r *BucketTimeSeriesRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, r.path, r.Parameters(), v)
}

// PostsRequest queries the top posts of a topic, category or creator.
// Without Start the server returns the top posts of the last 24 hours.
type PostsRequest struct {
	client Requester
	path   string

	start *time.Time
	end   *time.Time
}

// Start is rounded to the beginning of the day by the server.
func (r *PostsRequest) Start(start time.Time) *PostsRequest {
	r.start = &start
	return r
}

// End is rounded to the end of the day by the server.
func (r *PostsRequest) End(end time.Time) *PostsRequest {
	r.end = &end
	return r
}

func (r *PostsRequest) Path() string { return r.path }

func (r *PostsRequest) Parameters() *Params {
	return NewParams().
		Set("start", optionalTime(r.start)).
		Set("end", optionalTime(r.end))
}

func (r *PostsRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, r.path, r.Parameters())
}

func (r *PostsRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, r.path, r.Parameters(), v)
}

// SearchRequest looks up recently popular posts for a term or a search
// definition.
type SearchRequest struct {
	client Requester

	term       *string
	searchJSON *string
}

func (r *SearchRequest) Term(term string) *SearchRequest {
	r.term = &term
	return r
}

// SearchJSON takes the search criteria as a stringified JSON object.
func (r *SearchRequest) SearchJSON(searchJSON string) *SearchRequest {
	r.searchJSON = &searchJSON
	return r
}

func (r *SearchRequest) Path() string { return searchPath }

func (r *SearchRequest) Parameters() *Params {
	return NewParams().
		Set("term", optionalString(r.term)).
		Set("search_json", optionalString(r.searchJSON))
}

func (r *SearchRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, searchPath, r.Parameters())
}

func (r *SearchRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, searchPath, r.Parameters(), v)
}

// CreateSearchRequest creates a custom search aggregation.
type CreateSearchRequest struct {
	client Requester

	name       string
	searchJSON string
	priority   *bool
}

func (r *CreateSearchRequest) Priority(priority bool) *CreateSearchRequest {
	r.priority = &priority
	return r
}

func (r *CreateSearchRequest) Path() string { return createSearchPath }

func (r *CreateSearchRequest) Parameters() *Params {
	return NewParams().
		Set("name", StringValue(r.name)).
		Set("search_json", StringValue(r.searchJSON)).
		Set("priority", optionalBool(r.priority))
}

func (r *CreateSearchRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, createSearchPath, r.Parameters())
}

func (r *CreateSearchRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, createSearchPath, r.Parameters(), v)
}

// UpdateSearchRequest renames a custom search aggregation. Search terms can
// not be changed once created.
type UpdateSearchRequest struct {
	client Requester
	path   string

	name       *string
	searchJSON *string
}

func (r *UpdateSearchRequest) Name(name string) *UpdateSearchRequest {
	r.name = &name
	return r
}

func (r *UpdateSearchRequest) SearchJSON(searchJSON string) *UpdateSearchRequest {
	r.searchJSON = &searchJSON
	return r
}

func (r *UpdateSearchRequest) Path() string { return r.path }

func (r *UpdateSearchRequest) Parameters() *Params {
	return NewParams().
		Set("name", optionalString(r.name)).
		Set("search_json", optionalString(r.searchJSON))
}

func (r *UpdateSearchRequest) Do(ctx context.Context) (interface{}, error) {
	return r.client.Request(ctx, r.path, r.Parameters())
}

func (r *UpdateSearchRequest) DoInto(ctx context.Context, v interface{}) error {
	return r.client.RequestInto(ctx, r.path, r.Parameters(), v)
}
