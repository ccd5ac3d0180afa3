package lunarcrushapi

// Bucket selects the aggregation of time series data.
type Bucket string

const (
	BucketHour Bucket = "hour"
	BucketDay  Bucket = "day"
)

// Interval picks start and end automatically. It is ignored by the API when
// start or end is given.
type Interval string

const (
	Interval1Day   Interval = "1d"
	Interval1Week  Interval = "1w"
	Interval1Month Interval = "1m"
	Interval3Month Interval = "3m"
	Interval6Month Interval = "6m"
	Interval1Year  Interval = "1y"
	IntervalAll    Interval = "all"
)

type Network string

const (
	NetworkTwitter   Network = "twitter"
	NetworkYouTube   Network = "youtube"
	NetworkInstagram Network = "instagram"
	NetworkReddit    Network = "reddit"
	NetworkTikTok    Network = "tiktok"
)

type PostType string

const (
	PostTypeTweet         PostType = "tweet"
	PostTypeYouTubeVideo  PostType = "youtube-video"
	PostTypeTikTokVideo   PostType = "tiktok-video"
	PostTypeRedditPost    PostType = "reddit-post"
	PostTypeInstagramPost PostType = "instagram-post"
)
