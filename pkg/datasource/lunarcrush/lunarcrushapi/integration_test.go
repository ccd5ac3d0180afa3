package lunarcrushapi

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/testutil"
)

func getTestClientOrSkip(t *testing.T) *RestClient {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		t.Skip("skip test for CI")
	}

	key, ok := testutil.IntegrationTestConfigured(t, "LUNARCRUSH")
	if !ok {
		t.Skip("LUNARCRUSH_API_KEY and TEST_LUNARCRUSH=1 are required")
		return nil
	}

	return NewClient(key, WithStrictStatus())
}

func TestRestClient_Live(t *testing.T) {
	client := getTestClientOrSkip(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Run("coins list", func(t *testing.T) {
		req := client.Coins.NewListV2Request().Sort("galaxy_score").Limit(5).Desc(true)
		v, err := client.RequestValue(ctx, req.Path(), req.Parameters())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(v.GetArray("data")), 5)
	})

	t.Run("topic", func(t *testing.T) {
		v, err := client.Topics.Get(ctx, "bitcoin")
		require.NoError(t, err)
		assert.Contains(t, v.(map[string]interface{}), "data")
	})

	t.Run("topic time series v2", func(t *testing.T) {
		_, err := client.Topics.NewTimeSeriesV2Request("bitcoin").Bucket(BucketDay).Do(ctx)
		require.NoError(t, err)
	})
}
