package testutil

import (
	"regexp"
	"testing"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/envvar"
)

var secretPattern = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretPattern.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the live API tests for prefix
// should run. They run only when <prefix>_API_KEY is set and TEST_<prefix>
// is "1". The bearer APIs used here need a key but no secret.
func IntegrationTestConfigured(t *testing.T, prefix string) (key string, ok bool) {
	key, hasKey := envvar.String(prefix + "_API_KEY")
	enabled, _ := envvar.String("TEST_" + prefix)
	ok = hasKey && key != "" && enabled == "1"
	if ok {
		t.Logf("%s api integration test enabled, key = %s", prefix, maskSecret(key))
	}

	return key, ok
}
