package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	day := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "last_transactions_2024-03-05", CacheKey(SlugLastTransactions, day))
	assert.Equal(t, "overall_deals_2024-03-05", CacheKey(SlugOverallDeals, day))
	assert.Equal(t, "overall_deals_2024-03-06", CacheKey(SlugOverallDeals, day.Add(time.Minute)))
}
