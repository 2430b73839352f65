package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilCacheIsSafe(t *testing.T) {
	c := New("")
	assert.Nil(t, c)

	ctx := context.Background()

	var out []string
	assert.False(t, c.GetJSON(ctx, "key", &out))

	c.SetJSON(ctx, "key", []string{"x"}, time.Minute)
	c.Delete(ctx, "key")
}

func TestNewRejectsBadURL(t *testing.T) {
	assert.Nil(t, New("not-a-redis-url"))
}

func TestListingKeys(t *testing.T) {
	assert.Equal(t, "equipments:my:42", MyEquipmentsKey(42))
	assert.Equal(t, "equipments:others:42", OtherEquipmentsKey(42))
}
