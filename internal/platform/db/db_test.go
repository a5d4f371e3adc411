package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolOptionsDefaults(t *testing.T) {
	got := PoolOptions{}.withDefaults()
	assert.Equal(t, DefaultPoolOptions(), got)

	got = PoolOptions{MaxOpen: 1, MaxIdle: 8, MaxLifetime: time.Minute}.withDefaults()
	assert.Equal(t, 1, got.MaxOpen)
	assert.Equal(t, 1, got.MaxIdle)
	assert.Equal(t, time.Minute, got.MaxLifetime)
	assert.Equal(t, 5*time.Minute, got.MaxIdleTime)
}

func TestOpenRejectsEmptyURL(t *testing.T) {
	conn, err := Open(context.Background(), "", DefaultPoolOptions())
	require.Error(t, err)
	assert.Nil(t, conn)
}

func TestInitSchemaNilDB(t *testing.T) {
	assert.Error(t, InitSchema(context.Background(), nil))
}
