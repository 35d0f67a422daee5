package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windoze95/servicehub-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := "file:kv_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))
	return NewGormStore(db)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v"))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestGormStore_Upsert(t *testing.T) {
	ctx := context.Background()
	s := openTestGormStore(t)

	_, ok, err := s.Get(ctx, DefaultHistoryKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, DefaultHistoryKey, `["Paris"]`))
	require.NoError(t, s.Set(ctx, DefaultHistoryKey, `["Tokyo","Paris"]`))

	v, ok, err := s.Get(ctx, DefaultHistoryKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Tokyo","Paris"]`, v)

	var count int64
	require.NoError(t, s.DB.Model(&models.KVEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGormStore_BacksHistory(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepository(openTestGormStore(t), "", 0)

	_, err := repo.Record(ctx, "Lima")
	require.NoError(t, err)
	list, err := repo.Record(ctx, "Quito")
	require.NoError(t, err)
	assert.Equal(t, []string{"Quito", "Lima"}, list)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url", "")
	assert.Error(t, err)
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	s := NewRedisStoreFromClient(client, "servicehub:")
	defer s.Close()

	_, _, err := s.Get(context.Background(), DefaultHistoryKey)
	assert.Error(t, err)

	called := false
	err = s.Update(context.Background(), DefaultHistoryKey, func(string, bool) (string, error) {
		called = true
		return "", nil
	})
	assert.Error(t, err)
	assert.False(t, called, "update func should not run without a connection")
}
