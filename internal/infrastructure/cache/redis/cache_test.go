package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
)

type CacheTestSuite struct {
	suite.Suite
	client *Client
	mock   redismock.ClientMock
	cache  Cache
}

func (s *CacheTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.client = &Client{rdb: db, logger: logging.NewNopLogger()}
	s.cache = NewCache(s.client, logging.NewNopLogger(), WithPrefix("test:"))
}

func (s *CacheTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

type payload struct {
	Formula string `json:"formula"`
	Atoms   int    `json:"atoms"`
}

func (s *CacheTestSuite) TestGet_Hit() {
	want := payload{Formula: "Au", Atoms: 72}
	data, _ := json.Marshal(want)
	s.mock.ExpectGet("test:slab:Au(111)").SetVal(string(data))

	var got payload
	err := s.cache.Get(context.Background(), "slab:Au(111)", &got)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), want, got)
}

func (s *CacheTestSuite) TestGet_Miss() {
	s.mock.ExpectGet("test:absent").RedisNil()

	var got payload
	err := s.cache.Get(context.Background(), "absent", &got)

	assert.ErrorIs(s.T(), err, ErrCacheMiss)
	assert.True(s.T(), apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func (s *CacheTestSuite) TestGet_DecodeError() {
	s.mock.ExpectGet("test:bad").SetVal("not json")

	var got payload
	err := s.cache.Get(context.Background(), "bad", &got)

	assert.True(s.T(), apperrors.IsCode(err, apperrors.ErrCodeSerialization))
}

func (s *CacheTestSuite) TestDelete_NoKeysIsNoop() {
	assert.NoError(s.T(), s.cache.Delete(context.Background()))
}

func (s *CacheTestSuite) TestExists() {
	s.mock.ExpectExists("test:k").SetVal(1)

	ok, err := s.cache.Exists(context.Background(), "k")

	assert.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func TestGetOrSet_LoaderOnMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &Client{rdb: db, logger: logging.NewNopLogger()}
	cache := NewCache(client, logging.NewNopLogger(), WithPrefix("test:"))

	want := payload{Formula: "Cu", Atoms: 64}
	data, _ := json.Marshal(want)

	mock.ExpectGet("test:k").RedisNil()
	// TTL carries random jitter, so only the key and value are pinned.
	mock.CustomMatch(func(expected, actual []interface{}) error { return nil }).
		ExpectSet("test:k", data, 0).SetVal("OK")

	calls := 0
	var got payload
	err := cache.GetOrSet(context.Background(), "k", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			calls++
			return want, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrSet_SkipsLoaderOnHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &Client{rdb: db, logger: logging.NewNopLogger()}
	cache := NewCache(client, logging.NewNopLogger(), WithPrefix("test:"))

	want := payload{Formula: "Pt", Atoms: 72}
	data, _ := json.Marshal(want)
	mock.ExpectGet("test:k").SetVal(string(data))

	var got payload
	err := cache.GetOrSet(context.Background(), "k", &got, time.Minute,
		func(ctx context.Context) (interface{}, error) {
			t.Fatal("loader must not run on a cache hit")
			return nil, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNilClientBehavesClosed(t *testing.T) {
	var client *Client
	cache := NewCache(client, logging.NewNopLogger())

	var got payload
	err := cache.Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.NoError(t, client.Close())
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "slab:Au(111)", NormalizeQuery("  Au (111) "))
	assert.Equal(t, "slab:au(111)", NormalizeQuery("au(111)"))
	assert.NotEqual(t, NormalizeQuery("Au(111)"), NormalizeQuery("au(111)"))
}
