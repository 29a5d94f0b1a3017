package redis

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/suite"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/metrics"
)

var mockCtx = ctx.Background()

// memConn serves the few commands used here from a map. Scripts are never
// cached so every EVALSHA falls back to EVAL.
type memConn struct {
	data  map[string][]byte
	evals int
}

func (c *memConn) Close() error { return nil }
func (c *memConn) Err() error   { return nil }
func (c *memConn) Send(string, ...interface{}) error {
	return nil
}
func (c *memConn) Flush() error                  { return nil }
func (c *memConn) Receive() (interface{}, error) { return nil, nil }

func (c *memConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	switch cmd {
	case "":
		return nil, nil
	case "GET":
		v, ok := c.data[args[0].(string)]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "SET":
		c.data[args[0].(string)] = args[1].([]byte)
		return "OK", nil
	case "EVALSHA":
		return nil, redis.Error("NOSCRIPT No matching script. Please use EVAL.")
	case "EVAL":
		c.evals++
		// args: script, numkeys, key, val
		key, val := args[2].(string), args[3].([]byte)
		if cur, ok := c.data[key]; ok && bytes.Equal(cur, val) {
			delete(c.data, key)
			return int64(1), nil
		}
		return int64(0), nil
	}
	return nil, fmt.Errorf("unexpected command %s", cmd)
}

type redisSuite struct {
	suite.Suite
	conn *memConn
	im   Service
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) SetupTest() {
	s.conn = &memConn{data: map[string][]byte{}}
	pool := &redis.Pool{
		MaxIdle: 1,
		Dial:    func() (redis.Conn, error) { return s.conn, nil },
	}
	s.im = New("test", metrics.New("redis_test"), &Pools{Src: pool})
}

func (s *redisSuite) TestDelIfEqual() {
	s.conn.data["indexerLock:default"] = []byte("run-1")

	deleted, err := s.im.DelIfEqual(mockCtx, "indexerLock:default", []byte("run-1"))
	s.Require().NoError(err)
	s.True(deleted)
	s.NotContains(s.conn.data, "indexerLock:default")
	s.Equal(1, s.conn.evals)
}

func (s *redisSuite) TestDelIfEqualTakenOver() {
	// the lock of run-1 expired and run-2 acquired it
	s.conn.data["indexerLock:default"] = []byte("run-2")

	deleted, err := s.im.DelIfEqual(mockCtx, "indexerLock:default", []byte("run-1"))
	s.Require().NoError(err)
	s.False(deleted)
	s.Equal([]byte("run-2"), s.conn.data["indexerLock:default"])
}

func (s *redisSuite) TestDelIfEqualMissing() {
	deleted, err := s.im.DelIfEqual(mockCtx, "indexerLock:default", []byte("run-1"))
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *redisSuite) TestGetSet() {
	s.Require().NoError(s.im.Set(mockCtx, "k", []byte("v"), Forever))

	v, err := s.im.Get(mockCtx, "k")
	s.Require().NoError(err)
	s.Equal([]byte("v"), v)

	_, err = s.im.Get(mockCtx, "missing")
	s.ErrorIs(err, ErrNotFound)
}
