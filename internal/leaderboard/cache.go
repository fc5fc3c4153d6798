package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const (
	generationKey = "leaderboard:gen"
	boardTTL      = 30 * time.Second
)

// BoardCache holds rendered leaderboard pages. It is best-effort: a miss or a
// redis error just sends the read to the database.
type BoardCache interface {
	GetBoard(limit, skip int) (*Board, bool)
	SetBoard(limit, skip int, board *Board)
	Invalidate()
}

type RedisBoardCache struct {
	db *redis.Client
}

func NewRedisBoardCache(db *redis.Client) *RedisBoardCache {
	return &RedisBoardCache{db: db}
}

// Pages are keyed by a generation counter that Invalidate bumps, so a new
// score makes every cached page unreachable; stale generations expire by TTL.
func (c *RedisBoardCache) boardKey(limit, skip int) string {
	gen, err := c.db.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		return ""
	}
	return fmt.Sprintf("leaderboard:%d:%d:%d", gen, limit, skip)
}

func (c *RedisBoardCache) GetBoard(limit, skip int) (*Board, bool) {
	key := c.boardKey(limit, skip)
	if key == "" {
		return nil, false
	}

	val, err := c.db.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var board Board
	if err := json.Unmarshal([]byte(val), &board); err != nil {
		return nil, false
	}
	return &board, true
}

func (c *RedisBoardCache) SetBoard(limit, skip int, board *Board) {
	key := c.boardKey(limit, skip)
	if key == "" {
		return
	}

	data, err := json.Marshal(board)
	if err != nil {
		return
	}
	if err := c.db.Set(ctx, key, data, boardTTL).Err(); err != nil {
		log.Println("error caching leaderboard page:", err)
	}
}

func (c *RedisBoardCache) Invalidate() {
	if err := c.db.Incr(ctx, generationKey).Err(); err != nil {
		log.Println("error invalidating leaderboard cache:", err)
	}
}
