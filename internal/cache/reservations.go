package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jihedaidrive/razor-spark-book/internal/models"
)

// DayCache keeps the per-(barber, date) reservation list in redis for a few
// seconds so calendar reads don't hammer the store. Staleness here is
// harmless: the write path re-checks conflicts against the database, never
// against this cache. A nil *DayCache disables caching entirely.
type DayCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDayCache(rdb *redis.Client, ttl time.Duration) *DayCache {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &DayCache{rdb: rdb, ttl: ttl}
}

func dayKey(barberName, date string) string {
	return fmt.Sprintf("reservations:%s:%s", barberName, date)
}

func (c *DayCache) GetDay(
	ctx context.Context,
	barberName string,
	date string,
) ([]models.Reservation, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, dayKey(barberName, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var out []models.Reservation
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *DayCache) SetDay(
	ctx context.Context,
	barberName string,
	date string,
	reservations []models.Reservation,
) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(reservations)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, dayKey(barberName, date), raw, c.ttl).Err(); err != nil {
		log.Println("reservation cache set:", err)
	}
}

func (c *DayCache) Invalidate(
	ctx context.Context,
	barberName string,
	date string,
) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKey(barberName, date)).Err(); err != nil {
		log.Println("reservation cache invalidate:", err)
	}
}
