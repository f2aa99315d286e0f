// Package repository persists bookings as one JSON array under a single fixed
// Redis key. There is no query language: callers list everything and filter in
// memory. Append and UpdateStatus are read-modify-write, which is safe here
// because the service is the store's only writer.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/herculesarena/turfbooking/pkg/constant"
	"github.com/redis/go-redis/v9"
)

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mock/store.go -package=mock github.com/herculesarena/turfbooking/internal/domains/bookings/repository Store

var ErrBookingNotFound = errors.New("booking not found")

type Store interface {
	List(ctx context.Context) ([]Booking, error)
	Append(ctx context.Context, booking Booking) error
	UpdateStatus(ctx context.Context, id, status string) error
}

const bookingsKey = constant.CacheParentKey + ":bookings"

type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) List(ctx context.Context) ([]Booking, error) {
	raw, err := s.client.Get(ctx, bookingsKey).Result()
	if errors.Is(err, redis.Nil) {
		return []Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("bookings: read failed: %w", err)
	}

	var bookings []Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		return nil, fmt.Errorf("bookings: decode failed: %w", err)
	}

	return bookings, nil
}

func (s *RedisStore) Append(ctx context.Context, booking Booking) error {
	bookings, err := s.List(ctx)
	if err != nil {
		return err
	}

	bookings = append(bookings, booking)

	return s.write(ctx, bookings)
}

func (s *RedisStore) UpdateStatus(ctx context.Context, id, status string) error {
	bookings, err := s.List(ctx)
	if err != nil {
		return err
	}

	found := false

	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			found = true

			break
		}
	}

	if !found {
		return ErrBookingNotFound
	}

	return s.write(ctx, bookings)
}

func (s *RedisStore) write(ctx context.Context, bookings []Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("bookings: encode failed: %w", err)
	}

	if err := s.client.Set(ctx, bookingsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("bookings: write failed: %w", err)
	}

	return nil
}
