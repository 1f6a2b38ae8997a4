package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sellerpulse/pkg/models"
)

// Dashboard aggregates are cheap to recompute, so the TTL stays short.
// Generated AI insights are never cached.
const aggregateTTL = 5 * time.Minute

const (
	productDetailsKey = "dashboard:product_details"
	topSellingKey     = "dashboard:top_selling"
)

func CacheProductDetails(ctx context.Context, details []models.ProductDetail) error {
	return setJSON(ctx, productDetailsKey, details)
}

func GetProductDetailsFromCache(ctx context.Context) ([]models.ProductDetail, error) {
	var details []models.ProductDetail
	if err := getJSON(ctx, productDetailsKey, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func CacheTopSellingItems(ctx context.Context, items []models.TopSellingItem) error {
	return setJSON(ctx, topSellingKey, items)
}

func GetTopSellingItemsFromCache(ctx context.Context) ([]models.TopSellingItem, error) {
	var items []models.TopSellingItem
	if err := getJSON(ctx, topSellingKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func setJSON(ctx context.Context, key string, value interface{}) error {
	client := RedisClient()
	defer client.Close()

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := client.Set(ctx, key, payload, aggregateTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}

func getJSON(ctx context.Context, key string, out interface{}) error {
	client := RedisClient()
	defer client.Close()

	payload, err := client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}
