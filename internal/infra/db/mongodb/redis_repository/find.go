package redis_repository

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
)

// FindByKey returns the stored string, or "" with no error when the key
// is absent or expired.
func FindByKey(redisURL string, key string) (string, error) {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	value, err := redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error fetching key %s from Redis: %w", key, err)
	}

	return value, nil
}

// FindExcelByKey returns the cached workbook bytes, or nil when the key
// is absent.
func FindExcelByKey(redisURL string, key string) ([]byte, error) {
	encodedExcel, err := FindByKey(redisURL, key)
	if err != nil {
		return nil, err
	}
	if encodedExcel == "" {
		return nil, nil
	}

	excelBytes, err := base64.StdEncoding.DecodeString(encodedExcel)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 Excel file: %w", err)
	}

	return excelBytes, nil
}
