package redis_repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
)

func SaveToRedis(redisURL string, key string, value string, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("error saving key %s to Redis: %w", key, err)
	}

	return nil
}

func SaveExcelToRedis(redisURL string, key string, excelData *excelize.File, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(redisURL)
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	buf := new(bytes.Buffer)
	if err := excelData.Write(buf); err != nil {
		return fmt.Errorf("error serializing Excel file: %w", err)
	}

	encodedData := base64.StdEncoding.EncodeToString(buf.Bytes())

	if err := redisClient.Set(ctx, key, encodedData, expiration).Err(); err != nil {
		return fmt.Errorf("error saving Excel file to Redis: %w", err)
	}

	return nil
}
