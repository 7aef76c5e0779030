package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const otpTTL = 10 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

func otpKey(email string) string {
	return "otp:" + email
}

// StoreOTP keeps the reset code for the email; entries expire on their own.
func StoreOTP(email, code string) error {
	return Client.Set(Ctx, otpKey(email), code, otpTTL).Err()
}

// ConsumeOTP checks the submitted code against the stored one and deletes
// it on a match, so each code is accepted at most once.
func ConsumeOTP(email, code string) (bool, error) {
	stored, err := Client.Get(Ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	Client.Del(Ctx, otpKey(email))
	return true, nil
}
