package ratelimit

import (
	"encoding/json"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

func newLimiter(max float64) *limiter.Limiter {
	message := map[string]any{
		"message": "You are going too fast! You have been ratelimited.",
	}
	jsonMessage, _ := json.Marshal(message)

	tlbthLimiter := tollbooth.NewLimiter(max, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Minute * 1,
	})
	tlbthLimiter.SetMessageContentType("application/json")
	tlbthLimiter.SetMessage(string(jsonMessage))
	return tlbthLimiter
}

func TokenBucketPerIP() gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(newLimiter(25))
}

// LoginAttemptsPerIP is the tighter limit applied to password and face login.
func LoginAttemptsPerIP() gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(newLimiter(2))
}
