package controller

import (
	"net/http"
	"time"

	"github.com/Scalingo/sclng-top-languages/model"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RequestCost returns the number of github calls a request will trigger
type RequestCost func(c *gin.Context) int

// SingleCall is the cost of the routes doing one graphql request
func SingleCall(_ *gin.Context) int {
	return 1
}

// CallPerUser is the cost of the compare route, one graphql request for each requested user
func CallPerUser(c *gin.Context) int {
	count := len(model.TopLanguagesQuery{Usernames: c.Query("usernames")}.UsernameList())
	if count < 1 {
		return 1
	}
	return count
}

// NewRequestLimiter allow maxPerMinute requests per minute, with the same value as burst.
// Returns nil when the throttle is disabled
func NewRequestLimiter(maxPerMinute int) *rate.Limiter {
	if maxPerMinute <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), maxPerMinute)
}

// RateLimit reject incoming requests once the local limiter does not hold enough tokens.
// A request draws one token per github call it will trigger, so this also protects the token quota
func RateLimit(limiter *rate.Limiter, cost RequestCost) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.AllowN(time.Now(), cost(c)) {
			log.WithFields(log.Fields{
				"path": c.Request.URL.Path,
				"cost": cost(c),
			}).Warning("local rate limit reached, request rejected")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.NewAPIError(model.ErrRateLimitReached))
			return
		}

		c.Next()
	}
}
