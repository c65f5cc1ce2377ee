package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"blog-platform-server/internal/config"
	"blog-platform-server/internal/consts"
	"blog-platform-server/internal/modules/common/httpx"
	"blog-platform-server/internal/platform/service"
	"blog-platform-server/internal/platform/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimiter 按运行时设置限流；Redis 可用时多实例共享计数，否则使用进程内令牌桶。
type RateLimiter struct {
	appService  *service.AppService
	redisClient *redis.Client
	redisPrefix string
}

func NewRateLimiter(appService *service.AppService, redisClient *redis.Client, redisCfg config.RedisConfig) *RateLimiter {
	return &RateLimiter{
		appService:  appService,
		redisClient: redisClient,
		redisPrefix: redisCfg.Prefix,
	}
}

// Middleware 创建一个动态限流中间件，同一组路由共用一个本地 IPRateLimiter。
func (l *RateLimiter) Middleware(rpsKey string, burstKey string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !l.appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := l.appService.GetFloat64(rpsKey)
		currentBurst := l.appService.GetInt(burstKey)
		ip := c.ClientIP()

		if l.redisClient != nil {
			allowed, err := allowByRedisRateLimit(l.redisClient, l.redisPrefix, rpsKey, burstKey, ip, currentRPS, currentBurst)
			if err == nil {
				if !allowed {
					abortTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Warn().Err(err).Msg("⚠️ Redis 限流失败，回退本地限流")
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		il := limiter.getLimiter(ip)

		// 配置变更后同步到已有的 limiter
		if il.Limit() != rate.Limit(currentRPS) {
			il.SetLimit(rate.Limit(currentRPS))
		}
		if il.Burst() != currentBurst {
			il.SetBurst(currentBurst)
		}

		if !il.Allow() {
			abortTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func abortTooManyRequests(c *gin.Context) {
	httpx.AbortWithError(c, http.StatusTooManyRequests, service.ErrorCodeRateLimited, "请求过于频繁，请稍后再试")
}

// allowByRedisRateLimit 以固定窗口近似令牌桶：窗口长度为 burst/rps 秒，窗口内最多 burst 次。
func allowByRedisRateLimit(client *redis.Client, prefix, rpsKey, burstKey, ip string, rps float64, burst int) (bool, error) {
	if client == nil || rps <= 0 || burst <= 0 {
		return true, nil
	}

	window := int64(math.Ceil(float64(burst) / rps))
	if window < 1 {
		window = 1
	}
	bucket := time.Now().Unix() / window
	key := session.RedisKey(prefix, "rate", rpsKey, burstKey, ip, strconv.FormatInt(bucket, 10))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var incr *redis.IntCmd
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Duration(window+1)*time.Second)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(burst), nil
}
