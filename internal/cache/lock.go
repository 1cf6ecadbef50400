package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"WayToEarth/storage/redis"
)

// 基于 SETNX 的简单分布式锁，用于保证多个 scheduler 实例中只有一个执行清理任务
const lockPrefix = "lock"

// releaseScript 只删除自己持有的锁，避免锁过期后误删别人的锁
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// TryLock 获取锁，owner 用于释放时校验
func TryLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	fullkey := redis.Key(lockPrefix, key)

	return redis.Client().SetNX(ctx, fullkey, owner, ttl).Result()
}

func Unlock(ctx context.Context, key, owner string) error {
	fullkey := redis.Key(lockPrefix, key)

	return releaseScript.Run(ctx, redis.Client(), []string{fullkey}, owner).Err()
}
