// Package redis connects to a Redis server with retry, for session stores
// and other components built on go-redis.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client, time.Hour)
//
// Configuration comes from REDIS_* environment variables; see Config.
package redis
