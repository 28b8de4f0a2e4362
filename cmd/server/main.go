package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authcache "auth_backend/internal/feature/auth/adapters/cache"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	"auth_backend/internal/platform/db"
	"auth_backend/internal/platform/gravatar"
	jwtmw "auth_backend/internal/platform/jwt"
	platformredis "auth_backend/internal/platform/redis"
)

func main() {
	// 設定（JWT_SECRET未設定なら起動失敗）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// トークン署名・検証（シークレットはここでのみ注入される）
	codec := jwtmw.NewCodec(cfg.JWTSecret, cfg.TokenExpiry)

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	// RedisキャッシュでFindByIDをラップ
	cachedUserRepo := authcache.NewCachingUserRepository(rdb, cfg.CacheTTL, userRepo, "users")

	// Usecase
	authUC := authusecase.NewAuthUsecase(cachedUserRepo, codec, gravatar.URL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	r := router.NewRouter(authH, codec)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
