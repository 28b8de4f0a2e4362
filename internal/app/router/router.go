package router

import (
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/http/handler"
	jwtmw "auth_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, verifier jwtmw.Verifier) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)

	auth := r.Group("/auth")
	{
		// 新規ユーザー登録（JWT 発行）
		auth.POST("/register", authHandler.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", authHandler.Login)

		// 認証必須のルート
		// jwtmw.AuthRequired() ミドルウェアを適用
		// → リクエストヘッダーに JWT が必要になる
		me := auth.Group("")
		me.Use(jwtmw.AuthRequired(verifier))
		{
			me.GET("/me", authHandler.Me)
		}
	}

	return r
}
