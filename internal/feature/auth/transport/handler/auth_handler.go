// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、署名済みトークンを返します。
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login はユーザーを認証し、成功時に署名済みトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser はIDでユーザーを取得します。パスワードハッシュは含まれません。
	CurrentUser(ctx context.Context, id uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時はフィールドごとのメッセージ付きで400を返却
// - メール重複時は400を返却
// - 成功時はトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: req.Messages(err)})
		return
	}
	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("User already exists"))
		case errors.Is(err, usecase.ErrInvalidInput):
			slog.Warn("register rejected: invalid input", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
		}
		return
	}
	slog.Info("user register successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は「ユーザー不存在」と「パスワード不一致」を区別せず400を返却
// - 認証成功時はトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Errors: req.Messages(err)})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			// ユーザー列挙攻撃を防止するため、失敗理由を公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credentials"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Me は認証済みユーザー取得APIエンドポイントを処理します。
// ミドルウェアが設定したユーザーIDでストアを参照し、
// パスワードハッシュを除いたユーザー情報を返します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not authenticated"))
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			// 有効なトークンだがユーザーが存在しない場合も未認証として扱う
			slog.Warn("me lookup failed: user not found", "user_id", userID)
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Not authenticated"))
			return
		}
		slog.Error("me lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
