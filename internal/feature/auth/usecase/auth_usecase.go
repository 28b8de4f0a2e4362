// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auth_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// hashCost はbcryptのコストファクターです。登録ごとに新しいソルトが生成されます。
	hashCost = bcrypt.DefaultCost
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer は署名済みトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// GenerateToken は指定されたユーザーIDに紐づく署名済みトークンを生成します。
	GenerateToken(userID uint) (string, error)
}

// AvatarFunc はメールアドレスからアバターURLを導出する純粋関数です。
// ネットワークにもストアにも依存しません。
type AvatarFunc func(email string) string

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	avatar AvatarFunc
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, avatar AvatarFunc) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		avatar: avatar,
	}
}

// normalizeEmail はメールアドレスを正規化します。
// ユニークインデックスを実質的に大文字小文字非区別にするため、保存・検索の前に必ず適用します。
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegisterInput は登録入力がドメイン要件を満たしているかチェックします。
// トランスポート層のバリデーションを通過した入力に対する最終防衛線です。
func validateRegisterInput(name, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、署名済みトークンを返します。
// メール重複の事前チェックはユーザー向けエラーのためのもので、
// 同時登録のレースはストレージ層のユニーク制約が解決します。
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := validateRegisterInput(name, password); err != nil {
		return "", err
	}
	email = normalizeEmail(email)

	// 事前チェック: 既存メールならbcryptコストを払わずに失敗させる
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Avatar:   u.avatar(email),
	}
	// レースに負けた場合もここでErrEmailAlreadyExistsが返る（ユニーク制約）
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	// ユーザー未検出時のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、同一の汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, nil
}

// CurrentUser はトークンに紐づくユーザーを取得します。
// パスワードハッシュはストアの信頼境界を越えないよう、返却前にクリアされます。
func (u *authUsecase) CurrentUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := *user
	sanitized.Password = ""
	return &sanitized, nil
}
