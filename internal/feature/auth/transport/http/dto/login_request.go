// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// loginMessages はバリデーション対象フィールドとワイヤーエラーメッセージの対応表です。
var loginMessages = map[string]string{
	"Email":    "Please enter a valid email address",
	"Password": "Password is required",
}

// Messages はLoginReqのバインドエラーをワイヤーエラー項目に変換します。
func (LoginReq) Messages(err error) []ErrorItem {
	return translate(err, loginMessages)
}
