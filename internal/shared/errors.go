package shared

import "fmt"

// ImportResolutionError は期待したクロススタックエクスポートを解決できなかったことを表すエラー
// ベースインフラの未デプロイ・設定ミスを示すため自動リトライはしない
type ImportResolutionError struct {
	Env string
	Key string
}

func (e *ImportResolutionError) Error() string {
	return fmt.Sprintf("環境 '%s' のエクスポート '%s' を解決できませんでした", e.Env, e.Key)
}

// SharedResourcesUnavailableError は共有リソースの事前検証が失敗したことを表すエラー
// 常にオペレーター向けの対処ヒント付きで表面化させる（握りつぶし禁止）
type SharedResourcesUnavailableError struct {
	Env string
	Err error
}

func (e *SharedResourcesUnavailableError) Error() string {
	return fmt.Sprintf("環境 '%s' の共有リソースが利用できません。先にベーススタックをデプロイしてください: %v", e.Env, e.Err)
}

func (e *SharedResourcesUnavailableError) Unwrap() error {
	return e.Err
}
