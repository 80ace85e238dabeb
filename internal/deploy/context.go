// Package deploy はデプロイ実行1回分のコンテキストとスタックファクトリー契約を定義する
package deploy

import "appinfra/internal/naming"

// AppMeta はデプロイ対象アプリケーションのメタデータ
type AppMeta struct {
	Name    string
	Version string
}

// Context はデプロイ実行1回分のスコープ情報を保持する
// 呼び出し側が構築して所有し、下流コンポーネントからは読み取り専用
type Context struct {
	Env     string
	Account string
	Region  string
	App     AppMeta
}

// Naming はこのコンテキストに対応する命名規約ビルダーを返す
func (c *Context) Naming() naming.Convention {
	return naming.NewConvention(c.Env, c.App.Name)
}
