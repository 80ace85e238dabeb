package deploy

import (
	"fmt"
	"sort"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

// StackFactory はデプロイコンテキストからスタック1つを生成する能力契約
// 実装側には環境・命名・共有リソース解決済みのコンテキストが渡される
type StackFactory interface {
	CreateStack(scope constructs.Construct, id string, ctx *Context) awscdk.Stack
}

// StackFactoryFunc は関数をStackFactoryとして使うためのアダプター
type StackFactoryFunc func(scope constructs.Construct, id string, ctx *Context) awscdk.Stack

func (f StackFactoryFunc) CreateStack(scope constructs.Construct, id string, ctx *Context) awscdk.Stack {
	return f(scope, id, ctx)
}

// NamedFactory はスタック名サフィックスとファクトリーの組
type NamedFactory struct {
	Suffix  string
	Factory StackFactory
}

// registry はアプリ名 → ファクトリーセットの対応表
var registry = map[string][]NamedFactory{}

// Register はアプリケーションのファクトリーセットを登録する
// 同名アプリの二重登録はプログラミングエラーなのでpanicにする
func Register(app string, factories []NamedFactory) {
	if _, ok := registry[app]; ok {
		panic(fmt.Sprintf("deploy: アプリ '%s' は既に登録されています", app))
	}
	registry[app] = factories
}

// Lookup はアプリ名に対応するファクトリーセットを返す
func Lookup(app string) ([]NamedFactory, error) {
	factories, ok := registry[app]
	if !ok {
		return nil, fmt.Errorf("未登録のアプリです: '%s'（登録済み: %v）", app, RegisteredApps())
	}
	return factories, nil
}

// RegisteredApps は登録済みアプリ名の一覧をソート順で返す
func RegisteredApps() []string {
	apps := make([]string, 0, len(registry))
	for name := range registry {
		apps = append(apps, name)
	}
	sort.Strings(apps)
	return apps
}
