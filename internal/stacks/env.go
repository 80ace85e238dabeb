package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/deploy"
)

// cdkEnv はデプロイコンテキストからCDKのデプロイ先環境を決定する
// アカウント・リージョン未指定の場合は環境非依存スタックとしてsynthする
func cdkEnv(ctx *deploy.Context) *awscdk.Environment {
	if ctx.Account == "" || ctx.Region == "" {
		return nil
	}
	return &awscdk.Environment{
		Account: jsii.String(ctx.Account),
		Region:  jsii.String(ctx.Region),
	}
}
