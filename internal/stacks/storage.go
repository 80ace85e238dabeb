package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/deploy"
	"appinfra/internal/naming"
)

// StorageStackProps はStorageStackのプロパティ
type StorageStackProps struct {
	awscdk.StackProps
	Ctx *deploy.Context
	// Purposes は作成するバケットの用途一覧
	Purposes []naming.StoragePurpose
}

// NewStorageStack はアプリ用S3バケット群のスタックを作成する
// バケット名はグローバル一意のためアカウントIDを含む命名規約で導出する
func NewStorageStack(scope constructs.Construct, id string, props *StorageStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	ctx := props.Ctx
	conv := ctx.Naming()

	for _, purpose := range props.Purposes {
		token := mustName(purpose.Token())

		// アカウント未解決（環境非依存synth）の場合は自動生成名に任せる
		var bucketName *string
		if ctx.Account != "" {
			bucketName = jsii.String(mustName(conv.BucketName(purpose, ctx.Account)))
		}

		awss3.NewBucket(stack, jsii.String("Bucket-"+token), &awss3.BucketProps{
			BucketName:        bucketName,
			BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
			Encryption:        awss3.BucketEncryption_S3_MANAGED,
			Versioned:         jsii.Bool(purpose == naming.StorageBackups),
			RemovalPolicy:     awscdk.RemovalPolicy_DESTROY,
			AutoDeleteObjects: jsii.Bool(false),
		})
	}

	return stack
}
