package cleanup

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientSet はクリーンアップ処理で使用するクライアント群
type ClientSet struct {
	CfnClient *cloudformation.Client
	S3Client  *s3.Client
	EcrClient *ecr.Client
}

// Options はクリーンアップ処理のパラメータを格納する構造体
type Options struct {
	// StackName は対象アプリスタックのCloudFormationスタック名
	StackName string
}
