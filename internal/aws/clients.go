package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewClient はAWS設定を読み込んで型パラメータに応じたサービスクライアントを作成する
// 使用例: cfnClient, err := aws.NewClient[*cloudformation.Client](awsCtx)
func NewClient[T any](ctx Context) (T, error) {
	var zero T

	cfg, err := ctx.GetConfig()
	if err != nil {
		return zero, err
	}

	var client any
	switch any(zero).(type) {
	case *cloudformation.Client:
		client = cloudformation.NewFromConfig(cfg)
	case *ec2.Client:
		client = ec2.NewFromConfig(cfg)
	case *cloudwatchlogs.Client:
		client = cloudwatchlogs.NewFromConfig(cfg)
	case *ecs.Client:
		client = ecs.NewFromConfig(cfg)
	case *s3.Client:
		client = s3.NewFromConfig(cfg)
	case *ecr.Client:
		client = ecr.NewFromConfig(cfg)
	case *sts.Client:
		client = sts.NewFromConfig(cfg)
	default:
		return zero, fmt.Errorf("未対応のクライアント型です: %T", zero)
	}
	return client.(T), nil
}
