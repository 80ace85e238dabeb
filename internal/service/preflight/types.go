package preflight

import (
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// ClientSet はpreflight検証で使用するクライアント群
type ClientSet struct {
	CfnClient  *cloudformation.Client
	Ec2Client  *ec2.Client
	LogsClient *cloudwatchlogs.Client
}

// Options はpreflight検証のパラメータを格納する構造体
type Options struct {
	Env string
	// DeepCheck がtrueの場合、エクスポート値が指す実リソースの存在まで確認する
	DeepCheck bool
}
