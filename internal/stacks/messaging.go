package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssns"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssnssubscriptions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/deploy"
	"appinfra/internal/naming"
)

// MessagingStackProps はMessagingStackのプロパティ
type MessagingStackProps struct {
	awscdk.StackProps
	Ctx *deploy.Context
}

// NewMessagingStack はジョブキュー（DLQ付き）と通知トピックのスタックを作成する
func NewMessagingStack(scope constructs.Construct, id string, props *MessagingStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	conv := props.Ctx.Naming()

	// デッドレターキュー（処理失敗メッセージの退避先）
	dlq := awssqs.NewQueue(stack, jsii.String("DeadLetterQueue"), &awssqs.QueueProps{
		QueueName:       jsii.String(mustName(conv.QueueName(naming.QueueDeadLetter))),
		RetentionPeriod: awscdk.Duration_Days(jsii.Number(14)),
	})

	// ジョブキュー
	awssqs.NewQueue(stack, jsii.String("JobsQueue"), &awssqs.QueueProps{
		QueueName:         jsii.String(mustName(conv.QueueName(naming.QueueJobs))),
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(300)),
		DeadLetterQueue: &awssqs.DeadLetterQueue{
			MaxReceiveCount: jsii.Number(3),
			Queue:           dlq,
		},
	})

	// イベントキュー（トピック購読経由でファンアウトを受ける）
	events := awssqs.NewQueue(stack, jsii.String("EventsQueue"), &awssqs.QueueProps{
		QueueName:         jsii.String(mustName(conv.QueueName(naming.QueueEvents))),
		VisibilityTimeout: awscdk.Duration_Seconds(jsii.Number(60)),
	})

	// アラート通知トピック
	alerts := awssns.NewTopic(stack, jsii.String("AlertsTopic"), &awssns.TopicProps{
		TopicName: jsii.String(mustName(conv.TopicName(naming.NotifyAlerts))),
	})
	alerts.AddSubscription(awssnssubscriptions.NewSqsSubscription(events, nil))

	// デプロイイベント通知トピック
	awssns.NewTopic(stack, jsii.String("DeployEventsTopic"), &awssns.TopicProps{
		TopicName: jsii.String(mustName(conv.TopicName(naming.NotifyDeployEvents))),
	})

	return stack
}
