package stacks_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/deploy"
	"appinfra/internal/naming"
	"appinfra/internal/stacks"
)

func testContext() *deploy.Context {
	return &deploy.Context{
		Env:     "test",
		Account: "123456789012",
		Region:  "ap-northeast-1",
		App:     deploy.AppMeta{Name: "webapp", Version: "test"},
	}
}

func TestServiceStackSynthesizes(t *testing.T) {
	app := awscdk.NewApp(nil)
	ctx := testContext()

	stack := stacks.NewServiceStack(app, "TestServiceStack", &stacks.ServiceStackProps{
		StackProps: awscdk.StackProps{
			Env: &awscdk.Environment{
				Account: jsii.String(ctx.Account),
				Region:  jsii.String(ctx.Region),
			},
		},
		Ctx:          ctx,
		Purpose:      naming.AppWeb,
		PublicFacing: true,
	})
	if stack == nil {
		t.Fatal("スタックがnilです")
	}

	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::ECS::Cluster"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ECS::Service"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ECR::Repository"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::ElasticLoadBalancingV2::LoadBalancer"), jsii.Number(1))
	// タスク実行ロールとタスクロールの2つ
	template.ResourceCountIs(jsii.String("AWS::IAM::Role"), jsii.Number(2))

	// 名前が命名規約どおりであること
	template.HasResourceProperties(jsii.String("AWS::ECS::Cluster"), map[string]any{
		"ClusterName": "test-webapp-cluster",
	})
	template.HasResourceProperties(jsii.String("AWS::ECS::Service"), map[string]any{
		"ServiceName": "test-webapp-web-service",
	})
}

func TestWorkerServiceStackHasNoLoadBalancer(t *testing.T) {
	app := awscdk.NewApp(nil)
	ctx := testContext()
	ctx.App.Name = "worker"

	stack := stacks.NewServiceStack(app, "TestWorkerStack", &stacks.ServiceStackProps{
		Ctx:          ctx,
		Purpose:      naming.AppWorker,
		PublicFacing: false,
	})

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::ElasticLoadBalancingV2::LoadBalancer"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::ECS::Service"), jsii.Number(1))
}

func TestStorageStackSynthesizes(t *testing.T) {
	app := awscdk.NewApp(nil)
	ctx := testContext()

	stack := stacks.NewStorageStack(app, "TestStorageStack", &stacks.StorageStackProps{
		Ctx:      ctx,
		Purposes: []naming.StoragePurpose{naming.StorageAssets, naming.StorageUploads},
	})

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(2))
	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]any{
		"BucketName": "test-webapp-assets-bucket-123456789012",
	})
}

func TestMessagingStackSynthesizes(t *testing.T) {
	app := awscdk.NewApp(nil)

	stack := stacks.NewMessagingStack(app, "TestMessagingStack", &stacks.MessagingStackProps{
		Ctx: testContext(),
	})

	template := assertions.Template_FromStack(stack, nil)
	// jobs / dead-letter / events の3キュー
	template.ResourceCountIs(jsii.String("AWS::SQS::Queue"), jsii.Number(3))
	// alerts / deploy-events の2トピック
	template.ResourceCountIs(jsii.String("AWS::SNS::Topic"), jsii.Number(2))
	template.ResourceCountIs(jsii.String("AWS::SNS::Subscription"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::SQS::Queue"), map[string]any{
		"QueueName": "test-webapp-jobs-queue",
	})
}

func TestRegisteredAppFactories(t *testing.T) {
	// 登録済みアプリのファクトリーセットが一式そろっていること
	for _, appName := range []string{"webapp", "worker"} {
		factories, err := deploy.Lookup(appName)
		if err != nil {
			t.Fatalf("Lookup(%s) エラー: %v", appName, err)
		}
		if len(factories) != 3 {
			t.Errorf("Lookup(%s) のファクトリー数 = %d, want 3", appName, len(factories))
		}
	}
}
