package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"

	"appinfra/internal/deploy"
	"appinfra/internal/naming"
)

// 社内アプリケーションごとのファクトリーセット登録
// synthドライバーはアプリ名でここからファクトリーを引く

func init() {
	deploy.Register("webapp", []deploy.NamedFactory{
		{Suffix: "service", Factory: deploy.StackFactoryFunc(newWebServiceStack)},
		{Suffix: "storage", Factory: deploy.StackFactoryFunc(newWebStorageStack)},
		{Suffix: "messaging", Factory: deploy.StackFactoryFunc(newAppMessagingStack)},
	})

	deploy.Register("worker", []deploy.NamedFactory{
		{Suffix: "service", Factory: deploy.StackFactoryFunc(newWorkerServiceStack)},
		{Suffix: "storage", Factory: deploy.StackFactoryFunc(newWorkerStorageStack)},
		{Suffix: "messaging", Factory: deploy.StackFactoryFunc(newAppMessagingStack)},
	})
}

// stackProps はコンテキストからStackPropsを組み立てる共通関数
func stackProps(ctx *deploy.Context) awscdk.StackProps {
	return awscdk.StackProps{
		Env: cdkEnv(ctx),
	}
}

func newWebServiceStack(scope constructs.Construct, id string, ctx *deploy.Context) awscdk.Stack {
	return NewServiceStack(scope, id, &ServiceStackProps{
		StackProps:   stackProps(ctx),
		Ctx:          ctx,
		Purpose:      naming.AppWeb,
		PublicFacing: true,
	})
}

func newWorkerServiceStack(scope constructs.Construct, id string, ctx *deploy.Context) awscdk.Stack {
	return NewServiceStack(scope, id, &ServiceStackProps{
		StackProps:   stackProps(ctx),
		Ctx:          ctx,
		Purpose:      naming.AppWorker,
		PublicFacing: false,
	})
}

func newWebStorageStack(scope constructs.Construct, id string, ctx *deploy.Context) awscdk.Stack {
	return NewStorageStack(scope, id, &StorageStackProps{
		StackProps: stackProps(ctx),
		Ctx:        ctx,
		Purposes:   []naming.StoragePurpose{naming.StorageAssets, naming.StorageUploads},
	})
}

func newWorkerStorageStack(scope constructs.Construct, id string, ctx *deploy.Context) awscdk.Stack {
	return NewStorageStack(scope, id, &StorageStackProps{
		StackProps: stackProps(ctx),
		Ctx:        ctx,
		Purposes:   []naming.StoragePurpose{naming.StorageLogs, naming.StorageBackups},
	})
}

func newAppMessagingStack(scope constructs.Construct, id string, ctx *deploy.Context) awscdk.Stack {
	return NewMessagingStack(scope, id, &MessagingStackProps{
		StackProps: stackProps(ctx),
		Ctx:        ctx,
	})
}
