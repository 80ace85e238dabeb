// Package stacks はアプリケーションごとのCDKスタックファクトリー群
// 共有リソース（VPC・SG・ロググループ）はsharedプロバイダー経由で参照し、
// リソース名はすべて命名規約（naming.Convention）から導出する
package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecr"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsecs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awselasticloadbalancingv2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/deploy"
	"appinfra/internal/naming"
	"appinfra/internal/shared"
)

// ServiceStackProps はServiceStackのプロパティ
type ServiceStackProps struct {
	awscdk.StackProps
	Ctx *deploy.Context
	// Purpose はサービスの用途（web / api / worker）
	Purpose naming.AppPurpose
	// PublicFacing がtrueの場合は共有ALB SGを付けたALB経由で公開する
	PublicFacing bool
}

// NewServiceStack はECS Fargateサービススタックを作成する
// タスク実行・タスクロール、ECRリポジトリ、（公開サービスの場合）ALBを含む
func NewServiceStack(scope constructs.Construct, id string, props *ServiceStackProps) awscdk.Stack {
	var sprops awscdk.StackProps
	if props != nil {
		sprops = props.StackProps
	}
	stack := awscdk.NewStack(scope, &id, &sprops)

	ctx := props.Ctx
	conv := ctx.Naming()

	// 共有リソースを先行検証（ベーススタック未デプロイを早期に検出）
	provider := shared.NewProvider(stack, ctx.Env)
	if err := provider.Validate(); err != nil {
		panic(err.Error())
	}

	vpc := mustVpc(provider)
	logGroup := mustLogGroup(provider)

	// ECRリポジトリ
	repoName := mustName(conv.RepositoryName(props.Purpose))
	repo := awsecr.NewRepository(stack, jsii.String("Repository"), &awsecr.RepositoryProps{
		RepositoryName: jsii.String(repoName),
		RemovalPolicy:  awscdk.RemovalPolicy_DESTROY,
	})

	// タスク実行ロール（イメージpullとログ出力用のAWS管理ポリシー）
	executionRole := awsiam.NewRole(stack, jsii.String("ExecutionRole"), &awsiam.RoleProps{
		RoleName:  jsii.String(mustName(conv.RoleName(naming.IamTaskExecution))),
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("ecs-tasks.amazonaws.com"), nil),
		ManagedPolicies: &[]awsiam.IManagedPolicy{
			awsiam.ManagedPolicy_FromAwsManagedPolicyName(jsii.String("service-role/AmazonECSTaskExecutionRolePolicy")),
		},
	})

	// タスクロール（アプリ本体の権限。ポリシーは各スタックがGrantで付与する）
	taskRole := awsiam.NewRole(stack, jsii.String("TaskRole"), &awsiam.RoleProps{
		RoleName:  jsii.String(mustName(conv.RoleName(naming.IamTask))),
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("ecs-tasks.amazonaws.com"), nil),
	})

	// タスク定義
	taskDef := awsecs.NewFargateTaskDefinition(stack, jsii.String("TaskDef"), &awsecs.FargateTaskDefinitionProps{
		Family:         jsii.String(mustName(conv.TaskFamily(props.Purpose))),
		Cpu:            jsii.Number(256),
		MemoryLimitMiB: jsii.Number(512),
		ExecutionRole:  executionRole,
		TaskRole:       taskRole,
	})

	container := taskDef.AddContainer(jsii.String("app"), &awsecs.ContainerDefinitionOptions{
		Image: awsecs.ContainerImage_FromEcrRepository(repo, jsii.String("latest")),
		Logging: awsecs.LogDriver_AwsLogs(&awsecs.AwsLogDriverProps{
			LogGroup:     logGroup,
			StreamPrefix: jsii.String(mustName(conv.LogStreamPrefix(props.Purpose))),
		}),
	})
	container.AddPortMappings(&awsecs.PortMapping{
		ContainerPort: jsii.Number(8080),
	})

	// クラスターとサービス（プライベートサブネット × 共有ECS SG）
	cluster := awsecs.NewCluster(stack, jsii.String("Cluster"), &awsecs.ClusterProps{
		Vpc:         vpc,
		ClusterName: jsii.String(conv.ClusterName()),
	})

	ecsSg := mustSg(provider.EcsSecurityGroup)
	privateSubnets := mustSubnets(provider.PrivateSubnets)

	service := awsecs.NewFargateService(stack, jsii.String("Service"), &awsecs.FargateServiceProps{
		Cluster:        cluster,
		TaskDefinition: taskDef,
		ServiceName:    jsii.String(mustName(conv.ServiceName(props.Purpose))),
		DesiredCount:   jsii.Number(1),
		SecurityGroups: &[]awsec2.ISecurityGroup{ecsSg},
		VpcSubnets:     &awsec2.SubnetSelection{Subnets: privateSubnets},
	})

	if props.PublicFacing {
		addLoadBalancer(stack, conv, provider, vpc, service)
	}

	return stack
}

// addLoadBalancer はパブリックサブネットにALBを作成しサービスをぶら下げる
func addLoadBalancer(
	stack awscdk.Stack,
	conv naming.Convention,
	provider *shared.Provider,
	vpc awsec2.IVpc,
	service awsecs.FargateService,
) {
	albSg := mustSg(provider.AlbSecurityGroup)
	publicSubnets := mustSubnets(provider.PublicSubnets)

	alb := awselasticloadbalancingv2.NewApplicationLoadBalancer(stack, jsii.String("Alb"), &awselasticloadbalancingv2.ApplicationLoadBalancerProps{
		Vpc:              vpc,
		InternetFacing:   jsii.Bool(true),
		SecurityGroup:    albSg,
		LoadBalancerName: jsii.String(conv.StackName("alb")),
		VpcSubnets:       &awsec2.SubnetSelection{Subnets: publicSubnets},
	})

	listener := alb.AddListener(jsii.String("Http"), &awselasticloadbalancingv2.BaseApplicationListenerProps{
		Port: jsii.Number(80),
		// インポートした共有SGはイミュータブル扱いのためOpenでのルール追加はしない
		Open: jsii.Bool(false),
	})

	listener.AddTargets(jsii.String("Service"), &awselasticloadbalancingv2.AddApplicationTargetsProps{
		Port: jsii.Number(8080),
		Targets: &[]awselasticloadbalancingv2.IApplicationLoadBalancerTarget{
			service,
		},
	})
}

// 以下はファクトリー内の定型エラー処理
// スタック構築中の失敗はCDKアプリとして続行不能なのでpanicで即座に落とす

func mustName(name string, err error) string {
	if err != nil {
		panic(err.Error())
	}
	return name
}

func mustVpc(p *shared.Provider) awsec2.IVpc {
	vpc, err := p.Vpc()
	if err != nil {
		panic(err.Error())
	}
	return vpc
}

func mustLogGroup(p *shared.Provider) awslogs.ILogGroup {
	lg, err := p.LogGroup()
	if err != nil {
		panic(err.Error())
	}
	return lg
}

func mustSg(get func() (awsec2.ISecurityGroup, error)) awsec2.ISecurityGroup {
	sg, err := get()
	if err != nil {
		panic(err.Error())
	}
	return sg
}

func mustSubnets(get func() (*[]awsec2.ISubnet, error)) *[]awsec2.ISubnet {
	subnets, err := get()
	if err != nil {
		panic(err.Error())
	}
	return subnets
}
