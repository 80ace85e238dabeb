package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/spf13/cobra"

	"appinfra/internal/aws"
	"appinfra/internal/service/preflight"
)

var deepCheck bool

// preflightCmd represents the preflight command
var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "デプロイ前に環境共有リソースのエクスポートを検証するコマンド",
	Long: `cdk deploy前の事前検証を行います。対象環境のベーススタックが公開している
はずのクロススタックエクスポート（VPC・サブネット・SG・ロググループ）を
実環境に問い合わせ、欠落があれば対処ヒント付きで失敗します。

【使い方】
  ` + AppName + ` preflight -e dev -P my-profile
  ` + AppName + ` preflight -e dev --deep   # エクスポート値が指す実リソースまで確認

終了コードが0以外の場合はベーススタックを先にデプロイしてください。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEnv(); err != nil {
			return err
		}

		fmt.Printf("Profile: %s\n", awsCtx.Profile)
		fmt.Printf("Region: %s\n", awsCtx.Region)

		// 実行主体の確認（どのアカウントを見ているかを明示する）
		stsClient, err := aws.NewClient[*sts.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("STSクライアント作成エラー: %w", err)
		}
		identity, err := stsClient.GetCallerIdentity(context.Background(), &sts.GetCallerIdentityInput{})
		if err != nil {
			return fmt.Errorf("呼び出し元アカウントの確認に失敗: %w", err)
		}
		fmt.Printf("Account: %s\n", *identity.Account)

		cfnClient, err := aws.NewClient[*cloudformation.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("CloudFormationクライアント作成エラー: %w", err)
		}
		ec2Client, err := aws.NewClient[*ec2.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("EC2クライアント作成エラー: %w", err)
		}
		logsClient, err := aws.NewClient[*cloudwatchlogs.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("CloudWatch Logsクライアント作成エラー: %w", err)
		}

		return preflight.ValidateEnvironment(preflight.ClientSet{
			CfnClient:  cfnClient,
			Ec2Client:  ec2Client,
			LogsClient: logsClient,
		}, preflight.Options{
			Env:       envName,
			DeepCheck: deepCheck,
		})
	},
	SilenceUsage: true,
}

func init() {
	preflightCmd.Flags().BoolVar(&deepCheck, "deep", false, "エクスポート値が指す実リソースの存在まで確認する")
	RootCmd.AddCommand(preflightCmd)
}
