package cmd

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"appinfra/internal/aws"
	"appinfra/internal/naming"
	cleanupsvc "appinfra/internal/service/cleanup"
)

var cleanupStackSuffix string

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "cdk destroy前にアプリ所有のS3バケット・ECRリポジトリを空にするコマンド",
	Long: `アプリスタック内のS3バケットとECRリポジトリの中身を空にします。
中身が残ったままのリソースが原因でcdk destroyが失敗するのを防ぎます。
リソース自体は削除しません。

【使い方】
  ` + AppName + ` cleanup -e dev -a webapp                # serviceスタックが対象
  ` + AppName + ` cleanup -e dev -a webapp -s storage     # storageスタックが対象`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEnv(); err != nil {
			return err
		}
		if err := requireApp(); err != nil {
			return err
		}

		stackName := naming.NewConvention(envName, appName).StackName(cleanupStackSuffix)

		fmt.Printf("Profile: %s\n", awsCtx.Profile)
		fmt.Printf("Region: %s\n", awsCtx.Region)
		fmt.Printf("Stack: %s\n", stackName)

		cfnClient, err := aws.NewClient[*cloudformation.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("CloudFormationクライアント作成エラー: %w", err)
		}
		s3Client, err := aws.NewClient[*s3.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("S3クライアント作成エラー: %w", err)
		}
		ecrClient, err := aws.NewClient[*ecr.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("ECRクライアント作成エラー: %w", err)
		}

		return cleanupsvc.EmptyStackResources(cleanupsvc.ClientSet{
			CfnClient: cfnClient,
			S3Client:  s3Client,
			EcrClient: ecrClient,
		}, cleanupsvc.Options{
			StackName: stackName,
		})
	},
	SilenceUsage: true,
}

func init() {
	cleanupCmd.Flags().StringVarP(&cleanupStackSuffix, "stack-suffix", "s", "service", "対象スタックのサフィックス（service / storage / messaging）")
	RootCmd.AddCommand(cleanupCmd)
}
