package cmd

import (
	"fmt"

	awssdkecs "github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/spf13/cobra"

	"appinfra/internal/aws"
	"appinfra/internal/naming"
	ecssvc "appinfra/internal/service/ecs"
)

// EcsCmd represents the ecs command
var EcsCmd = &cobra.Command{
	Use:   "ecs",
	Short: "デプロイ済みECSサービス操作コマンド",
	Long:  `デプロイ済みアプリのECSサービスを操作するためのコマンド群です。`,
}

var ecsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "アプリのECSサービス状態を表示するコマンド",
	Long: `命名規約からクラスター名・サービス名を導出してECSサービスの状態を表示します。

【使い方】
  ` + AppName + ` ecs status -e dev -a webapp
  ` + AppName + ` ecs status -e dev -a worker`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireEnv(); err != nil {
			return err
		}
		if err := requireApp(); err != nil {
			return err
		}

		conv := naming.NewConvention(envName, appName)

		// webappは公開サービス、それ以外はworkerサービスとして名前を引く
		purpose := naming.AppWorker
		if appName == "webapp" {
			purpose = naming.AppWeb
		}
		serviceName, err := conv.ServiceName(purpose)
		if err != nil {
			return fmt.Errorf("❌ サービス名の導出に失敗: %w", err)
		}

		ecsClient, err := aws.NewClient[*awssdkecs.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("ECSクライアント作成エラー: %w", err)
		}

		status, err := ecssvc.GetServiceStatus(ecsClient, ecssvc.StatusOptions{
			ClusterName: conv.ClusterName(),
			ServiceName: serviceName,
		})
		if err != nil {
			return fmt.Errorf("❌ ECSサービス状態取得でエラー: %w", err)
		}

		ecssvc.ShowServiceStatus(status)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	EcsCmd.AddCommand(ecsStatusCmd)
	RootCmd.AddCommand(EcsCmd)
}
