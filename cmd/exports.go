package cmd

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/spf13/cobra"

	"appinfra/internal/aws"
	cfnsvc "appinfra/internal/service/cfn"
)

var exportsPattern string

// ExportsCmd represents the exports command
var ExportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "クロススタックエクスポート操作コマンド",
	Long:  `CloudFormationのクロススタックエクスポートを操作するためのコマンド群です。`,
}

var exportsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "クロススタックエクスポート一覧を表示するコマンド",
	Long: `リージョン内のクロススタックエクスポート一覧を表示します。

【使い方】
  ` + AppName + ` exports ls                  # 全エクスポートを表示
  ` + AppName + ` exports ls -e dev           # 環境名プレフィックスで絞り込み
  ` + AppName + ` exports ls -F '*-sg-*'      # globパターンで絞り込み`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfnClient, err := aws.NewClient[*cloudformation.Client](awsCtx)
		if err != nil {
			return fmt.Errorf("CloudFormationクライアント作成エラー: %w", err)
		}

		exports, err := cfnsvc.ListExports(cfnClient)
		if err != nil {
			return fmt.Errorf("❌ エクスポート一覧取得でエラー: %w", err)
		}

		// -eと-Fの両方指定時はパターンが優先
		pattern := exportsPattern
		if pattern == "" && envName != "" {
			pattern = envName + "-*"
		}
		exports, err = cfnsvc.FilterExports(exports, pattern)
		if err != nil {
			return fmt.Errorf("❌ %w", err)
		}

		if len(exports) == 0 {
			fmt.Println("エクスポートが見つかりませんでした")
			return nil
		}

		fmt.Printf("クロススタックエクスポート一覧: (全%d件)\n", len(exports))
		for i, e := range exports {
			fmt.Printf("  %3d. %s = %s\n", i+1, e.Name, e.Value)
		}

		return nil
	},
	SilenceUsage: true,
}

func init() {
	exportsLsCmd.Flags().StringVarP(&exportsPattern, "filter", "F", "", "エクスポート名のglobパターン")
	ExportsCmd.AddCommand(exportsLsCmd)
	RootCmd.AddCommand(ExportsCmd)
}
