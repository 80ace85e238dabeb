package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"appinfra/internal/aws"
)

// AppName はCLIの名前（ヘルプ表示とリソース名プレフィックスに使用）
const AppName = "appinfra"

var region string
var profile string
var envName string
var appName string

var awsCtx aws.Context

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "社内アプリ向けCDKインフラの生成・検証ツール",
	Long: `社内アプリケーションのインフラスタック（ECS / IAM / S3 / SQS / SNS）を
環境共有のベースインフラ（VPC・SG・ロググループ）の上に生成するCDKアプリと、
デプロイ前後の検証・後片付けコマンド群です。

使用例:
  ` + AppName + ` preflight -e dev -P my-profile   # デプロイ前にエクスポートを検証
  ` + AppName + ` synth -e dev -a webapp           # CDKアプリをsynth（cdk経由で起動）
  ` + AppName + ` exports ls -e dev                # 環境のエクスポート一覧を表示`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "ap-northeast-1", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&envName, "env", "e", "", "対象環境名（dev / stg / prod など）")
	RootCmd.PersistentFlags().StringVarP(&appName, "app", "a", "", "対象アプリケーション名")

	// コマンド実行前に共通でプロファイルチェックとawsCtx構築を行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプ・バージョン・synthはAWS認証不要で動作できる
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}
		awsCtx = aws.Context{Profile: profile, Region: region}
		return nil
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// synthはCDK CLI側の認証で動くためプロファイル未指定を許容する
		if cmd.Name() == "synth" {
			return nil
		}
		cmd.SilenceUsage = true // エラー時のUsage表示を抑制
		return errors.New("❌ エラー: プロファイルが指定されていません。-Pオプションまたは AWS_PROFILE 環境変数を指定してください")
	}
	profile = envProfile
	cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	return nil
}

// requireEnv は-eフラグの指定を必須にする共通チェック
func requireEnv() error {
	if envName == "" {
		return errors.New("❌ エラー: 環境名 (-e) を指定してください")
	}
	return nil
}

// requireApp は-aフラグの指定を必須にする共通チェック
func requireApp() error {
	if appName == "" {
		return errors.New("❌ エラー: アプリ名 (-a) を指定してください")
	}
	return nil
}
