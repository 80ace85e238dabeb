package cmd

import (
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/spf13/cobra"

	"appinfra/internal/deploy"
	_ "appinfra/internal/stacks" // アプリファクトリーの登録
)

// synthCmd represents the synth command
// cdk.jsonの "app" からCDK CLI経由で起動されるデプロイドライバー
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "CDKアプリを構築してCloudFormationテンプレートをsynthする",
	Long: `デプロイコンテキスト（環境・アプリ）を組み立て、アプリに登録された
スタックファクトリーを順に呼び出してCDKアプリをsynthします。

環境・アプリは-e/-aフラグか、cdk -c env=dev -c app=webapp のように
CDKコンテキスト経由で指定します。

例:
  cdk deploy --all -c env=dev -c app=webapp
  ` + AppName + ` synth -e dev -a webapp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return synthApp()
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(synthCmd)
}

func synthApp() error {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	// フラグ未指定の場合はCDKコンテキストから取得
	env := envName
	if env == "" {
		env = contextString(app, "env")
	}
	application := appName
	if application == "" {
		application = contextString(app, "app")
	}
	if env == "" {
		return fmt.Errorf("❌ エラー: 環境名を指定してください（-e または -c env=...）")
	}
	if application == "" {
		return fmt.Errorf("❌ エラー: アプリ名を指定してください（-a または -c app=...。登録済み: %v）", deploy.RegisteredApps())
	}

	factories, err := deploy.Lookup(application)
	if err != nil {
		return fmt.Errorf("❌ %w", err)
	}

	ctx := &deploy.Context{
		Env:     env,
		Account: os.Getenv("CDK_DEFAULT_ACCOUNT"),
		Region:  resolveRegion(),
		App: deploy.AppMeta{
			Name:    application,
			Version: Version,
		},
	}

	fmt.Printf("🔄 環境 '%s' × アプリ '%s' のスタックを構築します...\n", ctx.Env, ctx.App.Name)

	conv := ctx.Naming()
	for _, f := range factories {
		id := conv.StackName(f.Suffix)
		f.Factory.CreateStack(app, id, ctx)
		fmt.Printf("  ✅ %s\n", id)
	}

	app.Synth(nil)
	return nil
}

// contextString はCDKコンテキストから文字列値を取得する
func contextString(app awscdk.App, key string) string {
	if v := app.Node().TryGetContext(jsii.String(key)); v != nil {
		if s, ok := v.(*string); ok && s != nil {
			return *s
		}
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// resolveRegion はデプロイ先リージョンを決定する
// CDK CLI実行時はCDK_DEFAULT_REGIONが優先される
func resolveRegion() string {
	if r := os.Getenv("CDK_DEFAULT_REGION"); r != "" {
		return r
	}
	return region
}
