package shared

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/google/go-cmp/cmp"

	"appinfra/internal/naming"
)

// countingImport はインポート呼び出しを記録するテスト用インポート機構
// 欠落をシミュレートするキーを指定できる
type countingImport struct {
	calls   map[string]int
	order   []string
	missing string
}

func newCountingImport() *countingImport {
	return &countingImport{calls: map[string]int{}}
}

func (c *countingImport) fn(key string) (*string, error) {
	c.calls[key]++
	c.order = append(c.order, key)

	if c.missing != "" && key == c.missing {
		return nil, &ImportResolutionError{Env: "dev", Key: key}
	}

	// リスト系エクスポートはカンマ区切り3要素の実値形式で返す
	var value string
	switch {
	case strings.Contains(key, "-vpc-azs"):
		value = "ap-northeast-1a,ap-northeast-1c,ap-northeast-1d"
	case strings.Contains(key, "-subnets-"):
		value = fmt.Sprintf("%s-1,%s-2,%s-3", key, key, key)
	default:
		value = "dummy-" + key
	}
	return &value, nil
}

func newTestStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), nil)
}

func TestVpcIsCachedAndImportedOnce(t *testing.T) {
	imports := newCountingImport()
	provider := NewProviderWithImport(newTestStack(), "dev", imports.fn)

	first, err := provider.Vpc()
	if err != nil {
		t.Fatalf("Vpc() エラー: %v", err)
	}
	second, err := provider.Vpc()
	if err != nil {
		t.Fatalf("Vpc() 2回目エラー: %v", err)
	}

	// 2回目は同一ハンドル（参照同値）が返ること
	if first != second {
		t.Error("Vpc() が2回目に別のハンドルを返しました")
	}

	// 各エクスポートキーのインポートは1回ずつであること
	wantCalls := map[string]int{
		"dev-vpc-id":               1,
		"dev-vpc-cidr":             1,
		"dev-vpc-azs":              1,
		"dev-subnets-public-ids":   1,
		"dev-subnets-private-ids":  1,
		"dev-subnets-isolated-ids": 1,
	}
	if diff := cmp.Diff(wantCalls, imports.calls); diff != "" {
		t.Errorf("インポート回数が一致しません (-want +got):\n%s", diff)
	}
}

func TestSecurityGroupsCachedIndependently(t *testing.T) {
	imports := newCountingImport()
	provider := NewProviderWithImport(newTestStack(), "dev", imports.fn)

	alb, err := provider.SecurityGroup(naming.SgAlb)
	if err != nil {
		t.Fatalf("SecurityGroup(alb) エラー: %v", err)
	}
	ecs, err := provider.SecurityGroup(naming.SgEcs)
	if err != nil {
		t.Fatalf("SecurityGroup(ecs) エラー: %v", err)
	}

	// 用途が違えば別ハンドル・別キャッシュエントリーであること
	if alb == ecs {
		t.Error("用途の異なるSGが同一ハンドルになっています")
	}
	if imports.calls["dev-sg-alb-id"] != 1 || imports.calls["dev-sg-ecs-id"] != 1 {
		t.Errorf("SGのインポート回数が不正です: %v", imports.calls)
	}

	// 同一用途の再取得はキャッシュから返り、追加インポートは発生しないこと
	albAgain, err := provider.SecurityGroup(naming.SgAlb)
	if err != nil {
		t.Fatalf("SecurityGroup(alb) 2回目エラー: %v", err)
	}
	if alb != albAgain {
		t.Error("SecurityGroup(alb) が2回目に別のハンドルを返しました")
	}
	if imports.calls["dev-sg-alb-id"] != 1 {
		t.Errorf("キャッシュ済みSGで追加インポートが発生しました: %v", imports.calls)
	}
}

func TestSecurityGroupUnrecognizedPurpose(t *testing.T) {
	provider := NewProviderWithImport(newTestStack(), "dev", newCountingImport().fn)

	var unrecognized *naming.UnrecognizedPurposeError
	_, err := provider.SecurityGroup(naming.SecurityGroupPurpose(99))
	if !errors.As(err, &unrecognized) {
		t.Fatalf("UnrecognizedPurposeError ではないエラーが返りました: %v", err)
	}
}

func TestLogGroupCached(t *testing.T) {
	imports := newCountingImport()
	provider := NewProviderWithImport(newTestStack(), "dev", imports.fn)

	first, err := provider.LogGroup()
	if err != nil {
		t.Fatalf("LogGroup() エラー: %v", err)
	}
	second, err := provider.LogGroup()
	if err != nil {
		t.Fatalf("LogGroup() 2回目エラー: %v", err)
	}
	if first != second {
		t.Error("LogGroup() が2回目に別のハンドルを返しました")
	}
	if imports.calls["dev-log-group-name"] != 1 {
		t.Errorf("ロググループのインポート回数が不正です: %v", imports.calls)
	}
}

func TestValidateSucceedsAndTouchesAccessorsInOrder(t *testing.T) {
	imports := newCountingImport()
	provider := NewProviderWithImport(newTestStack(), "dev", imports.fn)

	if err := provider.Validate(); err != nil {
		t.Fatalf("Validate() エラー: %v", err)
	}

	// 固定順: VPC（6キー）→ ALB SG → ECS SG → RDS SG
	// サブネット系はキャッシュ済みVPCから導出されるため追加インポートなし
	wantOrder := []string{
		"dev-vpc-id",
		"dev-vpc-cidr",
		"dev-vpc-azs",
		"dev-subnets-public-ids",
		"dev-subnets-private-ids",
		"dev-subnets-isolated-ids",
		"dev-sg-alb-id",
		"dev-sg-ecs-id",
		"dev-sg-rds-id",
	}
	if diff := cmp.Diff(wantOrder, imports.order); diff != "" {
		t.Errorf("インポート順序が一致しません (-want +got):\n%s", diff)
	}
}

func TestValidateFailsWhenExportMissing(t *testing.T) {
	imports := newCountingImport()
	imports.missing = "dev-sg-rds-id"
	provider := NewProviderWithImport(newTestStack(), "dev", imports.fn)

	err := provider.Validate()
	if err == nil {
		t.Fatal("エクスポート欠落でValidate()が成功してしまいました")
	}

	var unavailable *SharedResourcesUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("SharedResourcesUnavailableError ではないエラーが返りました: %T", err)
	}
	if unavailable.Env != "dev" {
		t.Errorf("Env = %s, want dev", unavailable.Env)
	}
	if !strings.Contains(err.Error(), "dev") {
		t.Errorf("エラーメッセージに環境名が含まれていません: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "ベーススタック") {
		t.Errorf("エラーメッセージに対処ヒントが含まれていません: %s", err.Error())
	}

	// 原因のImportResolutionErrorまで辿れること
	var importErr *ImportResolutionError
	if !errors.As(err, &importErr) {
		t.Fatalf("ImportResolutionError まで辿れません: %v", err)
	}
	if importErr.Key != "dev-sg-rds-id" {
		t.Errorf("Key = %s, want dev-sg-rds-id", importErr.Key)
	}
}
