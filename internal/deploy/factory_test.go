package deploy

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
)

func nopFactory() StackFactory {
	return StackFactoryFunc(func(scope constructs.Construct, id string, ctx *Context) awscdk.Stack {
		return nil
	})
}

func TestRegisterAndLookup(t *testing.T) {
	Register("test-app", []NamedFactory{
		{Suffix: "service", Factory: nopFactory()},
		{Suffix: "storage", Factory: nopFactory()},
	})

	factories, err := Lookup("test-app")
	if err != nil {
		t.Fatalf("Lookup() エラー: %v", err)
	}
	if len(factories) != 2 {
		t.Fatalf("ファクトリー数 = %d, want 2", len(factories))
	}
	if factories[0].Suffix != "service" || factories[1].Suffix != "storage" {
		t.Errorf("ファクトリーの順序が登録順と一致しません: %+v", factories)
	}
}

func TestLookupUnknownApp(t *testing.T) {
	if _, err := Lookup("no-such-app"); err == nil {
		t.Fatal("未登録アプリでエラーが返りませんでした")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("dup-app", []NamedFactory{{Suffix: "service", Factory: nopFactory()}})

	defer func() {
		if recover() == nil {
			t.Error("二重登録でpanicしませんでした")
		}
	}()
	Register("dup-app", []NamedFactory{{Suffix: "service", Factory: nopFactory()}})
}

func TestContextNaming(t *testing.T) {
	ctx := &Context{
		Env:     "dev",
		Account: "123456789012",
		Region:  "ap-northeast-1",
		App:     AppMeta{Name: "webapp", Version: "1.0.0"},
	}

	conv := ctx.Naming()
	if got := conv.ClusterName(); got != "dev-webapp-cluster" {
		t.Errorf("ClusterName() = %s, want dev-webapp-cluster", got)
	}
}
