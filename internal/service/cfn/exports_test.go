package cfn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testExports = []Export{
	{Name: "dev-vpc-id", Value: "vpc-123"},
	{Name: "dev-sg-alb-id", Value: "sg-111"},
	{Name: "dev-sg-rds-id", Value: "sg-222"},
	{Name: "prod-vpc-id", Value: "vpc-999"},
}

func TestFilterExports(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"空パターンは全件", "", []string{"dev-vpc-id", "dev-sg-alb-id", "dev-sg-rds-id", "prod-vpc-id"}},
		{"環境プレフィックス", "dev-*", []string{"dev-vpc-id", "dev-sg-alb-id", "dev-sg-rds-id"}},
		{"中間ワイルドカード", "*-sg-*", []string{"dev-sg-alb-id", "dev-sg-rds-id"}},
		{"一致なし", "stg-*", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := FilterExports(testExports, tt.pattern)
			if err != nil {
				t.Fatalf("FilterExports() エラー: %v", err)
			}
			got := []string{}
			for _, e := range matched {
				got = append(got, e.Name)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterExports(%s) が一致しません (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestFilterExportsInvalidPattern(t *testing.T) {
	if _, err := FilterExports(testExports, "[invalid"); err == nil {
		t.Fatal("不正なパターンでエラーが返りませんでした")
	}
}

func TestExportMap(t *testing.T) {
	want := map[string]string{
		"dev-vpc-id":    "vpc-123",
		"dev-sg-alb-id": "sg-111",
		"dev-sg-rds-id": "sg-222",
		"prod-vpc-id":   "vpc-999",
	}
	if diff := cmp.Diff(want, ExportMap(testExports)); diff != "" {
		t.Errorf("ExportMap() が一致しません (-want +got):\n%s", diff)
	}
}
