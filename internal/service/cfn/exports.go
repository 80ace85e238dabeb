package cfn

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/gobwas/glob"
)

// ListExports はリージョン内の全クロススタックエクスポートを取得する
func ListExports(cfnClient *cloudformation.Client) ([]Export, error) {
	exports := []Export{}

	paginator := cloudformation.NewListExportsPaginator(cfnClient, &cloudformation.ListExportsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, fmt.Errorf("エクスポート一覧の取得に失敗: %w", err)
		}
		for _, e := range output.Exports {
			if e.Name == nil || e.Value == nil {
				continue
			}
			export := Export{Name: *e.Name, Value: *e.Value}
			if e.ExportingStackId != nil {
				export.ExportingStack = *e.ExportingStackId
			}
			exports = append(exports, export)
		}
	}

	return exports, nil
}

// FilterExports はglobパターンに一致するエクスポートのみを返す
// パターンが空の場合は全件を返す
func FilterExports(exports []Export, pattern string) ([]Export, error) {
	if pattern == "" {
		return exports, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("パターン '%s' の解析に失敗: %w", pattern, err)
	}

	matched := []Export{}
	for _, e := range exports {
		if g.Match(e.Name) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// ExportMap はエクスポート一覧を名前→値のマップに変換する
func ExportMap(exports []Export) map[string]string {
	m := make(map[string]string, len(exports))
	for _, e := range exports {
		m[e.Name] = e.Value
	}
	return m
}

// GetStackResources はスタックからリソース一覧を取得する関数
func GetStackResources(cfnClient *cloudformation.Client, stackName string) ([]StackResource, error) {
	resp, err := cfnClient.DescribeStackResources(context.Background(), &cloudformation.DescribeStackResourcesInput{
		StackName: &stackName,
	})
	if err != nil {
		return nil, fmt.Errorf("スタック '%s' のリソース取得に失敗: %w", stackName, err)
	}

	resources := []StackResource{}
	for _, r := range resp.StackResources {
		if r.PhysicalResourceId == nil || r.LogicalResourceId == nil || r.ResourceType == nil {
			continue
		}
		resources = append(resources, StackResource{
			LogicalId:    *r.LogicalResourceId,
			PhysicalId:   *r.PhysicalResourceId,
			ResourceType: *r.ResourceType,
		})
	}
	return resources, nil
}
