// Package preflight はcdk deploy前の共有リソース事前検証を行う
// ベーススタックが公開しているはずのエクスポートを実環境に問い合わせ、
// 欠落があればオペレーター向けの対処ヒント付きで失敗させる
package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"

	cfnsvc "appinfra/internal/service/cfn"
	"appinfra/internal/shared"
)

// ValidateEnvironment は環境に必要な全エクスポートの存在を検証する
// 1つでも欠落があればSharedResourcesUnavailableErrorを返す（自動リトライはしない）
func ValidateEnvironment(clients ClientSet, opts Options) error {
	fmt.Printf("🔍 環境 '%s' の共有リソースを検証します...\n", opts.Env)

	exports, err := cfnsvc.ListExports(clients.CfnClient)
	if err != nil {
		return &shared.SharedResourcesUnavailableError{Env: opts.Env, Err: err}
	}
	exportMap := cfnsvc.ExportMap(exports)

	var failures []error
	for _, key := range shared.RequiredExportKeys(opts.Env) {
		value, ok := exportMap[key]
		if !ok {
			fmt.Printf("  ❌ %s\n", key)
			failures = append(failures, &shared.ImportResolutionError{Env: opts.Env, Key: key})
			continue
		}
		fmt.Printf("  ✅ %s = %s\n", key, value)
	}

	if opts.DeepCheck && len(failures) == 0 {
		if err := validateResources(clients, opts.Env, exportMap); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return &shared.SharedResourcesUnavailableError{Env: opts.Env, Err: errors.Join(failures...)}
	}

	fmt.Printf("🎉 環境 '%s' の共有リソースはすべて利用可能です\n", opts.Env)
	return nil
}

// validateResources はエクスポート値が指す実リソースの存在を確認する
func validateResources(clients ClientSet, env string, exportMap map[string]string) error {
	// セキュリティグループの存在確認
	sgIds := []string{}
	for _, key := range shared.RequiredExportKeys(env) {
		if strings.Contains(key, "-sg-") {
			sgIds = append(sgIds, exportMap[key])
		}
	}
	if len(sgIds) > 0 {
		_, err := clients.Ec2Client.DescribeSecurityGroups(context.Background(), &ec2.DescribeSecurityGroupsInput{
			GroupIds: sgIds,
		})
		if err != nil {
			return fmt.Errorf("エクスポートされたセキュリティグループの確認に失敗: %w", err)
		}
		fmt.Printf("  ✅ セキュリティグループ %d件の実在を確認\n", len(sgIds))
	}

	// 共有ロググループの存在確認
	logGroupName := exportMap[shared.LogGroupNameKey(env)]
	resp, err := clients.LogsClient.DescribeLogGroups(context.Background(), &cloudwatchlogs.DescribeLogGroupsInput{
		LogGroupNamePrefix: &logGroupName,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("ロググループの確認に失敗 (%s): %w", apiErr.ErrorCode(), err)
		}
		return fmt.Errorf("ロググループの確認に失敗: %w", err)
	}
	for _, lg := range resp.LogGroups {
		if lg.LogGroupName != nil && *lg.LogGroupName == logGroupName {
			fmt.Printf("  ✅ ロググループ '%s' の実在を確認\n", logGroupName)
			return nil
		}
	}
	return &shared.ImportResolutionError{Env: env, Key: shared.LogGroupNameKey(env)}
}
