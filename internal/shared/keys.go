package shared

import (
	"fmt"

	"appinfra/internal/naming"
)

// クロススタックエクスポートキーの組み立て関数群
// キー形式 `{環境名}-{リソース修飾子}[-id|-name]` はベーススタック側が
// 公開するエクスポート名とビット単位で一致する必要がある（契約境界）

// VpcIdKey はVPC IDのエクスポートキーを返す
func VpcIdKey(env string) string {
	return fmt.Sprintf("%s-vpc-id", env)
}

// VpcCidrKey はVPCのCIDRブロックのエクスポートキーを返す
func VpcCidrKey(env string) string {
	return fmt.Sprintf("%s-vpc-cidr", env)
}

// VpcAzsKey はアベイラビリティゾーン一覧（カンマ区切り）のエクスポートキーを返す
func VpcAzsKey(env string) string {
	return fmt.Sprintf("%s-vpc-azs", env)
}

// PublicSubnetIdsKey はパブリックサブネットID一覧のエクスポートキーを返す
func PublicSubnetIdsKey(env string) string {
	return fmt.Sprintf("%s-subnets-public-ids", env)
}

// PrivateSubnetIdsKey はプライベートサブネットID一覧のエクスポートキーを返す
func PrivateSubnetIdsKey(env string) string {
	return fmt.Sprintf("%s-subnets-private-ids", env)
}

// IsolatedSubnetIdsKey はアイソレートサブネットID一覧のエクスポートキーを返す
func IsolatedSubnetIdsKey(env string) string {
	return fmt.Sprintf("%s-subnets-isolated-ids", env)
}

// SecurityGroupKey は用途別セキュリティグループIDのエクスポートキーを返す
// 例: 環境 "dev" × 用途 rds → "dev-sg-rds-id"
func SecurityGroupKey(env string, p naming.SecurityGroupPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-sg-%s-id", env, token), nil
}

// LogGroupNameKey は共有ロググループ名のエクスポートキーを返す
func LogGroupNameKey(env string) string {
	return fmt.Sprintf("%s-log-group-name", env)
}

// RequiredExportKeys は環境に必要な全エクスポートキーを返す
// preflightコマンドがデプロイ前検証に使用する
func RequiredExportKeys(env string) []string {
	keys := []string{
		VpcIdKey(env),
		VpcCidrKey(env),
		VpcAzsKey(env),
		PublicSubnetIdsKey(env),
		PrivateSubnetIdsKey(env),
		IsolatedSubnetIdsKey(env),
		LogGroupNameKey(env),
	}
	for _, p := range []naming.SecurityGroupPurpose{naming.SgAlb, naming.SgEcs, naming.SgRds, naming.SgBastion} {
		// 閉じた列挙集合を列挙しているのでTokenは失敗しない
		key, _ := SecurityGroupKey(env, p)
		keys = append(keys, key)
	}
	return keys
}
