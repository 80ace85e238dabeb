// Package shared は別途デプロイ済みのベーススタックが公開する環境共有リソース
// （VPC・サブネット・セキュリティグループ・ロググループ）への参照を提供する。
// リソースはこのパッケージでは作成せず、クロススタックエクスポート経由で
// 参照のみ行う。解決済みハンドルはプロバイダー内にメモ化され、同一キーの
// インポートはプロバイダーごとに最大1回しか発生しない
package shared

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"appinfra/internal/naming"
)

// ベーススタックは各サブネット層を3AZ分エクスポートする
const exportedAzCount = 3

// キャッシュキー定数
// リソース種別間で衝突しないよう固定プレフィックスを持つ
const (
	cacheKeyVpc      = "vpc"
	cacheKeySgPrefix = "sg-"
	cacheKeyLogGroup = "log-group"
)

// ImportFunc はエクスポートキーを値に解決するインポート機構
// デフォルトはCloudFormationのFn::ImportValueに委譲する。テストや
// デプロイ前検証では実際のエクスポート一覧を参照する実装に差し替える
type ImportFunc func(key string) (*string, error)

// Provider は1デプロイ実行分の共有リソースキャッシュを所有する
// シングルトンではなく、スタックごとに明示的に構築して使い捨てる。
// 同一実行内に並行書き込みは存在しないためロックは持たない
type Provider struct {
	scope       constructs.Construct
	env         string
	importValue ImportFunc
	cache       map[string]any
}

// NewProvider はFn::ImportValueベースのプロバイダーを作成する
func NewProvider(scope constructs.Construct, env string) *Provider {
	return NewProviderWithImport(scope, env, func(key string) (*string, error) {
		// Fn::ImportValueはsynth時には失敗しない。エクスポート欠落は
		// デプロイ時のCloudFormation側検証かpreflightコマンドで検出する
		return awscdk.Fn_ImportValue(jsii.String(key)), nil
	})
}

// NewProviderWithImport はインポート機構を差し替えてプロバイダーを作成する
func NewProviderWithImport(scope constructs.Construct, env string, importValue ImportFunc) *Provider {
	return &Provider{
		scope:       scope,
		env:         env,
		importValue: importValue,
		cache:       make(map[string]any),
	}
}

// Env はプロバイダーが対象とする環境名を返す
func (p *Provider) Env() string {
	return p.env
}

// importList はカンマ区切りでエクスポートされた値をリストに展開する
func (p *Provider) importList(key string) (*[]*string, error) {
	value, err := p.importValue(key)
	if err != nil {
		return nil, err
	}
	return awscdk.Fn_Split(jsii.String(","), value, jsii.Number(exportedAzCount)), nil
}

// Vpc は共有VPCの複合ハンドル（ID・CIDR・AZ・3種のサブネットID一覧）を返す
// 初回のみエクスポートを解決し、以降は同一ハンドルを返す
func (p *Provider) Vpc() (awsec2.IVpc, error) {
	if v, ok := p.cache[cacheKeyVpc]; ok {
		return v.(awsec2.IVpc), nil
	}

	vpcId, err := p.importValue(VpcIdKey(p.env))
	if err != nil {
		return nil, err
	}
	vpcCidr, err := p.importValue(VpcCidrKey(p.env))
	if err != nil {
		return nil, err
	}
	azsValue, err := p.importValue(VpcAzsKey(p.env))
	if err != nil {
		return nil, err
	}
	publicIds, err := p.importList(PublicSubnetIdsKey(p.env))
	if err != nil {
		return nil, err
	}
	privateIds, err := p.importList(PrivateSubnetIdsKey(p.env))
	if err != nil {
		return nil, err
	}
	isolatedIds, err := p.importList(IsolatedSubnetIdsKey(p.env))
	if err != nil {
		return nil, err
	}

	vpc := awsec2.Vpc_FromVpcAttributes(p.scope, jsii.String("SharedVpc"), &awsec2.VpcAttributes{
		VpcId:             vpcId,
		VpcCidrBlock:      vpcCidr,
		AvailabilityZones: awscdk.Fn_Split(jsii.String(","), azsValue, jsii.Number(exportedAzCount)),
		PublicSubnetIds:   publicIds,
		PrivateSubnetIds:  privateIds,
		IsolatedSubnetIds: isolatedIds,
	})
	p.cache[cacheKeyVpc] = vpc
	return vpc, nil
}

// SecurityGroup は用途別の共有セキュリティグループハンドルを返す
// キャッシュキーに用途トークンを含むため、用途ごとに独立してキャッシュされる
func (p *Provider) SecurityGroup(purpose naming.SecurityGroupPurpose) (awsec2.ISecurityGroup, error) {
	token, err := purpose.Token()
	if err != nil {
		return nil, err
	}
	cacheKey := cacheKeySgPrefix + token
	if v, ok := p.cache[cacheKey]; ok {
		return v.(awsec2.ISecurityGroup), nil
	}

	exportKey, err := SecurityGroupKey(p.env, purpose)
	if err != nil {
		return nil, err
	}
	sgId, err := p.importValue(exportKey)
	if err != nil {
		return nil, err
	}
	sg := awsec2.SecurityGroup_FromSecurityGroupId(
		p.scope,
		jsii.String(fmt.Sprintf("SharedSg-%s", token)),
		sgId,
		&awsec2.SecurityGroupImportOptions{Mutable: jsii.Bool(false)},
	)
	p.cache[cacheKey] = sg
	return sg, nil
}

// AlbSecurityGroup はALB用共有セキュリティグループを返す
func (p *Provider) AlbSecurityGroup() (awsec2.ISecurityGroup, error) {
	return p.SecurityGroup(naming.SgAlb)
}

// EcsSecurityGroup はECSサービス用共有セキュリティグループを返す
func (p *Provider) EcsSecurityGroup() (awsec2.ISecurityGroup, error) {
	return p.SecurityGroup(naming.SgEcs)
}

// RdsSecurityGroup はRDS用共有セキュリティグループを返す
func (p *Provider) RdsSecurityGroup() (awsec2.ISecurityGroup, error) {
	return p.SecurityGroup(naming.SgRds)
}

// BastionSecurityGroup は踏み台ホスト用共有セキュリティグループを返す
func (p *Provider) BastionSecurityGroup() (awsec2.ISecurityGroup, error) {
	return p.SecurityGroup(naming.SgBastion)
}

// PublicSubnets はパブリックサブネット一覧を返す
// VPCハンドル自体がキャッシュされるため独立キャッシュは持たない
func (p *Provider) PublicSubnets() (*[]awsec2.ISubnet, error) {
	vpc, err := p.Vpc()
	if err != nil {
		return nil, err
	}
	return vpc.PublicSubnets(), nil
}

// PrivateSubnets はプライベートサブネット一覧を返す
func (p *Provider) PrivateSubnets() (*[]awsec2.ISubnet, error) {
	vpc, err := p.Vpc()
	if err != nil {
		return nil, err
	}
	return vpc.PrivateSubnets(), nil
}

// IsolatedSubnets はアイソレートサブネット一覧を返す
func (p *Provider) IsolatedSubnets() (*[]awsec2.ISubnet, error) {
	vpc, err := p.Vpc()
	if err != nil {
		return nil, err
	}
	return vpc.IsolatedSubnets(), nil
}

// LogGroup は環境共有のCloudWatch Logsロググループハンドルを返す
func (p *Provider) LogGroup() (awslogs.ILogGroup, error) {
	if v, ok := p.cache[cacheKeyLogGroup]; ok {
		return v.(awslogs.ILogGroup), nil
	}
	name, err := p.importValue(LogGroupNameKey(p.env))
	if err != nil {
		return nil, err
	}
	lg := awslogs.LogGroup_FromLogGroupName(p.scope, jsii.String("SharedLogGroup"), name)
	p.cache[cacheKeyLogGroup] = lg
	return lg, nil
}

// Validate は全アクセサーを固定順（VPC → ALB SG → ECS SG → RDS SG →
// パブリック → プライベート → アイソレートサブネット）で先行評価し、
// 失敗をSharedResourcesUnavailableErrorに包んで返す（fail-fast診断用）
func (p *Provider) Validate() error {
	steps := []func() error{
		func() error { _, err := p.Vpc(); return err },
		func() error { _, err := p.AlbSecurityGroup(); return err },
		func() error { _, err := p.EcsSecurityGroup(); return err },
		func() error { _, err := p.RdsSecurityGroup(); return err },
		func() error { _, err := p.PublicSubnets(); return err },
		func() error { _, err := p.PrivateSubnets(); return err },
		func() error { _, err := p.IsolatedSubnets(); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return &SharedResourcesUnavailableError{Env: p.env, Err: err}
		}
	}
	return nil
}
