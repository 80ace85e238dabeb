package naming

import "fmt"

// Convention は環境名とアプリ名から命名規約に沿ったリソース名を組み立てる
// 生成される名前は `{環境}-{アプリ}-{トークン}` 形式で決定的。
// 名前の変更はリソースの置き換えを引き起こすため、トークン同様に安定契約
type Convention struct {
	Env string
	App string
}

// NewConvention は命名規約ビルダーを作成する
func NewConvention(env, app string) Convention {
	return Convention{Env: env, App: app}
}

// prefixed は `{環境}-{アプリ}-` プレフィックスを付与する
func (c Convention) prefixed(token string) string {
	return fmt.Sprintf("%s-%s-%s", c.Env, c.App, token)
}

// ClusterName はECSクラスター名を返す
func (c Convention) ClusterName() string {
	return c.prefixed("cluster")
}

// ServiceName は用途別のECSサービス名を返す
func (c Convention) ServiceName(p AppPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token + "-service"), nil
}

// TaskFamily は用途別のタスク定義ファミリー名を返す
func (c Convention) TaskFamily(p AppPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token + "-task"), nil
}

// RepositoryName は用途別のECRリポジトリ名を返す
func (c Convention) RepositoryName(p AppPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token), nil
}

// BucketName は用途別のS3バケット名を返す
// バケット名はグローバル一意制約があるためアカウントIDを含める
func (c Convention) BucketName(p StoragePurpose, accountId string) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", c.prefixed(token), "bucket", accountId), nil
}

// RoleName は用途別のIAMロール名を返す
func (c Convention) RoleName(p IamPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token + "-role"), nil
}

// QueueName は用途別のSQSキュー名を返す
func (c Convention) QueueName(p QueuePurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token + "-queue"), nil
}

// TopicName は用途別のSNSトピック名を返す
func (c Convention) TopicName(p NotificationPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token + "-topic"), nil
}

// LogStreamPrefix は共有ロググループ内でのストリームプレフィックスを返す
func (c Convention) LogStreamPrefix(p AppPurpose) (string, error) {
	token, err := p.Token()
	if err != nil {
		return "", err
	}
	return c.prefixed(token), nil
}

// StackName は用途別のCloudFormationスタック名を返す
func (c Convention) StackName(suffix string) string {
	return c.prefixed(suffix)
}
