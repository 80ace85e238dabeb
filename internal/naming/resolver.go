package naming

import "fmt"

// UnrecognizedPurposeError は閉じた列挙集合の外の値が渡されたことを表すエラー
// （不正なキャスト経由でのみ発生し得る。プログラミングエラーなのでリトライ不可）
type UnrecognizedPurposeError struct {
	Family string
	Value  int
}

func (e *UnrecognizedPurposeError) Error() string {
	return fmt.Sprintf("未定義の%s値です: %d", e.Family, e.Value)
}

// 各列挙ファミリーのトークンテーブル
// トークンはリソース名の断片としてそのままAWSリソース名に入るため、
// 小文字・ハイフン区切り固定。リリース間で変更するとリソースが再作成される
var (
	appTokens = map[AppPurpose]string{
		AppMain:   "main",
		AppWeb:    "web",
		AppApi:    "api",
		AppWorker: "worker",
		AppBatch:  "batch",
	}

	storageTokens = map[StoragePurpose]string{
		StorageAssets:  "assets",
		StorageUploads: "uploads",
		StorageLogs:    "logs",
		StorageBackups: "backups",
	}

	iamTokens = map[IamPurpose]string{
		IamTaskExecution: "task-execution",
		IamTask:          "task",
		IamDeploy:        "deploy",
	}

	queueTokens = map[QueuePurpose]string{
		QueueJobs:       "jobs",
		QueueDeadLetter: "dead-letter",
		QueueEvents:     "events",
	}

	notificationTokens = map[NotificationPurpose]string{
		NotifyAlerts:       "alerts",
		NotifyDeployEvents: "deploy-events",
	}

	securityGroupTokens = map[SecurityGroupPurpose]string{
		SgAlb:     "alb",
		SgEcs:     "ecs",
		SgRds:     "rds",
		SgBastion: "bastion",
	}
)

// resolveToken はテーブルから用途値に対応するトークンを引く共通関数
func resolveToken[P ~int](family string, tokens map[P]string, p P) (string, error) {
	token, ok := tokens[p]
	if !ok {
		return "", &UnrecognizedPurposeError{Family: family, Value: int(p)}
	}
	return token, nil
}

// validateTable はテーブルが列挙集合を網羅しているかをinit時に検証する
// （マッピング漏れを実行時の失敗ではなく起動時のpanicとして検出する）
func validateTable[P ~int](family string, tokens map[P]string, count P) {
	for p := P(0); p < count; p++ {
		if _, ok := tokens[p]; !ok {
			panic(fmt.Sprintf("naming: %sトークンテーブルに %d のマッピングがありません", family, int(p)))
		}
	}
}

func init() {
	validateTable("AppPurpose", appTokens, appPurposeCount)
	validateTable("StoragePurpose", storageTokens, storagePurposeCount)
	validateTable("IamPurpose", iamTokens, iamPurposeCount)
	validateTable("QueuePurpose", queueTokens, queuePurposeCount)
	validateTable("NotificationPurpose", notificationTokens, notificationPurposeCount)
	validateTable("SecurityGroupPurpose", securityGroupTokens, securityGroupPurposeCount)
}

// Token はAppPurposeに対応する命名トークンを返す
func (p AppPurpose) Token() (string, error) {
	return resolveToken("AppPurpose", appTokens, p)
}

// Token はStoragePurposeに対応する命名トークンを返す
func (p StoragePurpose) Token() (string, error) {
	return resolveToken("StoragePurpose", storageTokens, p)
}

// Token はIamPurposeに対応する命名トークンを返す
func (p IamPurpose) Token() (string, error) {
	return resolveToken("IamPurpose", iamTokens, p)
}

// Token はQueuePurposeに対応する命名トークンを返す
func (p QueuePurpose) Token() (string, error) {
	return resolveToken("QueuePurpose", queueTokens, p)
}

// Token はNotificationPurposeに対応する命名トークンを返す
func (p NotificationPurpose) Token() (string, error) {
	return resolveToken("NotificationPurpose", notificationTokens, p)
}

// Token はSecurityGroupPurposeに対応する命名トークンを返す
func (p SecurityGroupPurpose) Token() (string, error) {
	return resolveToken("SecurityGroupPurpose", securityGroupTokens, p)
}
