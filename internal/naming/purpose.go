package naming

// AppPurpose はアプリケーションリソースの用途を表す列挙型
type AppPurpose int

const (
	AppMain AppPurpose = iota
	AppWeb
	AppApi
	AppWorker
	AppBatch
	appPurposeCount // 列挙値の総数（テーブル網羅性チェック用）
)

// StoragePurpose はストレージ（S3バケット）の用途を表す列挙型
type StoragePurpose int

const (
	StorageAssets StoragePurpose = iota
	StorageUploads
	StorageLogs
	StorageBackups
	storagePurposeCount
)

// IamPurpose はIAMロールの用途を表す列挙型
type IamPurpose int

const (
	IamTaskExecution IamPurpose = iota
	IamTask
	IamDeploy
	iamPurposeCount
)

// QueuePurpose はSQSキューの用途を表す列挙型
type QueuePurpose int

const (
	QueueJobs QueuePurpose = iota
	QueueDeadLetter
	QueueEvents
	queuePurposeCount
)

// NotificationPurpose はSNSトピックの用途を表す列挙型
type NotificationPurpose int

const (
	NotifyAlerts NotificationPurpose = iota
	NotifyDeployEvents
	notificationPurposeCount
)

// SecurityGroupPurpose は共有セキュリティグループの用途を表す列挙型
type SecurityGroupPurpose int

const (
	SgAlb SecurityGroupPurpose = iota
	SgEcs
	SgRds
	SgBastion
	securityGroupPurposeCount
)
