package ecs

// StatusOptions はECSサービス状態取得のパラメータを格納する構造体
type StatusOptions struct {
	ClusterName string
	ServiceName string
}

// serviceStatus はECSサービスの状態情報を格納する構造体
type serviceStatus struct {
	ServiceName    string
	ClusterName    string
	Status         string
	TaskDefinition string
	DesiredCount   int32
	RunningCount   int32
	PendingCount   int32
	Tasks          []taskInfo
}

// taskInfo はタスク1件の状態情報を格納する構造体
type taskInfo struct {
	TaskId       string
	Status       string
	HealthStatus string
	CreatedAt    string
}
