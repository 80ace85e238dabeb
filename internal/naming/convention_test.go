package naming

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConventionNames(t *testing.T) {
	conv := NewConvention("dev", "webapp")

	got := map[string]string{}
	var err error

	got["cluster"] = conv.ClusterName()
	got["stack"] = conv.StackName("service")

	if got["service"], err = conv.ServiceName(AppWeb); err != nil {
		t.Fatalf("ServiceName() エラー: %v", err)
	}
	if got["task"], err = conv.TaskFamily(AppWeb); err != nil {
		t.Fatalf("TaskFamily() エラー: %v", err)
	}
	if got["repo"], err = conv.RepositoryName(AppWeb); err != nil {
		t.Fatalf("RepositoryName() エラー: %v", err)
	}
	if got["role"], err = conv.RoleName(IamTaskExecution); err != nil {
		t.Fatalf("RoleName() エラー: %v", err)
	}
	if got["queue"], err = conv.QueueName(QueueDeadLetter); err != nil {
		t.Fatalf("QueueName() エラー: %v", err)
	}
	if got["topic"], err = conv.TopicName(NotifyAlerts); err != nil {
		t.Fatalf("TopicName() エラー: %v", err)
	}
	if got["bucket"], err = conv.BucketName(StorageAssets, "123456789012"); err != nil {
		t.Fatalf("BucketName() エラー: %v", err)
	}
	if got["stream"], err = conv.LogStreamPrefix(AppWeb); err != nil {
		t.Fatalf("LogStreamPrefix() エラー: %v", err)
	}

	want := map[string]string{
		"cluster": "dev-webapp-cluster",
		"stack":   "dev-webapp-service",
		"service": "dev-webapp-web-service",
		"task":    "dev-webapp-web-task",
		"repo":    "dev-webapp-web",
		"role":    "dev-webapp-task-execution-role",
		"queue":   "dev-webapp-dead-letter-queue",
		"topic":   "dev-webapp-alerts-topic",
		"bucket":  "dev-webapp-assets-bucket-123456789012",
		"stream":  "dev-webapp-web",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("命名規約の導出結果が一致しません (-want +got):\n%s", diff)
	}
}

func TestConventionPropagatesResolverError(t *testing.T) {
	conv := NewConvention("dev", "webapp")

	// 未定義の用途値からは名前を生成しない（部分的な名前の流出防止）
	if _, err := conv.ServiceName(AppPurpose(42)); err == nil {
		t.Fatal("未定義の用途値でエラーが返りませんでした")
	}
	if _, err := conv.QueueName(QueuePurpose(42)); err == nil {
		t.Fatal("未定義の用途値でエラーが返りませんでした")
	}
}
