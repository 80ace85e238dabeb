package ecs

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// GetServiceStatus はECSサービスの状態を取得する
func GetServiceStatus(ecsClient *ecs.Client, opts StatusOptions) (*serviceStatus, error) {
	serviceResp, err := ecsClient.DescribeServices(context.Background(), &ecs.DescribeServicesInput{
		Cluster:  &opts.ClusterName,
		Services: []string{opts.ServiceName},
	})
	if err != nil {
		return nil, fmt.Errorf("サービス情報の取得に失敗: %w", err)
	}

	if len(serviceResp.Services) == 0 {
		return nil, fmt.Errorf("クラスター '%s' にサービス '%s' が見つかりませんでした", opts.ClusterName, opts.ServiceName)
	}

	service := serviceResp.Services[0]
	statusStr := ""
	if service.Status != nil {
		statusStr = *service.Status
	}

	taskDef := ""
	if service.TaskDefinition != nil {
		taskDef = *service.TaskDefinition
	}

	status := &serviceStatus{
		ServiceName:    opts.ServiceName,
		ClusterName:    opts.ClusterName,
		Status:         statusStr,
		TaskDefinition: taskDef,
		DesiredCount:   service.DesiredCount,
		RunningCount:   service.RunningCount,
		PendingCount:   service.PendingCount,
	}

	tasks, err := getTaskDetails(ecsClient, opts.ClusterName, opts.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("タスク詳細の取得に失敗: %w", err)
	}
	status.Tasks = tasks

	return status, nil
}

// getTaskDetails はサービスに関連するタスクの詳細を取得する
func getTaskDetails(ecsClient *ecs.Client, clusterName, serviceName string) ([]taskInfo, error) {
	tasksResp, err := ecsClient.ListTasks(context.Background(), &ecs.ListTasksInput{
		Cluster:     &clusterName,
		ServiceName: &serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("タスク一覧の取得に失敗: %w", err)
	}

	if len(tasksResp.TaskArns) == 0 {
		return []taskInfo{}, nil
	}

	taskDetailsResp, err := ecsClient.DescribeTasks(context.Background(), &ecs.DescribeTasksInput{
		Cluster: &clusterName,
		Tasks:   tasksResp.TaskArns,
	})
	if err != nil {
		return nil, fmt.Errorf("タスク詳細の取得に失敗: %w", err)
	}

	var tasks []taskInfo
	for _, task := range taskDetailsResp.Tasks {
		taskId := extractTaskId(*task.TaskArn)
		healthStatus := "UNKNOWN"
		if task.HealthStatus != "" {
			healthStatus = string(task.HealthStatus)
		}

		createdAt := ""
		if task.CreatedAt != nil {
			createdAt = task.CreatedAt.Format("2006-01-02 15:04:05")
		}

		lastStatus := ""
		if task.LastStatus != nil {
			lastStatus = *task.LastStatus
		}

		tasks = append(tasks, taskInfo{
			TaskId:       taskId,
			Status:       lastStatus,
			HealthStatus: healthStatus,
			CreatedAt:    createdAt,
		})
	}

	return tasks, nil
}

// extractTaskId はタスクARNからタスクIDを抽出する
func extractTaskId(taskArn string) string {
	// arn:aws:ecs:region:account:task/cluster-name/task-id の形式からtask-idを抽出
	parts := strings.Split(taskArn, "/")
	if len(parts) >= 2 {
		return parts[len(parts)-1]
	}
	return taskArn
}

// ShowServiceStatus はECSサービスの状態を表示する
func ShowServiceStatus(status *serviceStatus) {
	fmt.Printf("🔍 ECSサービス状態: %s/%s\n\n", status.ClusterName, status.ServiceName)

	fmt.Printf("📊 サービス情報:\n")
	fmt.Printf("  状態:           %s\n", status.Status)
	fmt.Printf("  タスク定義:      %s\n", status.TaskDefinition)
	fmt.Printf("  期待数:         %d\n", status.DesiredCount)
	fmt.Printf("  実行中:         %d\n", status.RunningCount)
	fmt.Printf("  起動中:         %d\n", status.PendingCount)

	fmt.Printf("\n📋 タスク詳細:\n")
	if len(status.Tasks) == 0 {
		fmt.Println("  実行中のタスクはありません")
	} else {
		for i, task := range status.Tasks {
			fmt.Printf("  %d. タスクID: %s\n", i+1, task.TaskId)
			fmt.Printf("     状態:     %s\n", task.Status)
			fmt.Printf("     ヘルス:   %s\n", task.HealthStatus)
			if task.CreatedAt != "" {
				fmt.Printf("     作成日時: %s\n", task.CreatedAt)
			}
			fmt.Println()
		}
	}
}
