// Package cleanup はcdk destroy前の後片付けを行う
// スタックが所有するS3バケットとECRリポジトリの中身を空にして、
// 空でないリソースが原因のスタック削除失敗を防ぐ
package cleanup

import (
	"fmt"

	cfnsvc "appinfra/internal/service/cfn"
	ecrsvc "appinfra/internal/service/ecr"
	s3svc "appinfra/internal/service/s3"
)

// EmptyStackResources はスタック内のS3バケットとECRリポジトリを空にする
func EmptyStackResources(clients ClientSet, opts Options) error {
	fmt.Printf("🔍 スタック '%s' から対象リソースを検索中...\n", opts.StackName)

	resources, err := cfnsvc.GetStackResources(clients.CfnClient, opts.StackName)
	if err != nil {
		return err
	}

	bucketNames := []string{}
	repoNames := []string{}
	for _, r := range resources {
		switch r.ResourceType {
		case "AWS::S3::Bucket":
			bucketNames = append(bucketNames, r.PhysicalId)
		case "AWS::ECR::Repository":
			repoNames = append(repoNames, r.PhysicalId)
		}
	}

	if len(bucketNames) == 0 && len(repoNames) == 0 {
		fmt.Println("  対象のS3バケット・ECRリポジトリはありません")
		return nil
	}

	var failed []string
	for _, name := range bucketNames {
		if err := s3svc.EmptyBucket(clients.S3Client, name); err != nil {
			fmt.Printf("❌ %v\n", err)
			failed = append(failed, name)
		}
	}
	for _, name := range repoNames {
		if err := ecrsvc.PurgeRepository(clients.EcrClient, name); err != nil {
			fmt.Printf("❌ %v\n", err)
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("クリーンアップに失敗したリソースがあります: %v", failed)
	}

	fmt.Println("🎉 クリーンアップが完了しました")
	return nil
}
