package ecr

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// PurgeRepository はリポジトリ内の全イメージを削除する
// リポジトリ自体は削除しない（cdk destroy側に任せる）
func PurgeRepository(ecrClient *ecr.Client, repoName string) error {
	fmt.Printf("🔄 リポジトリ '%s' のイメージを削除しています...\n", repoName)

	deleted := 0
	paginator := ecr.NewListImagesPaginator(ecrClient, &ecr.ListImagesInput{
		RepositoryName: &repoName,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return fmt.Errorf("リポジトリ '%s' のイメージ一覧取得に失敗: %w", repoName, err)
		}
		if len(page.ImageIds) == 0 {
			continue
		}

		_, err = ecrClient.BatchDeleteImage(context.Background(), &ecr.BatchDeleteImageInput{
			RepositoryName: &repoName,
			ImageIds:       page.ImageIds,
		})
		if err != nil {
			return fmt.Errorf("リポジトリ '%s' のイメージ削除に失敗: %w", repoName, err)
		}
		deleted += len(page.ImageIds)
	}

	fmt.Printf("✅ リポジトリ '%s' のイメージを削除しました（削除イメージ数: %d）\n", repoName, deleted)
	return nil
}
