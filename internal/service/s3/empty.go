package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// EmptyBucket はバケット内の全オブジェクト（全バージョン・削除マーカー含む）を削除する
// バケット自体は削除しない（cdk destroy側に任せる）
func EmptyBucket(s3Client *s3.Client, bucketName string) error {
	fmt.Printf("🔄 バケット '%s' を空にしています...\n", bucketName)

	deleted := 0
	paginator := s3.NewListObjectVersionsPaginator(s3Client, &s3.ListObjectVersionsInput{
		Bucket: &bucketName,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return fmt.Errorf("バケット '%s' のオブジェクト一覧取得に失敗: %w", bucketName, err)
		}

		objects := []types.ObjectIdentifier{}
		for _, v := range page.Versions {
			objects = append(objects, types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			objects = append(objects, types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}
		if len(objects) == 0 {
			continue
		}

		_, err = s3Client.DeleteObjects(context.Background(), &s3.DeleteObjectsInput{
			Bucket: &bucketName,
			Delete: &types.Delete{Objects: objects},
		})
		if err != nil {
			return fmt.Errorf("バケット '%s' のオブジェクト削除に失敗: %w", bucketName, err)
		}
		deleted += len(objects)
	}

	fmt.Printf("✅ バケット '%s' を空にしました（削除オブジェクト数: %d）\n", bucketName, deleted)
	return nil
}
