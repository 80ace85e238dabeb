package cfn

// Export はCloudFormationのクロススタックエクスポート1件を表す構造体
type Export struct {
	Name           string
	Value          string
	ExportingStack string
}

// StackResource はスタック内リソースの識別情報を格納する構造体
type StackResource struct {
	LogicalId    string
	PhysicalId   string
	ResourceType string
}
