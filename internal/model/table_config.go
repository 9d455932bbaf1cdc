package model

// TableConfig describes which columns an admin table shows. Singleton per
// table name; upserted, never deleted.
type TableConfig struct {
	BaseModel
	TableName      string      `gorm:"size:100;uniqueIndex;not null" json:"tableName"`
	VisibleColumns StringArray `gorm:"type:text" json:"visibleColumns,omitempty"`
	ColumnOrder    StringArray `gorm:"type:text" json:"columnOrder,omitempty"`
	Settings       JSONMap     `gorm:"type:text" json:"settings,omitempty"`
}

// ColumnHeader labels a single column of an admin table. Upserted per
// (table, column key) pair.
type ColumnHeader struct {
	BaseModel
	TableName string `gorm:"size:100;not null;uniqueIndex:idx_table_column" json:"tableName"`
	ColumnKey string `gorm:"size:100;not null;uniqueIndex:idx_table_column" json:"columnKey"`
	Label     string `gorm:"size:255;not null" json:"label"`
	Visible   bool   `gorm:"default:true" json:"visible"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}
