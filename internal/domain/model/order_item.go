package model

// 注文明細（価格は注文時点のスナップショット）
// 履歴なのでメニュー削除時もカスケードしない
type OrderItem struct {
	ID             string `gorm:"type:varchar(64);primaryKey" json:"id"`
	OrderID        string `gorm:"type:varchar(64);not null;index" json:"order_id"`
	MenuItemID     string `gorm:"type:varchar(64);not null;index" json:"menu_item_id"`
	Qty            int64  `gorm:"not null" json:"qty"`
	LineTotalCents int64  `gorm:"not null" json:"line_total_cents"`
}
