package models

type ProductImgStatus string

const (
	ProductImgStatusActive  ProductImgStatus = "active"
	ProductImgStatusRemoved ProductImgStatus = "removed"
)

// ProductImg stores the opaque object-storage key of an uploaded image.
// The public URL is resolved at read time, never persisted.
type ProductImg struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint             `gorm:"index" json:"product_id"`
	ImgURL    string           `gorm:"not null" json:"img_url"`
	Status    ProductImgStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
}
