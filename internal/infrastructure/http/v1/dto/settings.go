package dto

// SettingsRequest updates the shop profile.
type SettingsRequest struct {
	ShopName string  `json:"shopName" binding:"required"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}
