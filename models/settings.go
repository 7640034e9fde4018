package models

// StoreSettings is a singleton row (id = 1). Updates are partial
// merges — absent fields keep their current value.
type StoreSettings struct {
	ID             int64   `json:"-" gorm:"primaryKey"`
	StoreName      string  `json:"store_name"`
	Logo           *string `json:"logo,omitempty"`
	Banner         *string `json:"banner,omitempty"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone"`
	Address        string  `json:"address"`
	ShippingPrice  float64 `json:"shipping_price" gorm:"type:numeric(12,2);check:shipping_price >= 0"`
}

func (StoreSettings) TableName() string {
	return "store_settings"
}

// DefaultStoreSettings seeds the singleton row when none exists yet.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		ID:             1,
		StoreName:      "Conexão 011",
		PrimaryColor:   "#000000",
		SecondaryColor: "#ffffff",
		ContactEmail:   "contato@conexao011.com.br",
		ContactPhone:   "(11) 99999-9999",
		Address:        "São Paulo, SP",
		ShippingPrice:  0,
	}
}

type UpdateSettingsRequest struct {
	StoreName      *string  `json:"store_name"`
	Logo           *string  `json:"logo"`
	Banner         *string  `json:"banner"`
	PrimaryColor   *string  `json:"primary_color"`
	SecondaryColor *string  `json:"secondary_color"`
	ContactEmail   *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   *string  `json:"contact_phone"`
	Address        *string  `json:"address"`
	ShippingPrice  *float64 `json:"shipping_price" binding:"omitempty,min=0"`
}
