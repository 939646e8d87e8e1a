package catalog

// Productは販売商品。カタログは固定リスト（DB管理しない）。
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Benefits    []string `json:"benefits,omitempty"`
}

var products = []Product{
	{
		ID:          1,
		Name:        "Liquid Jaggery",
		Image:       "/assets/products/liquid-jaggery.webp",
		Price:       120,
		Rating:      4.8,
		Reviews:     156,
		Description: "Pure liquid jaggery made from fresh sugarcane juice.",
		Benefits:    []string{"Rich in iron", "Better digestion", "Natural sweetener"},
	},
	{
		ID:          2,
		Name:        "Jaggery Blocks",
		Image:       "/assets/products/jaggery-blocks.webp",
		Price:       80,
		Rating:      4.9,
		Reviews:     203,
		Description: "Traditional solid jaggery blocks rich in flavor.",
		Benefits:    []string{"Long shelf life", "Traditional recipe", "No additives"},
	},
	{
		ID:          3,
		Name:        "Jaggery Powder",
		Image:       "/assets/products/jaggery-powder.webp",
		Price:       150,
		Rating:      4.7,
		Reviews:     98,
		Description: "Finely ground powder for easy cooking and baking.",
		Benefits:    []string{"Easy to dissolve", "Perfect for baking", "Consistent texture"},
	},
}

// Allは全商品をコピーで返す（呼び出し側の変更が漏れないように）。
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// FindはIDで1件探す。
func Find(id int64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
