package catalog

// Color is one selectable colorway of a product.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	CategorySlug string   `json:"category_slug"`
	Description  string   `json:"description"`
	Details      []string `json:"details"`
	Care         []string `json:"care"`
	Material     string   `json:"material"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
	Colors       []Color  `json:"colors"`
	Featured     bool     `json:"featured"`
	New          bool     `json:"new"`
	Sale         bool     `json:"sale"`
	SalePrice    float64  `json:"sale_price,omitempty"`
	InStock      bool     `json:"in_stock"`
}

// EffectivePrice is the sale price when the product is on sale,
// otherwise the base price.
func (p Product) EffectivePrice() float64 {
	if p.Sale && p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// All returns every product in catalog order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByID returns the product with the given id, or false when unknown.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func Featured() []Product {
	return filter(func(p Product) bool { return p.Featured })
}

func New() []Product {
	return filter(func(p Product) bool { return p.New })
}

func OnSale() []Product {
	return filter(func(p Product) bool { return p.Sale })
}

func ByCategory(slug string) []Product {
	return filter(func(p Product) bool { return p.CategorySlug == slug })
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func filter(keep func(Product) bool) []Product {
	var out []Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
