package product

// Product mirrors the catalog entries served by the shop backend. The client
// treats it as read-only except for appended reviews and the recomputed
// average rating.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
	Brand       string   `json:"brand"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured,omitempty"`
	Trending    bool     `json:"trending,omitempty"`
}

// Review is immutable once submitted. UserName is a denormalized snapshot of
// the reviewer's name at submission time.
type Review struct {
	ID       int64  `json:"id"`
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
