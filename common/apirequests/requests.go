package apirequests

// Used for GET /catalog. Both parameters are optional.
type CatalogQuery struct {
	Category string `query:"category"`
	Query    string `query:"q"`
}

// Used for POST /admin/products. Every field is free-form, may be empty and
// has no length limit beyond the server body limit.
type AddProductRequest struct {
	Title       string `json:"title" form:"title"`
	Image       string `json:"image" form:"image"`
	Price       string `json:"price" form:"price"`
	Description string `json:"description" form:"desc"`
	Category    string `json:"category" form:"category"`
	Link        string `json:"link" form:"link"`
}
