package entity

// CatalogEntry is one subject on the explore page. The catalog is static;
// it is searched client-side by prefix match on title and description words.
type CatalogEntry struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
