package models

// Page contains the fields shared by every page sent to the renderer
type Page struct {
	Type              string         `json:"type"`
	Metadata          Metadata       `json:"metadata"`
	Breadcrumb        []TaxonomyNode `json:"breadcrumb"`
	BetaBannerEnabled bool           `json:"beta_banner_enabled"`
	TaxonomyDomain    string         `json:"taxonomy_domain"`
}

// Metadata holds the page title and description
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TaxonomyNode is one step of a breadcrumb
type TaxonomyNode struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}
