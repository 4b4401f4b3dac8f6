package view

// Bindings are the element ids the page scripts attach to. An empty id means
// the element is absent and the behaviour bound to it is skipped.
type Bindings struct {
	ProductSection string
	SearchBox      string
	ThemeToggle    string
	ScrollTopBtn   string
}

func DefaultBindings() Bindings {
	return Bindings{
		ProductSection: "product-section",
		SearchBox:      "searchBox",
		ThemeToggle:    "themeToggle",
		ScrollTopBtn:   "scrollTopBtn",
	}
}
