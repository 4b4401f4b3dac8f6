package services

import (
	"context"
	"html/template"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/apirequests"
)

// Fragment is the HTML rendered into the product section.
type Fragment struct {
	HTML template.HTML
	// Failed is set when the fragment is the load-failure fallback.
	Failed bool
	// Count is the number of product cards in HTML.
	Count int
}

type CatalogService interface {
	// Load fetches the live collection and renders it, or the fallback on failure.
	Load(ctx context.Context) Fragment
	Render(ctx context.Context, products []models.Product) Fragment
	// FilterByCategory reports false, and renders nothing, while no products are held.
	FilterByCategory(ctx context.Context, category string) (Fragment, bool)
	Search(ctx context.Context, query string) Fragment
	Products() (products []models.Product, loaded bool)
	Categories() []string
	LiveData(ctx context.Context) ([]byte, *apierrors.AppError)
	SourceLocation() string
}

// AdminOutcome is the result of adding a product.
type AdminOutcome struct {
	Product   models.Product
	Output    string
	Count     int
	Publisher string
	Published bool
}

type AdminService interface {
	AddProduct(ctx context.Context, req apirequests.AddProductRequest) (*AdminOutcome, *apierrors.AppError)
	// CopyJSON returns the displayed output, failing with NOTHING_TO_COPY when empty.
	CopyJSON(ctx context.Context) (string, *apierrors.AppError)
	Output() string
	PublisherName() string
}
