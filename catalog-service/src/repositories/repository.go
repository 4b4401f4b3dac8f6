package repositories

import (
	"context"

	"github.com/git-pranav2004/getdeal/catalog-service/src/models"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/config"
	db "github.com/git-pranav2004/getdeal/common/db"
)

// Snapshot is one fetch of the live product collection.
type Snapshot struct {
	Products []models.Product
	// Raw is the document exactly as the source returned it.
	Raw []byte
}

// ProductSource fetches the live product collection, bypassing any cache.
type ProductSource interface {
	Fetch(ctx context.Context) (*Snapshot, *apierrors.AppError)
	// Location names where products come from, for logs and status.
	Location() string
}

// NewProductSource returns the HTTP source when PRODUCT_SOURCE_URL is set,
// otherwise the file source over database.
func NewProductSource(cfg *config.Config, database *db.FileDatabase) ProductSource {
	if cfg.ProductSourceURL != "" {
		return NewHTTPSource(cfg.ProductSourceURL, cfg.ProductSourceTimeout())
	}
	return NewFileSource(database)
}
