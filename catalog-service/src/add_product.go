package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/git-pranav2004/getdeal/catalog-service/src/repositories"
	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	"github.com/git-pranav2004/getdeal/common/apirequests"
	db "github.com/git-pranav2004/getdeal/common/db"
	"github.com/git-pranav2004/getdeal/common/globals"
	"github.com/git-pranav2004/getdeal/common/log"
)

var (
	addProductReq     apirequests.AddProductRequest
	addProductPublish bool
)

var addProductCmd = &cobra.Command{
	Use:   "add-product",
	Short: "Append a product to the live document and print the updated JSON",
	Long: `Fetches the live products document, appends a product built from the
flags and prints the result. With --publish the document is also handed to
the configured ADMIN_PUBLISHER; otherwise nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runAddProduct,
}

func init() {
	f := addProductCmd.Flags()
	f.StringVar(&addProductReq.Title, "title", "", "product title")
	f.StringVar(&addProductReq.Image, "image", "", "image URL")
	f.StringVar(&addProductReq.Price, "price", "", "price as displayed")
	f.StringVar(&addProductReq.Description, "desc", "", "description")
	f.StringVar(&addProductReq.Category, "category", "", "category")
	f.StringVar(&addProductReq.Link, "link", "", "affiliate link")
	f.BoolVar(&addProductPublish, "publish", false, "publish through ADMIN_PUBLISHER")
}

func runAddProduct(cmd *cobra.Command, _ []string) error {
	// stdout carries the JSON document only
	log.Output = os.Stderr
	if err := globals.Init(); err != nil {
		return fmt.Errorf("initializing configuration and logging: %w", err)
	}
	cfg := globals.Cfg()
	ctx := cmd.Context()

	database := db.NewFileDatabase(cfg.DataFilePath)
	source := repositories.NewProductSource(cfg, database)

	var publisher services.Publisher = services.DisplayPublisher{}
	if addProductPublish {
		p, err := services.NewPublisher(cfg, database)
		if err != nil {
			return fmt.Errorf("configuring publisher: %w", err)
		}
		publisher = p
	}

	admin := services.NewAdminService(source, publisher)
	_, addErr := admin.AddProduct(ctx, addProductReq)

	output, copyErr := admin.CopyJSON(ctx)
	if copyErr == nil {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if addErr != nil {
		return addErr
	}
	if copyErr != nil {
		return copyErr
	}
	return nil
}
