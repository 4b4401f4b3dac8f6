package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "GetDeal product catalog service",
	Long: `Serves the GetDeal product catalog: cards rendered from the products
JSON document, search and category filtering, the theme toggle and the admin
helper that appends products to the document.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, addProductCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("catalog exited with error")
		os.Exit(1)
	}
}
