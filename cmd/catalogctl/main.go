// cmd/catalogctl/main.go

// catalogctl maintains the product catalog files.
//
//	catalogctl build -products ./admin/products -out ./admin/data/products.json
//	catalogctl split -catalog ./admin/data/products.json -products ./admin/products
//
// build aggregates per-product JSON files into the catalog array the API
// serves; split does the reverse, one file per product named by its id.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/cms"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "build":
		fs := flag.NewFlagSet("build", flag.ExitOnError)
		productsDir := fs.String("products", "./admin/products", "directory of per-product JSON files")
		out := fs.String("out", "./admin/data/products.json", "aggregated catalog output path")
		fs.Parse(os.Args[2:])

		products, err := cms.Build(*productsDir)
		if err != nil {
			logger.Fatalf("Failed to build catalog: %v", err)
		}
		if err := cms.WriteCatalog(products, *out); err != nil {
			logger.Fatalf("Failed to write catalog: %v", err)
		}
		logger.Infof("✅ Wrote %d products to %s", len(products), *out)

	case "split":
		fs := flag.NewFlagSet("split", flag.ExitOnError)
		catalogPath := fs.String("catalog", "./admin/data/products.json", "aggregated catalog to split")
		productsDir := fs.String("products", "./admin/products", "output directory for per-product files")
		fs.Parse(os.Args[2:])

		written, err := cms.Split(*catalogPath, *productsDir)
		if err != nil {
			logger.Fatalf("Failed to split catalog: %v", err)
		}
		logger.Infof("✅ Wrote %d product files to %s", written, *productsDir)

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: catalogctl <build|split> [flags]")
	fmt.Fprintln(os.Stderr, "  build  aggregate per-product JSON files into the catalog array")
	fmt.Fprintln(os.Stderr, "  split  write one per-product file per catalog entry")
}
