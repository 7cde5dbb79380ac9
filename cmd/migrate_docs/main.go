// One-off: copy all JSON documents between the local and blob storage
// backends, e.g. when promoting a locally initialized wallet to the blob
// store. Direction is -to=blob (default) or -to=local.
// Usage: go run ./cmd/migrate_docs [-to=blob|local]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/config"
	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/storage"
)

func main() {
	to := flag.String("to", "blob", "migration target: blob or local")
	flag.Parse()

	_ = godotenv.Load()
	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	cfg := config.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	local, err := storage.NewLocalStore(cfg.StorageDir)
	if err != nil {
		log.Fatal(err)
	}
	blob, err := storage.NewBlobStore(ctx, storage.BlobConfig{
		Endpoint:  cfg.BlobEndpoint,
		AccessKey: cfg.BlobAccessKey,
		SecretKey: cfg.BlobSecretKey,
		Bucket:    cfg.BlobBucket,
		Prefix:    cfg.BlobPrefix,
		UseSSL:    cfg.BlobUseSSL,
	})
	if err != nil {
		log.Fatal(err)
	}

	var src, dst storage.Store
	switch *to {
	case "blob":
		src, dst = local, blob
	case "local":
		src, dst = blob, local
	default:
		fmt.Fprintf(os.Stderr, "unknown target %q\n", *to)
		os.Exit(2)
	}

	names, err := src.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range names {
		data, err := src.Load(ctx, name)
		if err != nil {
			log.Fatalf("load %s: %v", name, err)
		}
		if err := dst.Save(ctx, name, data); err != nil {
			log.Fatalf("save %s: %v", name, err)
		}
		fmt.Printf("copied %s (%d bytes)\n", name, len(data))
	}
	fmt.Printf("done: %d documents\n", len(names))
}
