package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fzft/go-chaintable/cmd"
	"github.com/fzft/go-chaintable/db"
	"github.com/fzft/go-chaintable/log"
	"github.com/fzft/go-chaintable/poi"
	"go.uber.org/zap"
)

func main() {
	var (
		dbPath     = flag.String("db", "", "restaurant record file for NEAR")
		startBlock = flag.Uint("start", 0, "first block holding restaurant records")
		buckets    = flag.Int("buckets", db.DefaultBucketCount, "initial bucket count")
		logLevel   = flag.String("loglevel", "info", "debug, info, warn or error")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("chaintable sha=%s:%s build=%s\n", GitSHA1(), GitDirty(), BuildIdRaw())
		return
	}

	if err := log.InitLogger(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}
	defer log.Logger.Sync()

	if err := run(*dbPath, uint32(*startBlock), *buckets); err != nil {
		log.Logger.Error("exiting", zap.Error(err))
		os.Exit(1)
	}
}

func run(dbPath string, startBlock uint32, buckets int) error {
	set, err := db.NewSet[db.String](buckets, db.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	var lookup *poi.Lookup
	if dbPath != "" {
		dev, err := poi.OpenFileDevice(dbPath)
		if err != nil {
			return err
		}
		defer dev.Close()

		if startBlock >= dev.Blocks() {
			return fmt.Errorf("start block %d beyond device end (%d blocks)", startBlock, dev.Blocks())
		}
		count := int(dev.Blocks()-startBlock) * poi.RecordsPerBlock
		lookup = poi.NewLookup(poi.NewRecordCache(dev, startBlock), count, poi.DefaultProjection)
		log.Logger.Info("restaurant database loaded", zap.String("path", dbPath), zap.Int("records", count))
	}

	return cmd.NewCli(set, lookup, os.Stdout).Repl(os.Stdin)
}
