// Command prepro-reference writes the caption-evaluation reference json for
// one split of an image-record dataset. Use it when a dataset ships without
// its own reference file.
package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"paraprep/internal/config"
	"paraprep/internal/reference"
	"paraprep/internal/util"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	opts := reference.Options{Split: cfg.ReferenceSplit, OutputJSON: cfg.ReferenceJSON}

	flag.StringVar(&opts.InputJSON, "input_json", "", "input json file to process")
	flag.StringVar(&opts.Split, "split", opts.Split, "train/val/test")
	flag.StringVar(&opts.OutputJSON, "output_json", opts.OutputJSON, "output json file")
	flag.Parse()

	log.SetPrefix("prepro-reference run=" + uuid.NewString()[:8] + " ")
	log.Printf("input_json=%s split=%s output_json=%s", opts.InputJSON, opts.Split, opts.OutputJSON)

	ref, err := reference.Run(opts, log.Default())
	if err != nil {
		log.Fatal(err)
	}
	sum, err := util.FileSHA256(opts.OutputJSON)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("images=%d annotations=%d sha256=%s", len(ref.Images), len(ref.Annotations), sum)
}
