package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"paraprep/internal/config"
	"paraprep/internal/prepro"
	"paraprep/internal/tokenize"
	"paraprep/internal/util"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	opts := prepro.OptionsFromConfig(cfg)

	flag.StringVar(&opts.ParaDir, "para_dir", opts.ParaDir, "paragraph annotation directory")
	flag.StringVar(&opts.OutputJSON, "output_json", opts.OutputJSON, "output coco format json")
	flag.Parse()

	log.SetPrefix("prepro-text run=" + uuid.NewString()[:8] + " ")
	log.Printf("para_dir=%s output_json=%s", opts.ParaDir, opts.OutputJSON)

	tok := tokenize.New(tokenize.NewProseSegmenter())
	if _, err := prepro.Run(opts, tok, log.Default()); err != nil {
		log.Fatal(err)
	}
	sum, err := util.FileSHA256(opts.OutputJSON)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s sha256=%s", opts.OutputJSON, sum)
}
