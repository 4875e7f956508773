package prepro

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"paraprep/internal/config"
	"paraprep/internal/models"
	"paraprep/internal/util"
)

type Options struct {
	ParaDir        string
	ParagraphsFile string
	TrainSplitFile string
	ValSplitFile   string
	TestSplitFile  string
	OutputJSON     string
	ProgressEvery  int
}

func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		ParaDir:        cfg.ParaDir,
		ParagraphsFile: cfg.ParagraphsFile,
		TrainSplitFile: cfg.TrainSplitFile,
		ValSplitFile:   cfg.ValSplitFile,
		TestSplitFile:  cfg.TestSplitFile,
		OutputJSON:     cfg.DatasetJSON,
		ProgressEvery:  cfg.ProgressEvery,
	}
}

func (o Options) splitFiles() []SplitFile {
	return []SplitFile{
		{Name: models.SplitTrain, Path: filepath.Join(o.ParaDir, o.TrainSplitFile)},
		{Name: models.SplitVal, Path: filepath.Join(o.ParaDir, o.ValSplitFile)},
		{Name: models.SplitTest, Path: filepath.Join(o.ParaDir, o.TestSplitFile)},
	}
}

func LoadParagraphs(path string) ([]models.ParagraphRecord, error) {
	var paragraphs []models.ParagraphRecord
	if err := util.ReadJSON(path, &paragraphs); err != nil {
		return nil, fmt.Errorf("load paragraphs: %w", err)
	}
	return paragraphs, nil
}

// Run reads the paragraph dataset and split lists under opts.ParaDir and
// writes the tokenized image-record dataset to opts.OutputJSON.
func Run(opts Options, tok ParagraphTokenizer, logger *log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	paragraphs, err := LoadParagraphs(filepath.Join(opts.ParaDir, opts.ParagraphsFile))
	if err != nil {
		return Stats{}, err
	}
	splits, err := LoadSplits(opts.splitFiles())
	if err != nil {
		return Stats{}, err
	}
	if amb := splits.Ambiguous(); len(amb) > 0 {
		logger.Printf("warning: %d image ids appear in more than one split, first match in train/val/test order wins (e.g. %v)", len(amb), amb[:min(len(amb), 5)])
	}

	b := &Builder{Tokenizer: tok, Splits: splits, Logger: logger, ProgressEvery: opts.ProgressEvery}
	dataset, stats, err := b.Build(paragraphs)
	if err != nil {
		return Stats{}, err
	}
	if err := util.WriteJSONAtomic(opts.OutputJSON, dataset, "    "); err != nil {
		return Stats{}, fmt.Errorf("write dataset: %w", err)
	}

	logger.Printf("Finished tokenizing paragraphs.")
	logger.Printf("There are %d duplicate captions.", stats.Duplicates)
	logger.Printf("The dataset contains %d images and annotations", stats.Images)
	return stats, nil
}
