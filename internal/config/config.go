package config

import (
	"os"
	"strconv"
)

type Config struct {
	ParaDir        string
	ParagraphsFile string
	TrainSplitFile string
	ValSplitFile   string
	TestSplitFile  string
	DatasetJSON    string
	ProgressEvery  int

	ReferenceSplit string
	ReferenceJSON  string
}

func Load() Config {
	return Config{
		ParaDir:        getenv("PARAPREP_PARA_DIR", "data/para_data/paragraphs"),
		ParagraphsFile: getenv("PARAPREP_PARAGRAPHS_FILE", "paragraphs_v1.json"),
		TrainSplitFile: getenv("PARAPREP_TRAIN_SPLIT_FILE", "train_split.json"),
		ValSplitFile:   getenv("PARAPREP_VAL_SPLIT_FILE", "val_split.json"),
		TestSplitFile:  getenv("PARAPREP_TEST_SPLIT_FILE", "test_split.json"),
		DatasetJSON:    getenv("PARAPREP_DATASET_JSON", "data/dataset_para.json"),
		ProgressEvery:  getenvInt("PARAPREP_PROGRESS_EVERY", 1000),
		ReferenceSplit: getenv("PARAPREP_REFERENCE_SPLIT", "test"),
		ReferenceJSON:  getenv("PARAPREP_REFERENCE_JSON", "data.json"),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
