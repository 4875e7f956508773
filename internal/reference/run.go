package reference

import (
	"fmt"
	"io"
	"log"

	"paraprep/internal/models"
	"paraprep/internal/util"
)

type Options struct {
	InputJSON  string
	Split      string
	OutputJSON string
}

func (o Options) Validate() error {
	if o.InputJSON == "" {
		return fmt.Errorf("input_json: %w", util.ErrMissingField)
	}
	if !models.ValidSplit(o.Split) {
		return fmt.Errorf("%q (want train, val or test): %w", o.Split, util.ErrUnknownSplit)
	}
	if o.OutputJSON == "" {
		return fmt.Errorf("output_json: %w", util.ErrMissingField)
	}
	return nil
}

func Run(opts Options, logger *log.Logger) (models.Reference, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := opts.Validate(); err != nil {
		return models.Reference{}, err
	}
	var in inputDataset
	if err := util.ReadJSON(opts.InputJSON, &in); err != nil {
		return models.Reference{}, fmt.Errorf("load dataset: %w", err)
	}
	ref, err := Export(in.Images, opts.Split)
	if err != nil {
		return models.Reference{}, err
	}
	if err := util.WriteJSONAtomic(opts.OutputJSON, ref, ""); err != nil {
		return models.Reference{}, fmt.Errorf("write reference: %w", err)
	}
	logger.Printf("wrote %s", opts.OutputJSON)
	return ref, nil
}
