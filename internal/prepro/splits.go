package prepro

import (
	"fmt"
	"sort"

	"paraprep/internal/util"
)

type SplitFile struct {
	Name string
	Path string
}

type splitSet struct {
	name string
	ids  map[int64]struct{}
}

// SplitIndex resolves an image id to its split by scanning the member sets
// in the order they were loaded. The first set containing the id wins.
type SplitIndex struct {
	sets []splitSet
}

func NewSplitIndex() *SplitIndex {
	return &SplitIndex{}
}

func (s *SplitIndex) Add(name string, ids []int64) {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	s.sets = append(s.sets, splitSet{name: name, ids: set})
}

func (s *SplitIndex) Lookup(id int64) (string, error) {
	for _, set := range s.sets {
		if _, ok := set.ids[id]; ok {
			return set.name, nil
		}
	}
	return "", fmt.Errorf("image %d: %w", id, util.ErrSplitNotFound)
}

// Ambiguous returns ids that are members of more than one split, ascending.
func (s *SplitIndex) Ambiguous() []int64 {
	seen := map[int64]int{}
	for _, set := range s.sets {
		for id := range set.ids {
			seen[id]++
		}
	}
	out := make([]int64, 0)
	for id, n := range seen {
		if n > 1 {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func LoadSplits(files []SplitFile) (*SplitIndex, error) {
	idx := NewSplitIndex()
	for _, f := range files {
		var ids []int64
		if err := util.ReadJSON(f.Path, &ids); err != nil {
			return nil, fmt.Errorf("load %s split: %w", f.Name, err)
		}
		idx.Add(f.Name, ids)
	}
	return idx, nil
}
