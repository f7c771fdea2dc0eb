package builtin

import "github.com/scientificaj/icl/internal/pack"

// NewRegistry builds the Registry cmd/iclc and internal/service both start
// from: the three stable targets, the web scaffold, and every experimental
// brace-family target.
func NewRegistry() (*pack.Registry, error) {
	r := pack.NewRegistry()
	stable := []pack.Pack{Python{}, JS{}, Rust{}, Web{}}
	for _, p := range stable {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	for _, p := range ExperimentalPacks() {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}
