package cache

// Keyer derives cache keys for pipeline outputs.
type Keyer interface {
	// RenderKey is the key of the OpenSCAD text rendered from a model.
	RenderKey(modelHash string, opts RenderKeyOpts) string
	// TreeKey is the key of a tree diagram of a model.
	TreeKey(modelHash string, opts TreeKeyOpts) string
}

// RenderKeyOpts holds the options that change rendered text.
type RenderKeyOpts struct {
	// Version is the generator version; output may change between releases.
	Version string `json:"version,omitempty"`
}

// TreeKeyOpts holds the options that change a tree diagram.
type TreeKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
	Version  string `json:"version,omitempty"`
}

// DefaultKeyer hashes the model hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) RenderKey(modelHash string, opts RenderKeyOpts) string {
	return hashKey("render", modelHash, opts)
}

func (DefaultKeyer) TreeKey(modelHash string, opts TreeKeyOpts) string {
	return hashKey("tree", modelHash, opts)
}
