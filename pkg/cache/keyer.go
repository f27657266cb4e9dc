package cache

// ArtifactKeyOpts are the render inputs, besides the chart configuration,
// that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	EmbedFont  bool    `json:"embed_font,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact. configHash is the
	// [Hash] of the canonical JSON of the resolved configuration.
	ArtifactKey(configHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes configHash together with opts.
func (DefaultKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, opts)
}
