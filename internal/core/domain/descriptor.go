package domain

// Layer is one level of an environment descriptor.
type Layer uint8

// Descriptor layers.
const (
	LayerExplicitLock Layer = iota + 1
	LayerFullManifest
	LayerHistoryManifest
	LayerRequirements
	LayerLeafPackages
	LayerPipPackages
	LayerPortablePack
)

// LayerOrder lists the layers in decreasing specificity.
var LayerOrder = []Layer{
	LayerExplicitLock,
	LayerFullManifest,
	LayerHistoryManifest,
	LayerRequirements,
	LayerLeafPackages,
	LayerPipPackages,
	LayerPortablePack,
}

var layerNames = map[Layer]string{
	LayerExplicitLock:    "explicit-lock",
	LayerFullManifest:    "full-manifest",
	LayerHistoryManifest: "history-manifest",
	LayerRequirements:    "requirements",
	LayerLeafPackages:    "leaf-packages",
	LayerPipPackages:     "pip-packages",
	LayerPortablePack:    "portable-pack",
}

var layerFiles = map[Layer]string{
	LayerExplicitLock:    "spec-file.txt",
	LayerFullManifest:    "env.yaml",
	LayerHistoryManifest: "env_from_history.yaml",
	LayerRequirements:    "requirements.txt",
	LayerLeafPackages:    "nondep_packages.txt",
	LayerPipPackages:     "pip_requirements.txt",
	LayerPortablePack:    "conda_pack.tar.gz",
}

// String returns the layer name.
func (l Layer) String() string {
	if n, ok := layerNames[l]; ok {
		return n
	}
	return "unknown"
}

// FileName returns the file name the layer is exported to.
func (l Layer) FileName() string {
	return layerFiles[l]
}

// Descriptor records where each exported layer of one environment lives.
type Descriptor struct {
	Env   Activation
	Files map[Layer]string
}

// NewDescriptor returns an empty descriptor for env.
func NewDescriptor(env Activation) *Descriptor {
	return &Descriptor{Env: env, Files: make(map[Layer]string)}
}

// Set records the exported file of a layer.
func (d *Descriptor) Set(l Layer, file string) {
	d.Files[l] = file
}

// Path returns the exported file of a layer.
func (d *Descriptor) Path(l Layer) (string, bool) {
	p, ok := d.Files[l]
	return p, ok
}

// Layers returns the exported layers in LayerOrder.
func (d *Descriptor) Layers() []Layer {
	out := make([]Layer, 0, len(d.Files))
	for _, l := range LayerOrder {
		if _, ok := d.Files[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
