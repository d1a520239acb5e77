package conda

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/adapters/shell"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Exporter = (*Exporter)(nil)

// Exporter writes descriptor layers of a local environment.
type Exporter struct {
	local  ports.LocalExecutor
	fs     afero.Fs
	logger ports.Logger
}

// NewExporter returns an Exporter writing layer files to fs.
func NewExporter(local ports.LocalExecutor, fs afero.Fs, logger ports.Logger) *Exporter {
	return &Exporter{local: local, fs: fs, logger: logger}
}

// Export writes layer of env to dest.
func (e *Exporter) Export(ctx context.Context, env domain.Activation, layer domain.Layer, dest string) error {
	e.logger.Debug("Exporting " + layer.String() + " of " + env.String() + " to " + dest)

	var (
		text string
		err  error
	)
	switch layer {
	case domain.LayerExplicitLock:
		text, err = e.output(ctx, "conda list "+targetFlag(env)+" --explicit")
	case domain.LayerFullManifest:
		text, err = e.output(ctx, "conda env export "+targetFlag(env))
	case domain.LayerHistoryManifest:
		text, err = e.output(ctx, "conda env export "+targetFlag(env)+" --from-history")
	case domain.LayerRequirements:
		text, err = e.requirements(ctx, env)
	case domain.LayerLeafPackages:
		text, err = e.leaves(ctx, env)
	case domain.LayerPipPackages:
		text, err = e.pip(ctx, env)
	case domain.LayerPortablePack:
		return e.pack(ctx, env, dest)
	default:
		return zerr.With(zerr.New("unknown descriptor layer"), "layer", layer.String())
	}
	if err != nil {
		return err
	}
	return e.write(dest, text)
}

func (e *Exporter) write(dest, text string) error {
	if err := e.fs.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create layer folder"), "path", dest)
	}
	if err := afero.WriteFile(e.fs, dest, []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write layer"), "path", dest)
	}
	return nil
}

func (e *Exporter) output(ctx context.Context, cmd string) (string, error) {
	res, err := e.local.Run(ctx, cmd)
	if err != nil {
		return "", err
	}
	if !res.Succeeded() {
		return "", domain.NewCommandError(domain.LocalTarget(), cmd, res)
	}
	return res.Output, nil
}

type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (e *Exporter) installed(ctx context.Context, env domain.Activation) ([]domain.Package, error) {
	cmd := "conda list " + targetFlag(env) + " --json"
	out, err := e.output(ctx, cmd)
	if err != nil {
		return nil, err
	}
	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse package list"), "command", cmd)
	}
	pkgs := make([]domain.Package, 0, len(entries))
	for _, en := range entries {
		if en.Name == "" || en.Version == "" {
			e.logger.Warn("Could not get name and version of package " + en.Name + ", will skip it")
			continue
		}
		pkgs = append(pkgs, domain.Package{Name: en.Name, Version: en.Version})
	}
	return pkgs, nil
}

func (e *Exporter) requirements(ctx context.Context, env domain.Activation) (string, error) {
	pkgs, err := e.installed(ctx, env)
	if err != nil {
		return "", err
	}
	return lines(pkgs), nil
}

// leaves pins the packages no other package depends on, as reported by
// conda-tree. conda-tree itself is installed into the environment first and
// filtered out with the other tooling packages. When conda-tree cannot be
// installed or run, the dependency records in conda-meta are used instead.
func (e *Exporter) leaves(ctx context.Context, env domain.Activation) (string, error) {
	_, treeErr := e.output(ctx, "conda install -y "+targetFlag(env)+" -c conda-forge conda-tree")
	pkgs, err := e.installed(ctx, env)
	if err != nil {
		return "", err
	}

	var leaves []domain.Package
	if treeErr == nil {
		var out string
		if out, treeErr = e.output(ctx, ActivateCommand(domain.LocalTarget(), env)+" && conda-tree leaves"); treeErr == nil {
			leaves = domain.PinLeaves(ParseLeaves(out), pkgs)
		}
	}
	if treeErr != nil {
		e.logger.Warn("conda-tree is not available, reading package metadata instead: " + treeErr.Error())
		depends, err := e.depends(ctx, env)
		if err != nil {
			return "", err
		}
		leaves = domain.Leaves(pkgs, depends)
	}
	e.logger.Debug("Found non-dependent packages: " + lines(leaves))
	return lines(leaves), nil
}

// depends reads the conda-meta records of env.
func (e *Exporter) depends(ctx context.Context, env domain.Activation) (map[string][]string, error) {
	out, err := e.output(ctx, ActivateCommand(domain.LocalTarget(), env)+` && cat "$CONDA_PREFIX"/conda-meta/*.json`)
	if err != nil {
		return nil, err
	}
	return ParseDepends(out)
}

type metaRecord struct {
	Name    string   `json:"name"`
	Depends []string `json:"depends"`
}

// ParseDepends reads a stream of conda-meta records into a map from package
// name to the names it requires. Version constraints are dropped.
func ParseDepends(out string) (map[string][]string, error) {
	depends := make(map[string][]string)
	dec := json.NewDecoder(strings.NewReader(out))
	for {
		var rec metaRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return depends, nil
		}
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse package metadata")
		}
		for _, dep := range rec.Depends {
			if fields := strings.Fields(dep); len(fields) > 0 {
				depends[rec.Name] = append(depends[rec.Name], fields[0])
			}
		}
	}
}

// ParseLeaves reads the list printed by `conda-tree leaves`, such as
// "['pandas', 'requests']".
func ParseLeaves(out string) []string {
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "[")
	out = strings.TrimSuffix(out, "]")
	var names []string
	for _, item := range strings.Split(out, ",") {
		name := strings.Trim(strings.TrimSpace(item), `'"`)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

type manifest struct {
	Dependencies []yaml.Node `yaml:"dependencies"`
}

func (e *Exporter) pip(ctx context.Context, env domain.Activation) (string, error) {
	out, err := e.output(ctx, "conda env export "+targetFlag(env))
	if err != nil {
		return "", err
	}
	pins, err := PipPins(out)
	if err != nil {
		return "", err
	}
	return strings.Join(pins, "\n"), nil
}

// PipPins returns the entries of the pip section of an environment manifest.
func PipPins(doc string) ([]string, error) {
	var m manifest
	if err := yaml.Unmarshal([]byte(doc), &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment manifest")
	}
	for _, dep := range m.Dependencies {
		if dep.Kind != yaml.MappingNode {
			continue
		}
		var section map[string][]string
		if err := dep.Decode(&section); err != nil {
			continue
		}
		if pins, ok := section["pip"]; ok {
			return pins, nil
		}
	}
	return nil, nil
}

func (e *Exporter) pack(ctx context.Context, env domain.Activation, dest string) error {
	if err := e.fs.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create layer folder"), "path", dest)
	}
	e.logger.Debug("Installing conda-pack...")
	if _, err := e.output(ctx, "conda install -y -c conda-forge conda-pack"); err != nil {
		return err
	}
	_, err := e.output(domain.WithEcho(ctx), "conda pack "+targetFlag(env)+" --force -o "+shell.Quote(dest))
	return err
}

func lines(pkgs []domain.Package) string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.String()
	}
	return strings.Join(out, "\n")
}
