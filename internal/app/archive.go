package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/reso/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// ArchiveSource names where an archive is read from. At most one field may
// be set.
type ArchiveSource struct {
	Filename string
	URL      string
	S3URL    string
}

func (s ArchiveSource) set() []string {
	var names []string
	if s.Filename != "" {
		names = append(names, "filename")
	}
	if s.URL != "" {
		names = append(names, "url")
	}
	if s.S3URL != "" {
		names = append(names, "s3-url")
	}
	return names
}

func (s ArchiveSource) empty() bool {
	return len(s.set()) == 0
}

func (s ArchiveSource) validate(required bool) error {
	switch names := s.set(); {
	case len(names) > 1:
		return zerr.Wrap(domain.ErrConflictingOptions, strings.Join(names, ", "))
	case len(names) == 0 && required:
		return zerr.Wrap(domain.ErrMissingOption, "one of filename, url or s3-url is required")
	}
	return nil
}

// fetchArchive makes the archive of src available as a local file. The
// returned cleanup removes downloaded copies.
func (a *App) fetchArchive(ctx context.Context, src ArchiveSource) (string, func(), error) {
	if src.Filename != "" {
		path, err := filepath.Abs(src.Filename)
		if err != nil {
			return "", nil, zerr.Wrap(err, "failed to resolve archive path")
		}
		return path, func() {}, nil
	}

	dir, err := afero.TempDir(a.FS, "", domain.AppName+"-archive-")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create download directory")
	}
	cleanup := func() { _ = a.FS.RemoveAll(dir) }
	path := filepath.Join(dir, domain.ArchiveFileName)

	switch {
	case src.URL != "":
		err = a.Fetcher.Fetch(ctx, src.URL, path)
	case src.S3URL != "":
		err = a.Objects.Download(ctx, src.S3URL, path)
	}
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// ArchiveCreateOptions configuration for the ArchiveCreate method. Exactly
// one of Filename, S3URL and Deposit.OrgUnitID selects the destination.
type ArchiveCreateOptions struct {
	Filename string
	S3URL    string
	Deposit  ports.DepositRequest
}

// ArchiveCreate writes the project files and every exportable layer of the
// local environment to an archive, then stores or publishes it.
func (a *App) ArchiveCreate(ctx context.Context, opts ArchiveCreateOptions) error {
	var dests []string
	for name, v := range map[string]string{"filename": opts.Filename, "s3-url": opts.S3URL, "org-unit-id": opts.Deposit.OrgUnitID} {
		if v != "" {
			dests = append(dests, name)
		}
	}
	switch {
	case len(dests) > 1:
		return zerr.Wrap(domain.ErrConflictingOptions, "only one of filename, s3-url or org-unit-id may be given")
	case len(dests) == 0:
		return zerr.Wrap(domain.ErrMissingOption, "one of filename, s3-url or org-unit-id is required")
	}
	project, err := a.project()
	if err != nil {
		return err
	}

	if opts.Filename != "" {
		path, err := filepath.Abs(opts.Filename)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve archive path")
		}
		if err := a.writeArchive(ctx, project, path); err != nil {
			return err
		}
		a.Logger.Info("Successfully archived the project to " + path)
		return nil
	}

	dir, err := afero.TempDir(a.FS, "", domain.AppName+"-archive-")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}
	defer func() { _ = a.FS.RemoveAll(dir) }()
	path := filepath.Join(dir, domain.ArchiveFileName)
	if err := a.writeArchive(ctx, project, path); err != nil {
		return err
	}

	if opts.S3URL != "" {
		if err := a.Objects.Upload(ctx, opts.S3URL, path); err != nil {
			return err
		}
		a.Logger.Info("Successfully archived the project to " + opts.S3URL)
		return nil
	}
	req := opts.Deposit
	req.ArchivePath = path
	id, err := a.Depositor.Deposit(ctx, req)
	if err != nil {
		return err
	}
	a.Logger.Info(fmt.Sprintf("Successfully archived the project in deposit '%s'", id))
	return nil
}

func (a *App) writeArchive(ctx context.Context, project domain.Project, path string) error {
	f, err := a.FS.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", path)
	}
	desc, err := a.Reconciler.Archive(ctx, reconcile.ArchiveRequest{Project: project, Writer: f})
	if cerr := f.Close(); err == nil && cerr != nil {
		err = zerr.With(zerr.Wrap(cerr, "failed to write archive"), "path", path)
	}
	if err != nil {
		_ = a.FS.Remove(path)
		return err
	}
	a.Logger.Debug(fmt.Sprintf("Archived %d environment layer(s)", len(desc.Layers())))
	return nil
}

// ArchiveLoadOptions configuration for the ArchiveLoad method.
type ArchiveLoadOptions struct {
	Source    ArchiveSource
	AssumeYes bool
}

// ArchiveLoad replaces the files and the environment of the current project
// with the contents of an archive.
func (a *App) ArchiveLoad(ctx context.Context, opts ArchiveLoadOptions) error {
	if err := opts.Source.validate(true); err != nil {
		return err
	}
	project, err := a.project()
	if err != nil {
		return err
	}
	a.assumeYes(opts.AssumeYes)
	ok, err := a.Prompter.Confirm("This operation will overwrite the contents of your project. Continue?", false)
	if err != nil {
		return err
	}
	if !ok {
		a.Logger.Info("Loading of archive was aborted")
		return nil
	}

	path, cleanup, err := a.fetchArchive(ctx, opts.Source)
	if err != nil {
		return err
	}
	defer cleanup()
	report, err := a.Reconciler.Restore(ctx, reconcile.RestoreRequest{ArchivePath: path, Project: project})
	if err != nil {
		return err
	}
	for _, at := range report.Report.Attempts {
		a.Logger.Debug(fmt.Sprintf("%s: %s", at.Strategy, at.Outcome))
	}
	a.Logger.Info(fmt.Sprintf("Restored archive created by reso %s on %s into environment %s",
		report.Header.Version, report.Header.CreatedOn.Format("2006-01-02"), report.Env))
	return nil
}
