// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package governor

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-governor/internal/logger"
	"github.com/MKhiriev/go-sync-governor/models"
	"github.com/spf13/afero"
)

//go:generate mockgen -source=housekeeper.go -destination=../mock/housekeeper_mock.go -package=mock

// Directories managed by [FSHousekeeper], relative to its root.
const (
	CacheDir   = "cache"
	TempDir    = "tmp"
	DataDir    = "data"
	ArchiveDir = "archive"
)

// Housekeeper performs the filesystem work behind the default strategies.
type Housekeeper interface {
	ClearCache(ctx context.Context) error
	ArchiveOldData(ctx context.Context) (models.ArchiveReport, error)
	CompressData(ctx context.Context) error
	DeleteTempFiles(ctx context.Context) error
}

// FSHousekeeper implements [Housekeeper] over an afero filesystem rooted at
// the data directory.
type FSHousekeeper struct {
	fs              afero.Fs
	root            string
	archiveMaxAge   time.Duration
	compressMinSize int64
	logger          *logger.Logger
	now             func() time.Time
}

// NewFSHousekeeper creates a housekeeper working under root on fs.
func NewFSHousekeeper(fs afero.Fs, root string, cfg Config, log *logger.Logger) *FSHousekeeper {
	if log == nil {
		log = logger.Nop()
	}
	return &FSHousekeeper{
		fs:              fs,
		root:            root,
		archiveMaxAge:   cfg.ArchiveMaxAge,
		compressMinSize: cfg.CompressMinSize,
		logger:          log.Component("housekeeper"),
		now:             time.Now,
	}
}

// Init creates the managed directories.
func (h *FSHousekeeper) Init() error {
	for _, dir := range []string{CacheDir, TempDir, DataDir, ArchiveDir} {
		if err := h.fs.MkdirAll(h.path(dir), 0o755); err != nil {
			return fmt.Errorf("create %s dir: %w", dir, err)
		}
	}
	return nil
}

// ClearCache empties the cache directory.
func (h *FSHousekeeper) ClearCache(ctx context.Context) error {
	return h.emptyDir(ctx, CacheDir)
}

// DeleteTempFiles empties the temp directory.
func (h *FSHousekeeper) DeleteTempFiles(ctx context.Context) error {
	return h.emptyDir(ctx, TempDir)
}

// ArchiveOldData packs data files older than the archive age into one
// tar.gz under the archive directory and removes the originals. No archive
// is written when nothing is old enough.
func (h *FSHousekeeper) ArchiveOldData(ctx context.Context) (models.ArchiveReport, error) {
	now := h.now()
	report := models.ArchiveReport{At: now}
	cutoff := now.Add(-h.archiveMaxAge)

	files, err := h.dataFiles(ctx, func(info os.FileInfo) bool {
		return info.ModTime().Before(cutoff)
	})
	if err != nil || len(files) == 0 {
		return report, err
	}

	if err = h.fs.MkdirAll(h.path(ArchiveDir), 0o755); err != nil {
		return report, fmt.Errorf("create archive dir: %w", err)
	}
	name := h.path(ArchiveDir, fmt.Sprintf("data-%s.tar.gz", now.UTC().Format("20060102T150405.000000000")))
	bytes, err := h.writeTarGz(ctx, name, files)
	if err != nil {
		_ = h.fs.Remove(name)
		return report, err
	}

	for _, f := range files {
		if err = h.fs.Remove(f); err != nil {
			return report, fmt.Errorf("remove archived file: %w", err)
		}
	}

	report.Files = len(files)
	report.Bytes = bytes
	h.logger.Info().
		Str("archive", name).
		Int("files", report.Files).
		Int64("bytes", report.Bytes).
		Msg("old data archived")
	return report, nil
}

// CompressData gzips uncompressed data files above the size threshold in
// place, replacing name with name.gz.
func (h *FSHousekeeper) CompressData(ctx context.Context) error {
	files, err := h.dataFiles(ctx, func(info os.FileInfo) bool {
		return info.Size() > h.compressMinSize && !strings.HasSuffix(info.Name(), ".gz")
	})
	if err != nil {
		return err
	}

	for _, f := range files {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = h.gzipFile(f); err != nil {
			return err
		}
	}
	if len(files) > 0 {
		h.logger.Info().Int("files", len(files)).Msg("data compressed")
	}
	return nil
}

func (h *FSHousekeeper) path(elem ...string) string {
	return filepath.Join(append([]string{h.root}, elem...)...)
}

func (h *FSHousekeeper) emptyDir(ctx context.Context, dir string) error {
	p := h.path(dir)
	entries, err := afero.ReadDir(h.fs, p)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s dir: %w", dir, err)
	}

	for _, e := range entries {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = h.fs.RemoveAll(filepath.Join(p, e.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", e.Name(), err)
		}
	}
	h.logger.Debug().Str("dir", dir).Int("entries", len(entries)).Msg("directory emptied")
	return nil
}

// dataFiles lists regular files under the data directory matching keep.
func (h *FSHousekeeper) dataFiles(ctx context.Context, keep func(os.FileInfo) bool) ([]string, error) {
	root := h.path(DataDir)
	ok, err := afero.DirExists(h.fs, root)
	if err != nil || !ok {
		return nil, err
	}

	var files []string
	err = afero.Walk(h.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.Mode().IsRegular() && keep(info) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk data dir: %w", err)
	}
	return files, nil
}

func (h *FSHousekeeper) writeTarGz(ctx context.Context, name string, files []string) (int64, error) {
	out, err := h.fs.Create(name)
	if err != nil {
		return 0, fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	var total int64
	base := h.path(DataDir)
	for _, f := range files {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		n, err := h.addToTar(tw, base, f)
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err = tw.Close(); err != nil {
		return 0, fmt.Errorf("close tar: %w", err)
	}
	if err = gw.Close(); err != nil {
		return 0, fmt.Errorf("close gzip: %w", err)
	}
	return total, out.Close()
}

func (h *FSHousekeeper) addToTar(tw *tar.Writer, base, path string) (int64, error) {
	in, err := h.fs.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return 0, fmt.Errorf("tar header %s: %w", path, err)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return 0, err
	}
	hdr.Name = filepath.ToSlash(rel)

	if err = tw.WriteHeader(hdr); err != nil {
		return 0, fmt.Errorf("write tar header: %w", err)
	}
	n, err := io.Copy(tw, in)
	if err != nil {
		return 0, fmt.Errorf("write %s to archive: %w", path, err)
	}
	return n, nil
}

func (h *FSHousekeeper) gzipFile(path string) error {
	in, err := h.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	target := path + ".gz"
	out, err := h.fs.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	gw := gzip.NewWriter(out)
	_, err = io.Copy(gw, in)
	if err == nil {
		err = gw.Close()
	}
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = h.fs.Remove(target)
		return fmt.Errorf("compress %s: %w", path, err)
	}

	in.Close()
	if err = h.fs.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
