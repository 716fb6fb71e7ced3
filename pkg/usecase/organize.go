package usecase

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
	"github.com/ibirchl/refseqfetch/pkg/utils/fsutil"
)

// organizeArchive extracts a downloaded archive into a family-scoped
// temporary directory, classifies the extracted files by naming convention
// and relocates CDS/GFF files into the output directories. The temporary
// directory is removed on every exit path.
func (uc *fetchUseCase) organizeArchive(ctx context.Context, cfg *model.RunConfig, family, archivePath string) (*model.OrganizeResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Extracting and organizing files", "archive", archivePath)

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		// OpenReader hands back a usable reader alongside ErrInsecurePath
		if zr != nil {
			_ = zr.Close()
		}
		return nil, goerr.Wrap(err, "failed to open downloaded archive",
			goerr.T(types.ErrTagExtraction),
			goerr.V("archive", archivePath))
	}
	defer zr.Close()

	tempDir, err := os.MkdirTemp("", "refseq_"+family+"_")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temporary extraction directory",
			goerr.T(types.ErrTagExtraction))
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			logger.Warn("Failed to clean up temporary directory",
				"temp_dir", tempDir,
				"error", err,
			)
		}
	}()

	bar := newExtractProgress(len(zr.File), cfg.Progress)
	for _, file := range zr.File {
		if err := extractFile(file, tempDir); err != nil {
			return nil, goerr.Wrap(err, "failed to extract archive entry",
				goerr.T(types.ErrTagExtraction),
				goerr.V("entry", file.Name))
		}
		bar.increment()
	}
	bar.finish()

	result, err := uc.relocateFiles(ctx, cfg, family, tempDir)
	if err != nil {
		return nil, err
	}

	if result.Total() == 0 {
		logger.Warn("No CDS or GFF files found in archive; assemblies may lack gene annotations")
		logInventory(ctx, tempDir)
	}
	return result, nil
}

// relocateFiles walks the extracted tree and moves every file matching an
// enabled kind into its output directory, renamed to
// {accession}_{family}.{ext}. The accession is the name of the file's
// immediate parent directory, following the tool's one-directory-per-
// accession layout.
func (uc *fetchUseCase) relocateFiles(ctx context.Context, cfg *model.RunConfig, family, tempDir string) (*model.OrganizeResult, error) {
	logger := ctxlog.From(ctx)
	result := &model.OrganizeResult{}

	err := filepath.WalkDir(tempDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		kind, ok := model.ClassifyFile(d.Name())
		if !ok || !cfg.Includes(kind) {
			return nil
		}

		accession := filepath.Base(filepath.Dir(path))
		dest := filepath.Join(cfg.OutputDir(kind), kind.OutputName(accession, family))

		if cfg.Compress {
			dest += ".gz"
			if err := fsutil.CompressFile(path, dest); err != nil {
				return err
			}
		} else {
			if err := fsutil.MovePath(path, dest); err != nil {
				return err
			}
		}

		result.Add(model.SavedFile{Kind: kind, Accession: accession, Path: dest})
		logger.Info("Saved annotation file",
			"kind", kind,
			"name", filepath.Base(dest),
		)
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to organize extracted files",
			goerr.T(types.ErrTagExtraction),
			goerr.V("family", family))
	}
	return result, nil
}

// logInventory lists every extracted file to help diagnose archives that
// yielded nothing
func logInventory(ctx context.Context, tempDir string) {
	logger := ctxlog.From(ctx)

	logger.Info("Available files in dataset:")
	_ = filepath.WalkDir(tempDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(tempDir, path)
		if relErr != nil {
			rel = path
		}
		logger.Info("  - " + rel)
		return nil
	})
}

// extractFile extracts a single archive entry under destDir, rejecting
// path-traversal entry names
func extractFile(file *zip.File, destDir string) error {
	destPath := filepath.Join(destDir, file.Name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.New("invalid file path in archive",
			goerr.V("entry", file.Name),
			goerr.V("dest", destPath))
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, file.FileInfo().Mode())
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open archive entry", goerr.V("entry", file.Name))
	}
	defer rc.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.FileInfo().Mode())
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("dest", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "failed to copy entry content", goerr.V("dest", destPath))
	}
	return nil
}

// extractProgress wraps the progress bar behind the opt-in flag so call
// sites stay unconditional
type extractProgress struct {
	bar *progressbar.ProgressBar
}

func newExtractProgress(total int, enabled bool) *extractProgress {
	if !enabled {
		return &extractProgress{}
	}
	return &extractProgress{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetDescription("extracting"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionThrottle(250*time.Millisecond),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
		),
	}
}

func (p *extractProgress) increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

func (p *extractProgress) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
