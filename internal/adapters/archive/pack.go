package archive

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pack writes every file below srcDir into a zstd compressed archive at dst,
// creating the parent directory of dst.
// Entry names are slash separated paths relative to srcDir, prefixed with prefix.
// It returns the number of packed files.
func Pack(srcDir, dst, prefix string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrArchivePackFailed.Error()), "archive", dst)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrArchivePackFailed.Error()), "archive", dst)
	}
	defer func() { _ = out.Close() }()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())

	count := 0
	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if err := addFile(zw, path, prefix+filepath.ToSlash(rel)); err != nil {
			return err
		}
		count++
		return nil
	})
	if walkErr != nil {
		_ = zw.Close()
		return 0, zerr.With(zerr.Wrap(walkErr, domain.ErrArchivePackFailed.Error()), "dir", srcDir)
	}

	if err := zw.Close(); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrArchivePackFailed.Error()), "archive", dst)
	}
	return count, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	// #nosec G304 -- path comes from walking the layer directory
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zstd.ZipMethodWinZip})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
