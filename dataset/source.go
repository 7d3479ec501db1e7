package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Source provides the MNIST blobs for a directory that does not exist yet.
// The MNIST loader invokes it only when the default data directory is absent.
type Source interface {
	Fetch(dir string) error
}

// DiskSource is the local-disk-only source: it never downloads anything and
// reports missing data as an error.
type DiskSource struct{}

// Fetch implements Source.
func (DiskSource) Fetch(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingData, dir)
}

// HTTPSource downloads the gzip-compressed MNIST originals from a mirror and
// decompresses them in place, reproducing the plain-file layout the IDX
// reader expects.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// Fetch implements Source. Already-present files are not downloaded again.
func (s *HTTPSource) Fetch(dir string) error {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	for _, name := range idxFiles {
		gzPath := filepath.Join(dir, name+".gz")
		if err := download(client, s.BaseURL+name+".gz", gzPath); err != nil {
			return fmt.Errorf("failed to download %s: %w", name, err)
		}
		if err := gunzip(gzPath, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to decompress %s: %w", name, err)
		}
	}
	return nil
}

func download(client *http.Client, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func gunzip(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	zr, err := gzip.NewReader(in)
	if err != nil {
		return err
	}
	defer zr.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, zr)
	return err
}
