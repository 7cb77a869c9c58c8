// Package static serves the embedded stylesheet and javascript bundles.
package static

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

//go:embed css/*.css
var stylesheetFiles embed.FS

//go:embed js/*.js
var javascriptFiles embed.FS

// Static asset bundles, keyed by file name.
var (
	StylesheetBundles         map[string][]byte
	StylesheetBundleChecksums map[string]string
	JavascriptBundles         map[string][]byte
	JavascriptBundleChecksums map[string]string
)

// CalculateBundleChecksums loads the embedded assets and computes their cache
// busting checksums.
func CalculateBundleChecksums(ctx context.Context) error {
	slog.Info("calculate static asset checksums")

	var err error
	StylesheetBundles, StylesheetBundleChecksums, err = loadBundles(ctx,
		stylesheetFiles, "css")
	if err != nil {
		return err
	}

	JavascriptBundles, JavascriptBundleChecksums, err = loadBundles(ctx,
		javascriptFiles, "js")
	return err
}

func loadBundles(ctx context.Context, fsys embed.FS, dir string,
) (map[string][]byte, map[string]string, error) {
	dirEntries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("ui/static: failed read %s/: %w", dir, err)
	}

	bundles := make(map[string][]byte, len(dirEntries))
	checksums := make(map[string]string, len(dirEntries))

	for _, dirEntry := range dirEntries {
		if ctx.Err() != nil {
			return nil, nil, fmt.Errorf(
				"ui/static: break loop over %s/: %w", dir, context.Cause(ctx))
		}

		fullName := dir + "/" + dirEntry.Name()
		data, err := fs.ReadFile(fsys, fullName)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"ui/static: failed read %q: %w", fullName, err)
		}

		bundles[dirEntry.Name()] = data
		checksums[dirEntry.Name()] = hashFromBytes(data)
	}
	return bundles, checksums, nil
}

func hashFromBytes(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// StylesheetBundle returns the named stylesheet, or nil if unknown.
func StylesheetBundle(filename string) []byte {
	return StylesheetBundles[filename]
}

// JavascriptBundle returns the named script, or nil if unknown.
func JavascriptBundle(filename string) []byte {
	return JavascriptBundles[filename]
}
