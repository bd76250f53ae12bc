package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.ExportReader = (*Reader)(nil)

// maxTableSize caps how much of a single table file is read into memory.
const maxTableSize = 256 << 20

// tableFiles maps lowercased export file names to tables.
var tableFiles = map[string]domain.Table{
	"connections.csv":               domain.TableConnections,
	"messages.csv":                  domain.TableMessages,
	"skills.csv":                    domain.TableSkills,
	"endorsement_received_info.csv": domain.TableEndorsements,
	"recommendations_received.csv":  domain.TableRecommendations,
	"positions.csv":                 domain.TablePositions,
	"invitations.csv":               domain.TableInvitations,
	"ad_targeting.csv":              domain.TableAdTargeting,
	"inferences_about_you.csv":      domain.TableInferences,
	"shares.csv":                    domain.TableShares,
}

// TableFor returns the table a file name belongs to.
func TableFor(name string) (domain.Table, bool) {
	t, ok := tableFiles[strings.ToLower(filepath.Base(name))]
	return t, ok
}

// Reader loads exports from directories and zip archives.
type Reader struct {
	decoder driven.TableDecoder
}

// NewReader creates an export reader that decodes tables with decoder.
func NewReader(decoder driven.TableDecoder) *Reader {
	return &Reader{decoder: decoder}
}

// Read loads every known table found at path.
func (r *Reader) Read(ctx context.Context, path string) (*domain.Export, error) {
	if r.decoder == nil {
		return nil, domain.ErrNotImplemented
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportUnreadable, err)
	}

	var files map[domain.Table]opener
	if info.IsDir() {
		files, err = scanDir(path)
	} else {
		var zr *zip.ReadCloser
		zr, err = zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a directory or zip archive", domain.ErrExportUnreadable, path)
		}
		defer zr.Close()
		files = scanZip(&zr.Reader)
	}
	if err != nil {
		return nil, err
	}

	export := &domain.Export{Source: path}
	for _, table := range domain.AllTables() {
		open, ok := files[table]
		if !ok {
			logger.Debug("export: %s not present", table)
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := readAll(open)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", table, err)
		}
		records, err := r.decoder.Decode(content)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", table, err)
		}
		if records == nil {
			records = []domain.Record{}
		}
		logger.Debug("export: %s has %d rows", table, len(records))
		export.Set(table, records)
	}
	return export, nil
}

// opener opens one table file for reading.
type opener func() (io.ReadCloser, error)

// scanDir finds table files anywhere under root. When a name repeats, the
// lexically first path wins.
func scanDir(root string) (map[domain.Table]opener, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := TableFor(path); ok {
			paths = append(paths, path)
		} else {
			logger.Debug("export: ignoring %s", path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportUnreadable, err)
	}

	sort.Strings(paths)
	files := make(map[domain.Table]opener)
	for _, p := range paths {
		table, _ := TableFor(p)
		if _, seen := files[table]; seen {
			continue
		}
		files[table] = func() (io.ReadCloser, error) { return os.Open(p) }
	}
	return files, nil
}

// scanZip finds table files anywhere in the archive. When a name repeats,
// the lexically first entry wins.
func scanZip(zr *zip.Reader) map[domain.Table]opener {
	entries := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, ok := TableFor(f.Name); ok {
			entries = append(entries, f)
		} else {
			logger.Debug("export: ignoring %s", f.Name)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	files := make(map[domain.Table]opener)
	for _, f := range entries {
		table, _ := TableFor(f.Name)
		if _, seen := files[table]; seen {
			continue
		}
		files[table] = f.Open
	}
	return files
}

func readAll(open opener) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, maxTableSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxTableSize {
		return nil, fmt.Errorf("%w: table exceeds %d bytes", domain.ErrMalformedInput, maxTableSize)
	}
	return content, nil
}
