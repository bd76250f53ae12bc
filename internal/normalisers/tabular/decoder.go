// Package tabular decodes the delimited text tables of a network export.
//
// Exports may prepend free-text notes before the real header row, so the
// decoder scans the first lines for a known header before reading fields.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.TableDecoder = (*Decoder)(nil)

// headerScanLimit is how many leading lines are searched for the header row.
const headerScanLimit = 10

// headerMarkers identify a header row. Matched against the lowercased line.
var headerMarkers = []string{
	"first name",
	"skill name",
	"sharelink",
	"conversation id",
	"endorsement date",
	"company name",
	"type of inference",
	"sent at",
}

// fieldAliases maps a lowercased header spelling to its canonical field name.
var fieldAliases = buildAliases(map[string][]string{
	domain.FieldFirstName:     {"firstname"},
	domain.FieldLastName:      {"lastname"},
	domain.FieldURL:           {"profile url"},
	domain.FieldEmail:         {"email"},
	domain.FieldCompany:       nil,
	domain.FieldPosition:      nil,
	domain.FieldConnectedOn:   nil,
	domain.FieldFrom:          {"sender"},
	domain.FieldTo:            {"recipient", "recipients"},
	domain.FieldDate:          nil,
	domain.FieldContent:       nil,
	domain.FieldSkillName:     nil,
	domain.FieldName:          nil,
	domain.FieldEndorserFirst: nil,
	domain.FieldEndorserLast:  nil,
	domain.FieldJobTitle:      nil,
	domain.FieldText:          nil,
	domain.FieldShareLink:     {"share link"},
	domain.FieldCommentary:    {"share commentary", "commentary"},
	domain.FieldType:          nil,
	domain.FieldInference:     nil,
	domain.FieldCategory:      nil,
	domain.FieldDirection:     nil,
	domain.FieldCompanyName:   nil,
	domain.FieldTitle:         nil,
})

func buildAliases(canonical map[string][]string) map[string]string {
	aliases := make(map[string]string)
	for name, extra := range canonical {
		aliases[strings.ToLower(name)] = name
		for _, alias := range extra {
			aliases[alias] = name
		}
	}
	return aliases
}

// Options configures a Decoder.
type Options struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune
}

// Decoder parses export tables.
type Decoder struct {
	delimiter rune
}

// New creates a decoder. Options are optional.
func New(opts ...Options) *Decoder {
	d := &Decoder{delimiter: ','}
	if len(opts) > 0 && opts[0].Delimiter != 0 {
		d.delimiter = opts[0].Delimiter
	}
	return d
}

// Decode parses content into one record per non-blank data row.
// Rows shorter than the header resolve missing fields to "".
func (d *Decoder) Decode(content []byte) ([]domain.Record, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not UTF-8 text", domain.ErrMalformedInput)
	}

	text := strings.TrimPrefix(string(content), "\ufeff")
	lines := strings.Split(text, "\n")

	start, ok := findHeader(lines)
	if !ok {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	r.Comma = d.delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading header: %v", domain.ErrMalformedInput, err)
	}
	names := canonicalHeader(header)

	var records []domain.Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
		}
		if isBlank(fields) {
			continue
		}

		rec := make(domain.Record, len(names))
		for i, name := range names {
			if name == "" {
				continue
			}
			value := ""
			if i < len(fields) {
				value = strings.TrimSpace(fields[i])
			}
			rec[name] = value
		}
		records = append(records, rec)
	}

	return records, nil
}

// findHeader returns the index of the header line. The first line within
// the scan limit containing a known marker wins; otherwise the first
// non-blank line is used. ok is false when the text has no content.
func findHeader(lines []string) (int, bool) {
	first := -1
	for i := 0; i < len(lines) && i < headerScanLimit; i++ {
		line := strings.ToLower(lines[i])
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first < 0 {
			first = i
		}
		for _, marker := range headerMarkers {
			if strings.Contains(line, marker) {
				return i, true
			}
		}
	}
	if first >= 0 {
		return first, true
	}
	for i := headerScanLimit; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i, true
		}
	}
	return 0, false
}

// canonicalHeader trims header names and resolves known aliases.
func canonicalHeader(header []string) []string {
	names := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if canonical, ok := fieldAliases[strings.ToLower(h)]; ok {
			h = canonical
		}
		names[i] = h
	}
	return names
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
