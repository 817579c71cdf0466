// Package archive classifies the entries of an uploaded ZIP archive
// ahead of bulk gallery ingestion.
package archive

import (
	"archive/zip"
	"bytes"
	"image"
	"io"
	"path"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Class is the classification of one archive entry.
type Class int

const (
	ClassDirectory Class = iota
	ClassMacJunk
	ClassHiddenFork
	ClassBadExtension
	ClassEmpty
	ClassAccepted
)

// DefaultAllowedExtensions lists the image extensions accepted for
// gallery uploads.
var DefaultAllowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// Entry is one classified archive entry. Data and DecodeFailed are only
// meaningful for ClassAccepted.
type Entry struct {
	Name         string
	Base         string
	Ext          string
	Class        Class
	Data         []byte
	DecodeFailed bool
}

// Stats accumulates per-classification counters over one scan.
type Stats struct {
	Total        int `json:"total"`
	Directories  int `json:"directories"`
	MacJunk      int `json:"mac_junk"`
	HiddenFork   int `json:"hidden_fork"`
	BadExtension int `json:"bad_extension"`
	Empty        int `json:"empty"`
	DecodeFailed int `json:"decode_failed"`
	SaveFailed   int `json:"save_failed"`
	Saved        int `json:"saved"`
}

// Scanner walks a ZIP archive once, in archive order, classifying each
// entry and keeping running counters.
type Scanner struct {
	files   []*zip.File
	allowed map[string]bool
	stats   Stats
	idx     int
}

// NewScanner returns a scanner over r using the given extension
// allow-list (defaults to DefaultAllowedExtensions when empty).
func NewScanner(r *zip.Reader, allowedExts ...string) *Scanner {
	if len(allowedExts) == 0 {
		allowedExts = DefaultAllowedExtensions
	}
	allowed := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = true
	}
	return &Scanner{files: r.File, allowed: allowed}
}

// Next returns the next classified entry, or false when the archive is
// exhausted. Each scanner makes exactly one pass.
func (s *Scanner) Next() (Entry, bool) {
	if s.idx >= len(s.files) {
		return Entry{}, false
	}
	f := s.files[s.idx]
	s.idx++
	s.stats.Total++

	entry := s.classify(f)
	switch entry.Class {
	case ClassDirectory:
		s.stats.Directories++
	case ClassMacJunk:
		s.stats.MacJunk++
	case ClassHiddenFork:
		s.stats.HiddenFork++
	case ClassBadExtension:
		s.stats.BadExtension++
	case ClassEmpty:
		s.stats.Empty++
	case ClassAccepted:
		if entry.DecodeFailed {
			s.stats.DecodeFailed++
		}
	}
	return entry, true
}

// Stats returns the counters accumulated so far. SaveFailed and Saved
// belong to the ingestion step and stay zero here.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// RecordSaved bumps the saved counter on behalf of the ingestor.
func (s *Scanner) RecordSaved() {
	s.stats.Saved++
}

// RecordSaveFailed bumps the save-failure counter on behalf of the
// ingestor.
func (s *Scanner) RecordSaveFailed() {
	s.stats.SaveFailed++
}

func (s *Scanner) classify(f *zip.File) Entry {
	name := f.Name
	base := path.Base(strings.TrimSuffix(name, "/"))
	ext := strings.ToLower(path.Ext(base))

	entry := Entry{Name: name, Base: base, Ext: ext}

	if f.FileInfo().IsDir() {
		entry.Class = ClassDirectory
		return entry
	}

	if topSegment(name) == "__MACOSX" {
		entry.Class = ClassMacJunk
		return entry
	}

	if strings.HasPrefix(base, "._") {
		entry.Class = ClassHiddenFork
		return entry
	}

	if !s.allowed[ext] {
		entry.Class = ClassBadExtension
		return entry
	}

	data, err := readEntry(f)
	if err != nil || len(data) == 0 {
		entry.Class = ClassEmpty
		return entry
	}

	entry.Class = ClassAccepted
	entry.Data = data
	// Best effort integrity check. A payload that does not decode is
	// still accepted, only counted.
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		entry.DecodeFailed = true
	}
	return entry
}

func topSegment(name string) string {
	name = strings.TrimLeft(name, "/")
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i]
	}
	return name
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
