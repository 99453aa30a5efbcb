package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/notation/html"
)

// maxLineLength is the longest input line we accept.
const maxLineLength = 1048576

// Load reads the lines of a text file. The file must be a regular file.
// Files with an extension of .html or .htm are parsed as HTML, taking their
// lines from the text content of the document.
func Load(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	f, err := os.Open(path) // just open for read access
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		tracer().Debugf("loading expressions from HTML file %s", path)
		return html.LinesFromHTML(f)
	}
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tracer().Debugf("loaded %d lines from %s", len(lines), path)
	return lines, nil
}
