package tailwind

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bnema/themeroot/internal/domain/entity"
)

// GlobMatches is the result of one content glob.
type GlobMatches struct {
	Pattern string
	Files   []string
}

// ContentScan reports which files a profile's content globs select.
type ContentScan struct {
	Profile string
	Globs   []GlobMatches
	// Files is the sorted union of every glob's matches.
	Files []string
}

// Empty reports whether no glob matched any file.
func (s ContentScan) Empty() bool {
	return len(s.Files) == 0
}

// ScanContent evaluates p.Content against fsys. Globs are relative to the
// root of fsys; a leading "./" is ignored.
func ScanContent(fsys fs.FS, p entity.BuildProfile) (ContentScan, error) {
	scan := ContentScan{Profile: p.Name}
	seen := make(map[string]struct{})

	for _, pattern := range p.Content {
		clean := strings.TrimPrefix(pattern, "./")
		if !doublestar.ValidatePattern(clean) {
			return scan, fmt.Errorf("invalid content glob %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, clean, doublestar.WithFilesOnly())
		if err != nil {
			return scan, fmt.Errorf("scan %q: %w", pattern, err)
		}
		sort.Strings(matches)
		scan.Globs = append(scan.Globs, GlobMatches{Pattern: pattern, Files: matches})
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			scan.Files = append(scan.Files, m)
		}
	}
	sort.Strings(scan.Files)
	return scan, nil
}
