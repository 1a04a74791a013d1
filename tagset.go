package atbtag

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Embedded copies of the default tables under data/. LoadTagset reads the
// same three files from an external directory when a customized tagset is
// needed (for example to track a different treebank release).
var (
	//go:embed data/pos_tags.txt
	embeddedPOSTags string

	//go:embed data/verb_tags.txt
	embeddedVerbTags string

	//go:embed data/penn_map.txt
	embeddedPennMap string
)

// Tagset holds the static tables a Decoder consults.
// A Tagset is read-only after construction and safe for concurrent use.
type Tagset struct {
	// pos is the canonical part-of-speech vocabulary.
	pos map[string]struct{}

	// verbs is the subset of pos naming verbal categories.
	verbs map[string]struct{}

	// penn maps an ATB tag to its Penn (Bies) equivalent.
	penn map[string]string
}

var (
	defaultTagsetOnce sync.Once
	defaultTagset     *Tagset
)

// DefaultTagset returns the Tagset built from the tables compiled into the
// package. The same instance is returned on every call.
func DefaultTagset() *Tagset {
	defaultTagsetOnce.Do(func() {
		ts, err := parseTagset(
			strings.NewReader(embeddedPOSTags),
			strings.NewReader(embeddedVerbTags),
			strings.NewReader(embeddedPennMap),
		)
		if err != nil {
			// The embedded tables are part of the build; failing to parse
			// them is a packaging error, not a runtime condition.
			panic(fmt.Sprintf("atbtag: embedded tagset: %v", err))
		}
		defaultTagset = ts
	})
	return defaultTagset
}

// LoadTagset reads pos_tags.txt, verb_tags.txt and penn_map.txt from dir
// and returns the resulting Tagset.
func LoadTagset(dir string) (*Tagset, error) {
	open := func(name string) (*os.File, error) {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		return f, nil
	}

	posFile, err := open("pos_tags.txt")
	if err != nil {
		return nil, err
	}
	defer posFile.Close()

	verbFile, err := open("verb_tags.txt")
	if err != nil {
		return nil, err
	}
	defer verbFile.Close()

	pennFile, err := open("penn_map.txt")
	if err != nil {
		return nil, err
	}
	defer pennFile.Close()

	return parseTagset(posFile, verbFile, pennFile)
}

// parseTagset builds a Tagset from the three table streams and rejects
// tables that come out empty.
func parseTagset(pos, verbs, penn io.Reader) (*Tagset, error) {
	ts := &Tagset{}

	var err error
	if ts.pos, err = parseTagList(pos); err != nil {
		return nil, fmt.Errorf("pos tags: %w", err)
	}
	if ts.verbs, err = parseTagList(verbs); err != nil {
		return nil, fmt.Errorf("verb tags: %w", err)
	}
	if ts.penn, err = parsePennMap(penn); err != nil {
		return nil, fmt.Errorf("penn map: %w", err)
	}

	switch {
	case len(ts.pos) == 0:
		return nil, fmt.Errorf("pos tags: empty table")
	case len(ts.verbs) == 0:
		return nil, fmt.Errorf("verb tags: empty table")
	case len(ts.penn) == 0:
		return nil, fmt.Errorf("penn map: empty table")
	}
	return ts, nil
}

// parseTagList reads a one-tag-per-line table. Blank lines and lines
// starting with "!" are skipped.
func parseTagList(r io.Reader) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		set[line] = struct{}{}
	}
	return set, sc.Err()
}

// parsePennMap reads a two-field-per-line table: "<atb-tag> <penn-tag>".
// The fields are whitespace-separated because ATB keys may contain ":".
func parsePennMap(r io.Reader) (map[string]string, error) {
	m := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		m[fields[0]] = fields[1]
	}
	return m, sc.Err()
}

// IsPOS reports whether tag is a member of the canonical POS vocabulary.
func (ts *Tagset) IsPOS(tag string) bool {
	_, ok := ts.pos[tag]
	return ok
}

// IsVerb reports whether tag names a verbal category.
func (ts *Tagset) IsVerb(tag string) bool {
	_, ok := ts.verbs[tag]
	return ok
}

// Penn returns the Penn (Bies) tag mapped to the given ATB tag.
// The boolean is false when no mapping exists.
func (ts *Tagset) Penn(tag string) (string, bool) {
	p, ok := ts.penn[tag]
	return p, ok
}

// POSTags returns the canonical POS vocabulary in sorted order.
func (ts *Tagset) POSTags() []string {
	return sortedKeys(ts.pos)
}

// VerbTags returns the verbal tags in sorted order.
func (ts *Tagset) VerbTags() []string {
	return sortedKeys(ts.verbs)
}

// PennMap returns a copy of the ATB→Penn mapping.
func (ts *Tagset) PennMap() map[string]string {
	out := make(map[string]string, len(ts.penn))
	for k, v := range ts.penn {
		out[k] = v
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
