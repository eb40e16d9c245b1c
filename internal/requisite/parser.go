package requisite

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/specialistvlad/coursegrid/internal/alias"
	"github.com/specialistvlad/coursegrid/internal/normalize"
	"github.com/specialistvlad/coursegrid/internal/requirement"
)

// DefaultCacheSize bounds the number of distinct requisite texts kept parsed.
const DefaultCacheSize = 256

// placeholder overwrites extracted text. It is neither a letter, a digit nor
// whitespace, so it acts as a word boundary and never matches a name.
const placeholder = '\x00'

// connectors are whole tokens that join requirements and carry no name.
var connectors = map[string]struct{}{
	"y":   {},
	"e":   {},
	"and": {},
}

// noneMarkers are complete texts that mean "no prerequisites".
var noneMarkers = map[string]struct{}{
	"ninguno":        {},
	"ninguna":        {},
	"sin requisitos": {},
	"sin requisito":  {},
	"none":           {},
	"-":              {},
}

// Result is the outcome of parsing one requisite text. Results are shared
// through the cache and must be treated as read-only.
type Result struct {
	Requirements requirement.Set
	Diagnostics  []Diagnostic
}

type candidate struct {
	key       string
	canonical string
}

// Parser extracts requirements from requisite text against a fixed set of
// course names and aliases. Build it once per catalog.
type Parser struct {
	candidates []candidate
	known      map[string]struct{}
	cache      *lru.Cache[string, Result]
	cacheSize  int
}

// Option configures a Parser.
type Option func(*Parser)

// WithCacheSize sets how many parse results are retained.
func WithCacheSize(size int) Option {
	return func(p *Parser) {
		p.cacheSize = size
	}
}

// NewParser builds the candidate list from canonical course names and the
// alias table. Course names take precedence over alias keys that collapse to
// the same match key.
func NewParser(courseNames []string, aliases *alias.Table, opts ...Option) (*Parser, error) {
	p := &Parser{
		known:     make(map[string]struct{}, len(courseNames)),
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	cache, err := lru.New[string, Result](p.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create requisite cache: %w", err)
	}
	p.cache = cache

	seen := make(map[string]struct{})
	add := func(text, canonical string) {
		key := matchKey(text)
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		p.candidates = append(p.candidates, candidate{key: key, canonical: canonical})
	}

	for _, name := range courseNames {
		canonical := normalize.Name(name)
		p.known[canonical] = struct{}{}
		add(canonical, canonical)
	}
	for _, key := range aliases.Keys() {
		target, _ := aliases.Lookup(key)
		add(key, target)
	}

	sort.SliceStable(p.candidates, func(i, j int) bool {
		a, b := p.candidates[i].key, p.candidates[j].key
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return p, nil
}

// Candidates returns the match keys in the order extraction tries them.
func (p *Parser) Candidates() []string {
	keys := make([]string, len(p.candidates))
	for i, c := range p.candidates {
		keys[i] = c.key
	}
	return keys
}

// Parse returns the requirements encoded in raw. Identical texts are parsed
// once and served from the cache afterwards.
func (p *Parser) Parse(raw string) Result {
	if cached, ok := p.cache.Get(raw); ok {
		return cached
	}
	res := p.parse(raw)
	p.cache.Add(raw, res)
	return res
}

// CacheLen reports how many distinct texts are currently cached.
func (p *Parser) CacheLen() int {
	return p.cache.Len()
}

type courseMention struct {
	pos  int
	name string
}

// collector accumulates requirements in emission order, dropping duplicates.
type collector struct {
	seen   map[requirement.Requirement]struct{}
	result Result
}

func (c *collector) add(r requirement.Requirement) {
	if c.seen == nil {
		c.seen = make(map[requirement.Requirement]struct{})
	}
	if _, dup := c.seen[r]; dup {
		return
	}
	c.seen[r] = struct{}{}
	c.result.Requirements = append(c.result.Requirements, r)
}

func (c *collector) diagnose(kind DiagnosticKind, clause, format string, args ...any) {
	c.result.Diagnostics = append(c.result.Diagnostics, Diagnostic{
		Kind:    kind,
		Clause:  clause,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *Parser) parse(raw string) Result {
	text := normalize.Name(raw)
	if text == "" {
		return Result{}
	}
	if _, none := noneMarkers[text]; none {
		return Result{}
	}

	var out collector
	buf := []byte(text)
	readClauses(buf, &out)

	tokens, breakBefore := tokenize(string(buf))
	work := []byte(strings.Join(tokens, " "))

	mentions := p.extract(work, &out)
	mentions = append(mentions, residue(work, breakBefore, &out)...)
	sort.SliceStable(mentions, func(i, j int) bool { return mentions[i].pos < mentions[j].pos })

	for _, m := range mentions {
		out.add(requirement.CourseRef{Name: m.name})
	}
	return out.result
}

// extract runs greedy longest-match extraction over work until no candidate
// matches, blanking every match in place.
func (p *Parser) extract(work []byte, out *collector) []courseMention {
	var mentions []courseMention
	for {
		found := false
		for _, c := range p.candidates {
			idx := indexOnBoundary(work, c.key)
			if idx < 0 {
				continue
			}
			blank(work, idx, idx+len(c.key))
			mentions = append(mentions, courseMention{pos: idx, name: c.canonical})
			if _, ok := p.known[c.canonical]; !ok {
				out.diagnose(UnknownCourseReference, c.key,
					"%q resolves to %q, which is not in the catalog", c.key, c.canonical)
			}
			found = true
			break
		}
		if !found {
			return mentions
		}
	}
}

// residue collects leftover fragments of work that still name something.
func residue(work []byte, breakBefore []bool, out *collector) []courseMention {
	var mentions []courseMention
	var parts []string
	start := -1

	flush := func() {
		fragment := strings.TrimFunc(strings.Join(parts, " "), func(r rune) bool { return !isWordRune(r) })
		parts = parts[:0]
		pos := start
		start = -1
		if !strings.ContainsFunc(fragment, unicode.IsLetter) {
			return
		}
		mentions = append(mentions, courseMention{pos: pos, name: fragment})
		out.diagnose(UnknownCourseReference, fragment, "no catalog course matches %q", fragment)
	}

	offset := 0
	for i, token := range strings.Split(string(work), " ") {
		if i < len(breakBefore) && breakBefore[i] {
			flush()
		}
		pieces := strings.Split(strings.ReplaceAll(token, string(placeholder), ","), ",")
		for j, piece := range pieces {
			if piece != "" {
				if start < 0 {
					start = offset
				}
				parts = append(parts, piece)
			}
			if j < len(pieces)-1 {
				flush()
			}
		}
		offset += len(token) + 1
	}
	flush()
	return mentions
}

// matchKey applies the connector transform used on requisite text to a
// candidate name so both sides compare on the same footing.
func matchKey(name string) string {
	tokens, _ := tokenize(name)
	return strings.Join(tokens, " ")
}

// separators pads "+" and ";" so they always stand as their own token.
var separators = strings.NewReplacer("+", " + ", ";", " ; ")

// tokenize splits text on whitespace, dropping "+", ";" and connector words.
// breakBefore[i] is true when one of them sat between token i-1 and token i.
func tokenize(text string) ([]string, []bool) {
	var tokens []string
	var breakBefore []bool
	pendingBreak := false

	for _, field := range strings.Fields(separators.Replace(text)) {
		if field == "+" || field == ";" {
			pendingBreak = true
			continue
		}
		if _, isConnector := connectors[field]; isConnector {
			pendingBreak = true
			continue
		}
		tokens = append(tokens, field)
		breakBefore = append(breakBefore, pendingBreak)
		pendingBreak = false
	}
	return tokens, breakBefore
}

// indexOnBoundary returns the first occurrence of key in work that is not
// flanked by a letter or digit, or -1.
func indexOnBoundary(work []byte, key string) int {
	text := string(work)
	from := 0
	for from <= len(text) {
		rel := strings.Index(text[from:], key)
		if rel < 0 {
			return -1
		}
		idx := from + rel
		end := idx + len(key)

		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (idx == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			return idx
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		from = idx + size
	}
	return -1
}

// blank overwrites work[start:end] with the placeholder, keeping spaces so
// token positions survive.
func blank(work []byte, start, end int) {
	for i := start; i < end; i++ {
		if work[i] != ' ' {
			work[i] = placeholder
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
