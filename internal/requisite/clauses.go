package requisite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/requirement"
)

// termClause matches "hasta [el] N° semestre aprobado" and its plural and
// ordinal variants on normalized text. The number token is captured loosely
// so that unreadable values surface as diagnostics instead of being ignored.
var termClause = regexp.MustCompile(`\bhasta\s+(?:el\s+|la\s+)?(\S+?)\s*semestres?\s+aprobados?\b`)

// creditClause matches "N creditos", "N credits" or "N sct" on normalized
// text, with an optional trailing "aprobados" / "approved".
var creditClause = regexp.MustCompile(`\b(\d\S*?)\s*(?:creditos?|credits?|sct)(?:\s+(?:aprobados?|approved))?\b`)

// ordinalNumber accepts "3", "3°", "3º", "3er", "5to" and similar.
var ordinalNumber = regexp.MustCompile(`^(\d+)(?:°|º|\.|er|ero|ro|do|to|vo|mo|no|st|nd|rd|th)?$`)

// readClauses recognises threshold clauses in buf, records them on out and
// blanks their spans. Term clauses are emitted before credit clauses.
func readClauses(buf []byte, out *collector) {
	for _, m := range termClause.FindAllSubmatchIndex(buf, -1) {
		clause := string(buf[m[0]:m[1]])
		token := string(buf[m[2]:m[3]])
		n, err := parseOrdinal(token)
		if err != nil {
			out.add(requirement.Unsatisfiable{Clause: clause, Reason: err.Error()})
			out.diagnose(MalformedRequisiteText, clause, "cannot read term number %q: %v", token, err)
		} else {
			out.add(requirement.SemesterCompletionThreshold{Through: n})
		}
		blank(buf, m[0], m[1])
	}

	for _, m := range creditClause.FindAllSubmatchIndex(buf, -1) {
		clause := string(buf[m[0]:m[1]])
		token := string(buf[m[2]:m[3]])
		n, err := strconv.Atoi(token)
		if err != nil {
			out.add(requirement.Unsatisfiable{Clause: clause, Reason: fmt.Sprintf("invalid credit amount %q", token)})
			out.diagnose(MalformedRequisiteText, clause, "cannot read credit amount %q", token)
		} else {
			out.add(requirement.CreditThreshold{Min: n})
		}
		blank(buf, m[0], m[1])
	}
}

// parseOrdinal reads a positive term number, tolerating ordinal suffixes.
func parseOrdinal(token string) (int, error) {
	matches := ordinalNumber.FindStringSubmatch(strings.TrimSpace(token))
	if matches == nil {
		return 0, fmt.Errorf("not a term number")
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("term number out of range")
	}
	if n <= 0 {
		return 0, fmt.Errorf("term number must be positive")
	}
	return n, nil
}
