package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/fieldmarks/internal/domain"
	"golang.org/x/text/cases"
)

// ErrSubjectNotFound is matched by every *SubjectNotFoundError.
var ErrSubjectNotFound = errors.New("bird not found")

// maxCandidates bounds the candidate list carried by SubjectNotFoundError.
const maxCandidates = 20

// SubjectNotFoundError reports a query that matched no subject, with a sorted
// sample of the names that do exist.
type SubjectNotFoundError struct {
	Query      string
	Candidates []string
	Truncated  bool
}

func (e *SubjectNotFoundError) Error() string {
	quoted := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	msg := fmt.Sprintf("bird not found: %q. Available: %s", e.Query, strings.Join(quoted, ", "))
	if e.Truncated {
		msg += " ..."
	}
	return msg
}

func (e *SubjectNotFoundError) Is(target error) bool {
	return target == ErrSubjectNotFound
}

// NormalizeName collapses whitespace runs to single spaces, trims, and case-folds.
func NormalizeName(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// NamesEqual compares two common names ignoring case and whitespace runs.
func NamesEqual(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// FindSubject returns the first subject whose common name equals query under
// NamesEqual.
func FindSubject(subjects []domain.Subject, query string) (domain.Subject, error) {
	want := NormalizeName(query)
	for _, s := range subjects {
		if NormalizeName(s.CommonName) == want {
			return s, nil
		}
	}
	return domain.Subject{}, newSubjectNotFoundError(subjects, query)
}

// ResolveSubjects resolves every query in order. The first miss aborts.
func ResolveSubjects(subjects []domain.Subject, queries []string) ([]domain.Subject, error) {
	resolved := make([]domain.Subject, 0, len(queries))
	for _, q := range queries {
		s, err := FindSubject(subjects, q)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, s)
	}
	return resolved, nil
}

// CommonNames returns the distinct subject names sorted alphabetically.
func CommonNames(subjects []domain.Subject) []string {
	seen := make(map[string]bool, len(subjects))
	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if seen[s.CommonName] {
			continue
		}
		seen[s.CommonName] = true
		names = append(names, s.CommonName)
	}
	sort.Strings(names)
	return names
}

func newSubjectNotFoundError(subjects []domain.Subject, query string) *SubjectNotFoundError {
	names := CommonNames(subjects)
	err := &SubjectNotFoundError{Query: query}
	if len(names) > maxCandidates {
		err.Candidates = names[:maxCandidates]
		err.Truncated = true
	} else {
		err.Candidates = names
	}
	return err
}
