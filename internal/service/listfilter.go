package service

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/workforce-hrms/admin-ui/internal/domain/model"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// ListFilterServiceOptions groups dependencies for ListFilterService.
type ListFilterServiceOptions struct {
	Evaluator JMESPathEvaluator
}

// ListFilterService narrows backend list responses with JMESPath
// expressions. The backend has no search or filter endpoints, so list
// pages fetch everything and filter here.
type ListFilterService struct {
	jems JMESPathEvaluator
}

// NewListFilterService constructs a new ListFilterService.
func NewListFilterService(opts ListFilterServiceOptions) *ListFilterService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &ListFilterService{jems: jems}
}

// Validate reports whether expr is a well-formed JMESPath expression.
// Empty expressions are valid and match everything.
func (s *ListFilterService) Validate(expr string) error {
	return s.jems.Validate(expr)
}

// Apply evaluates a JMESPath expression against a slice of items and
// decodes the result back into the same element type. Items round-trip
// through their JSON form, so expressions address the backend's field
// names (name, email, leaveStatus), not Go identifiers.
func Apply[T any](s *ListFilterService, items []T, expr string) ([]T, error) {
	if strings.TrimSpace(expr) == "" {
		return items, nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}

	result, err := s.jems.Evaluate(expr, generic)
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	if result == nil {
		return []T{}, nil
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var out []T
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, fmt.Errorf("expression %q did not yield a list: %w", expr, err)
	}
	return out, nil
}

// FilterEmployees narrows an employee list by a case-insensitive free-text
// query over name, email, and designation, plus an optional status match.
func (s *ListFilterService) FilterEmployees(employees []model.Employee, query string, status model.EmployeeStatus) ([]model.Employee, error) {
	var conds []string
	if q := strings.TrimSpace(query); q != "" {
		needle := jmespathQuote(strings.ToLower(q))
		conds = append(conds, fmt.Sprintf(
			"(contains(lower(name || ''), %[1]s) || contains(lower(email || ''), %[1]s) || contains(lower(designation || ''), %[1]s))",
			needle))
	}
	if status != "" {
		conds = append(conds, fmt.Sprintf("status == %s", jmespathQuote(string(status))))
	}
	if len(conds) == 0 {
		return employees, nil
	}
	expr := fmt.Sprintf("[?%s]", strings.Join(conds, " && "))
	return Apply(s, employees, expr)
}

// FilterLeavesByStatus narrows a leave list to one decision state.
func (s *ListFilterService) FilterLeavesByStatus(leaves []model.Leave, status model.LeaveStatus) ([]model.Leave, error) {
	if status == "" {
		return leaves, nil
	}
	expr := fmt.Sprintf("[?leaveStatus == %s]", jmespathQuote(string(status)))
	return Apply(s, leaves, expr)
}

// jmespathQuote renders a Go string as a JMESPath raw string literal.
func jmespathQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
