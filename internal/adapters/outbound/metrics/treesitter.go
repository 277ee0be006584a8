//go:build cgo

package metrics

import (
	"context"
	"fmt"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/abdidvp/smartreview/internal/domain"
)

// TreeSitterPython measures Python with the tree-sitter grammar: syntax
// errors, per-function cyclomatic complexity and the maintainability index.
type TreeSitterPython struct{}

// NewTreeSitterPython creates a TreeSitterPython provider.
func NewTreeSitterPython() *TreeSitterPython { return &TreeSitterPython{} }

func richPython() (domain.MetricsProvider, bool) {
	return NewTreeSitterPython(), true
}

// Measure is safe for concurrent use; each call owns its parser.
func (p *TreeSitterPython) Measure(content, path string) domain.FileMetrics {
	m := domain.FileMetrics{Path: path, Language: domain.LanguagePython}
	stats := CountLines(content)
	stats.apply(&m)

	src := []byte(content)
	tree, syntaxErr := parsePython(src, path)
	if syntaxErr != nil {
		m.SyntaxError = syntaxErr
		return m
	}
	defer tree.Close()
	root := tree.RootNode()

	v := &pyVisitor{src: src, halstead: newHalstead()}
	v.walk(root)
	m.Functions = v.functions

	total := decisionPoints(root)
	for _, f := range v.functions {
		total += f.Complexity
	}
	sloc := stats.Total - stats.Blank - stats.Comment
	mi := maintainabilityIndex(
		v.halstead.volume(),
		total,
		sloc,
		commentPercent(stats.Comment+v.docstringLines, sloc),
	)
	m.MaintainabilityIndex = &mi
	return m
}

// parsePython returns the syntax tree of src, or a syntax error message
// when the source does not parse cleanly.
func parsePython(src []byte, path string) (*sitter.Tree, *string) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		msg := fmt.Sprintf("cannot parse (%s): %v", filepath.Base(path), err)
		return nil, &msg
	}
	if root := tree.RootNode(); root.HasError() {
		msg := syntaxErrorMessage(root, path)
		tree.Close()
		return nil, &msg
	}
	return tree, nil
}

func pythonSyntaxError(content, path string) *string {
	tree, msg := parsePython([]byte(content), path)
	if tree != nil {
		tree.Close()
	}
	return msg
}

type pyVisitor struct {
	src            []byte
	functions      []domain.Function
	halstead       *halstead
	docstringLines int
}

func (v *pyVisitor) walk(n *sitter.Node) {
	switch n.Type() {
	case "function_definition":
		v.functions = append(v.functions, v.function(n))
	case "expression_statement":
		if n.NamedChildCount() == 1 {
			if c := n.NamedChild(0); c.Type() == "string" || c.Type() == "concatenated_string" {
				v.docstringLines += rowSpan(n)
			}
		}
	}
	v.operators(n)

	for i := 0; i < int(n.ChildCount()); i++ {
		v.walk(n.Child(i))
	}
}

func (v *pyVisitor) function(n *sitter.Node) domain.Function {
	name := ""
	if id := n.ChildByFieldName("name"); id != nil {
		name = id.Content(v.src)
	}
	complexity := 1
	if body := n.ChildByFieldName("body"); body != nil {
		complexity += decisionPoints(body)
	}
	return domain.Function{
		Name:       name,
		Line:       int(n.StartPoint().Row) + 1,
		Complexity: complexity,
		Length:     rowSpan(n),
	}
}

// operators feeds expression operators and their operands to the Halstead counter.
func (v *pyVisitor) operators(n *sitter.Node) {
	switch n.Type() {
	case "binary_operator", "boolean_operator", "augmented_assignment":
		if op := n.ChildByFieldName("operator"); op != nil {
			v.halstead.operator(op.Type())
		}
		v.operandOf(n.ChildByFieldName("left"))
		v.operandOf(n.ChildByFieldName("right"))
	case "unary_operator":
		if op := n.ChildByFieldName("operator"); op != nil {
			v.halstead.operator("unary" + op.Type())
		}
		v.operandOf(n.ChildByFieldName("argument"))
	case "not_operator":
		v.halstead.operator("not")
		v.operandOf(n.ChildByFieldName("argument"))
	case "comparison_operator":
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch {
			case c.Type() == "comment":
			case c.IsNamed():
				v.operandOf(c)
			default:
				v.halstead.operator(c.Type())
			}
		}
	}
}

func (v *pyVisitor) operandOf(n *sitter.Node) {
	if n != nil {
		v.halstead.operand(n.Content(v.src))
	}
}

// decisionPoints counts branches below n. Nested functions and classes are
// skipped: they are measured on their own.
func decisionPoints(n *sitter.Node) int {
	count := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "function_definition", "class_definition":
			continue
		case "if_statement", "elif_clause", "conditional_expression",
			"for_statement", "while_statement",
			"except_clause", "except_group_clause",
			"boolean_operator", "for_in_clause", "if_clause",
			"case_clause", "assert_statement":
			count++
		case "else_clause":
			switch n.Type() {
			case "for_statement", "while_statement", "try_statement":
				count++
			}
		}
		count += decisionPoints(c)
	}
	return count
}

// rowSpan is the number of source lines a node covers.
func rowSpan(n *sitter.Node) int {
	start, end := n.StartPoint(), n.EndPoint()
	last := int(end.Row)
	if end.Column == 0 && end.Row > start.Row {
		last--
	}
	return last - int(start.Row) + 1
}

func syntaxErrorMessage(root *sitter.Node, path string) string {
	line := 1
	if bad := firstError(root); bad != nil {
		line = int(bad.StartPoint().Row) + 1
	}
	return fmt.Sprintf("invalid syntax (%s, line %d)", filepath.Base(path), line)
}

// firstError returns the first ERROR or missing node in source order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if !c.HasError() && !c.IsMissing() {
			continue
		}
		if bad := firstError(c); bad != nil {
			return bad
		}
	}
	return nil
}
