package automaton

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	REGEXP_UNION         = Kind(iota) // The union of two expressions
	REGEXP_CONCATENATION              // A sequence of two expressions
	REGEXP_REPEAT                     // An expression that repeats (Kleene star)
	REGEXP_CHAR                       // A Character
	REGEXP_EMPTY                      // The empty language
	REGEXP_EMPTY_STRING               // The empty string
)

func (k Kind) String() string {
	switch k {
	case REGEXP_UNION:
		return "union"
	case REGEXP_CONCATENATION:
		return "concatenation"
	case REGEXP_REPEAT:
		return "repeat"
	case REGEXP_CHAR:
		return "char"
	case REGEXP_EMPTY:
		return "empty"
	case REGEXP_EMPTY_STRING:
		return "empty string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Syntax flags.
const (
	EMPTY     = 0x0004 // '#' denotes the empty language
	CHARCLASS = 0x0040 // '[...]' denotes a union of characters and ranges
	ALL       = 0xff
	NONE      = 0x0000
)

// Characters with a meaning in the syntax; escape them with '\' to match literally.
const reserved = `|*+?()[]#\`

// RegExp Regular expression syntax tree. Every expression is built from six
// constructors: empty language, empty string, single character, Kleene star,
// union and concatenation. NewRegExp also understands '+', '?' and character
// classes and rewrites them in terms of those six.
//
// Syntax:
//
//	regexp     ::= unionexp
//	unionexp   ::= concatexp '|' unionexp | concatexp
//	concatexp  ::= repeatexp concatexp | repeatexp
//	repeatexp  ::= repeatexp '*' | repeatexp '+' | repeatexp '?' | charclassexp
//	charclassexp ::= '[' charclasses ']' | simpleexp          (CHARCLASS)
//	charclasses ::= charclass charclasses | charclass
//	charclass  ::= charexp '-' charexp | charexp
//	simpleexp  ::= '#'                                        (EMPTY)
//	             | '(' ')' | '(' unionexp ')' | charexp
//	charexp    ::= <Unicode character> | '\' <Unicode character>
type RegExp struct {
	kind           Kind
	exp1, exp2     *RegExp
	c              rune
	originalString []rune
	flags          int
	pos            int
}

type regExpOption struct {
	syntaxFlags int
}

type RegExpOption func(*regExpOption)

func WithSyntaxFlags(flags int) RegExpOption {
	return func(o *regExpOption) {
		o.syntaxFlags = flags
	}
}

// NewRegExp Parses s. The empty string denotes the empty-string language.
func NewRegExp(s string, options ...RegExpOption) (*RegExp, error) {
	opts := &regExpOption{
		syntaxFlags: ALL,
	}
	for _, fn := range options {
		fn(opts)
	}
	if opts.syntaxFlags < 0 || opts.syntaxFlags > ALL {
		return nil, errors.New("illegal syntax flag")
	}

	r := &RegExp{
		originalString: []rune(s),
		flags:          opts.syntaxFlags,
	}
	if len(r.originalString) == 0 {
		return MakeEmptyString(), nil
	}

	e, err := r.parseUnionExp()
	if err != nil {
		return nil, err
	}
	if r.more() {
		return nil, fmt.Errorf("end-of-string expected at position %d", r.pos)
	}
	return e, nil
}

func MakeUnion(exp1, exp2 *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_UNION, exp1: exp1, exp2: exp2}
}

func MakeConcatenation(exp1, exp2 *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_CONCATENATION, exp1: exp1, exp2: exp2}
}

func MakeRepeat(exp *RegExp) *RegExp {
	return &RegExp{kind: REGEXP_REPEAT, exp1: exp}
}

func MakeChar(c rune) *RegExp {
	return &RegExp{kind: REGEXP_CHAR, c: c}
}

func MakeEmpty() *RegExp {
	return &RegExp{kind: REGEXP_EMPTY}
}

func MakeEmptyString() *RegExp {
	return &RegExp{kind: REGEXP_EMPTY_STRING}
}

func (r *RegExp) Kind() Kind {
	return r.kind
}

// Exp1 The operand of a repeat, or the left operand of a union or concatenation.
func (r *RegExp) Exp1() *RegExp {
	return r.exp1
}

// Exp2 The right operand of a union or concatenation.
func (r *RegExp) Exp2() *RegExp {
	return r.exp2
}

// Char The character of a REGEXP_CHAR expression.
func (r *RegExp) Char() rune {
	return r.c
}

// ToAutomaton Builds an NFA with epsilon transitions (Thompson construction).
// Nested unions and concatenations are flattened into one combinator call, and
// the single characters of a union share one two-state automaton.
func (r *RegExp) ToAutomaton() *Automaton {
	switch r.kind {
	case REGEXP_UNION:
		var chars []rune
		operands := make([]*Automaton, 0)
		for _, leaf := range r.leaves(REGEXP_UNION) {
			if leaf.kind == REGEXP_CHAR {
				chars = append(chars, leaf.c)
				continue
			}
			operands = append(operands, leaf.ToAutomaton())
		}
		if len(chars) > 0 {
			charSet := defaultAutomata.MakeCharSet(chars...)
			if len(operands) == 0 {
				return charSet
			}
			operands = append(operands, charSet)
		}
		return Union(operands...)
	case REGEXP_CONCATENATION:
		leaves := r.leaves(REGEXP_CONCATENATION)
		operands := make([]*Automaton, len(leaves))
		for i, leaf := range leaves {
			operands[i] = leaf.ToAutomaton()
		}
		return Concatenate(operands...)
	case REGEXP_REPEAT:
		return Repeat(r.exp1.ToAutomaton())
	case REGEXP_CHAR:
		return defaultAutomata.MakeChar(r.c)
	case REGEXP_EMPTY_STRING:
		return defaultAutomata.MakeEmptyString()
	default:
		return defaultAutomata.MakeEmpty()
	}
}

// leaves Returns the operands of the chain of kind nodes rooted at r, left to
// right. Character classes produce long chains, so this does not recurse.
func (r *RegExp) leaves(kind Kind) []*RegExp {
	var result []*RegExp
	stack := []*RegExp{r}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.kind != kind {
			result = append(result, e)
			continue
		}
		stack = append(stack, e.exp2, e.exp1)
	}
	return result
}

func (r *RegExp) String() string {
	b := new(strings.Builder)
	r.toStringBuilder(b)
	return b.String()
}

func (r *RegExp) toStringBuilder(b *strings.Builder) {
	switch r.kind {
	case REGEXP_UNION:
		// The parser nests to the right; a union on the left needs parentheses.
		r.exp1.toGroupedStringBuilder(b, REGEXP_UNION)
		b.WriteByte('|')
		r.exp2.toStringBuilder(b)
	case REGEXP_CONCATENATION:
		r.exp1.toGroupedStringBuilder(b, REGEXP_UNION, REGEXP_CONCATENATION)
		r.exp2.toGroupedStringBuilder(b, REGEXP_UNION)
	case REGEXP_REPEAT:
		r.exp1.toGroupedStringBuilder(b, REGEXP_UNION, REGEXP_CONCATENATION)
		b.WriteByte('*')
	case REGEXP_CHAR:
		if strings.ContainsRune(reserved, r.c) {
			b.WriteByte('\\')
		}
		b.WriteRune(r.c)
	case REGEXP_EMPTY:
		b.WriteByte('#')
	case REGEXP_EMPTY_STRING:
		b.WriteString("()")
	}
}

// Writes r, in parentheses if its kind binds looser than the caller.
func (r *RegExp) toGroupedStringBuilder(b *strings.Builder, looser ...Kind) {
	for _, k := range looser {
		if r.kind == k {
			b.WriteByte('(')
			r.toStringBuilder(b)
			b.WriteByte(')')
			return
		}
	}
	r.toStringBuilder(b)
}

func (r *RegExp) more() bool {
	return r.pos < len(r.originalString)
}

func (r *RegExp) peek(s string) bool {
	return r.more() && strings.ContainsRune(s, r.originalString[r.pos])
}

func (r *RegExp) match(c rune) bool {
	if r.pos >= len(r.originalString) {
		return false
	}
	if r.originalString[r.pos] == c {
		r.pos++
		return true
	}
	return false
}

func (r *RegExp) next() (rune, error) {
	if !r.more() {
		return 0, fmt.Errorf("unexpected end of expression at position %d", r.pos)
	}
	ch := r.originalString[r.pos]
	r.pos++
	return ch, nil
}

func (r *RegExp) check(flags int) bool {
	return r.flags&flags != 0
}

func (r *RegExp) parseUnionExp() (*RegExp, error) {
	e, err := r.parseConcatExp()
	if err != nil {
		return nil, err
	}
	if r.match('|') {
		e2, err := r.parseUnionExp()
		if err != nil {
			return nil, err
		}
		e = MakeUnion(e, e2)
	}
	return e, nil
}

func (r *RegExp) parseConcatExp() (*RegExp, error) {
	e, err := r.parseRepeatExp()
	if err != nil {
		return nil, err
	}
	if r.more() && !r.peek(")|") {
		e2, err := r.parseConcatExp()
		if err != nil {
			return nil, err
		}
		e = MakeConcatenation(e, e2)
	}
	return e, nil
}

func (r *RegExp) parseRepeatExp() (*RegExp, error) {
	e, err := r.parseCharClassExp()
	if err != nil {
		return nil, err
	}

	for r.peek("?*+") {
		if r.match('?') {
			e = MakeUnion(e, MakeEmptyString())
		} else if r.match('*') {
			e = MakeRepeat(e)
		} else if r.match('+') {
			e = MakeConcatenation(e, MakeRepeat(e))
		}
	}
	return e, nil
}

func (r *RegExp) parseCharClassExp() (*RegExp, error) {
	if r.check(CHARCLASS) && r.match('[') {
		e, err := r.parseCharClasses()
		if err != nil {
			return nil, err
		}
		if !r.match(']') {
			return nil, fmt.Errorf("expected ']' at position %d", r.pos)
		}
		return e, nil
	}
	return r.parseSimpleExp()
}

func (r *RegExp) parseCharClasses() (*RegExp, error) {
	e, err := r.parseCharClass()
	if err != nil {
		return nil, err
	}
	if r.more() && !r.peek("]") {
		e2, err := r.parseCharClasses()
		if err != nil {
			return nil, err
		}
		e = MakeUnion(e, e2)
	}
	return e, nil
}

func (r *RegExp) parseCharClass() (*RegExp, error) {
	c, err := r.parseCharExp()
	if err != nil {
		return nil, err
	}
	if !r.match('-') {
		return MakeChar(c), nil
	}

	to, err := r.parseCharExp()
	if err != nil {
		return nil, err
	}
	if c > to {
		return nil, fmt.Errorf("invalid range %q-%q at position %d", c, to, r.pos)
	}
	// Nested to the right, like unions written out with '|'.
	e := MakeChar(to)
	for x := to - 1; x >= c; x-- {
		e = MakeUnion(MakeChar(x), e)
	}
	return e, nil
}

func (r *RegExp) parseSimpleExp() (*RegExp, error) {
	if r.check(EMPTY) && r.match('#') {
		return MakeEmpty(), nil
	} else if r.match('(') {
		if r.match(')') {
			return MakeEmptyString(), nil
		}
		e, err := r.parseUnionExp()
		if err != nil {
			return nil, err
		}
		if !r.match(')') {
			return nil, fmt.Errorf("expected ')' at position %d", r.pos)
		}
		return e, nil
	} else if r.peek(")|*+?") {
		return nil, fmt.Errorf("unexpected %q at position %d", r.originalString[r.pos], r.pos)
	}

	c, err := r.parseCharExp()
	if err != nil {
		return nil, err
	}
	return MakeChar(c), nil
}

func (r *RegExp) parseCharExp() (rune, error) {
	r.match('\\')
	return r.next()
}
