package gutil

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
)

// StrFmtError is returned by StrFmt when the format cannot be applied.
const StrFmtError = "<StrFmt error>"

// fmtErrorMark starts every diagnostic fmt embeds in its output:
// %!d(string=x), %!(EXTRA ...), %!v(MISSING), %!(BADWIDTH) and so on.
const fmtErrorMark = "%!"

// badOperandMark stands in for an operand whose verb did not apply.
const badOperandMark = "%!(BADOPERAND)"

// operandPlaceholder stands in for an operand that formatted cleanly.
const operandPlaceholder = "_"

// fmtDiagnostic matches the diagnostics that are not tied to one operand,
// plus badOperandMark.
var fmtDiagnostic = regexp.MustCompile(`%!.?\((?:MISSING|BADINDEX)\)|%!\((?:EXTRA |BADWIDTH\)|BADPREC\)|NOVERB\)|BADOPERAND\))`)

// StrFmt formats args printf-style and returns the result.
//
// Strings, byte slices and fmt.Stringer values are accepted directly for %s.
// When the format does not match its operands (wrong verb, missing or extra
// operands, bad width or index, a panicking String method) StrFmt returns
// StrFmtError instead of a partially formatted string. Operand text is never
// mistaken for a mismatch, even when it contains "%!". Callers cannot tell
// the sentinel apart from a legitimately formatted "<StrFmt error>".
//
// %T and %p are not checked.
func StrFmt(format string, args ...any) string {
	out := fmt.Sprintf(format, args...)
	if strings.Contains(out, fmtErrorMark) && formatFailed(format, args) {
		return StrFmtError
	}

	return out
}

// formatFailed formats again with every operand replaced by a checker that
// renders either operandPlaceholder or badOperandMark. The output then
// holds no operand text, only the format's literals and fmt's diagnostics.
func formatFailed(format string, args []any) bool {
	checked := make([]any, len(args))
	for i, arg := range args {
		checked[i] = checkOperand(arg)
	}

	return fmtDiagnostic.MatchString(fmt.Sprintf(format, checked...))
}

// checkOperand wraps arg in a fmt.Formatter. Plain integers keep an integer
// kind so they still work as * width and precision arguments.
func checkOperand(arg any) any {
	switch arg.(type) {
	case fmt.Formatter, fmt.Stringer, fmt.GoStringer, error:
		return &checkedOperand{v: arg}
	}

	switch v := reflect.ValueOf(arg); v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return checkedInt(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return checkedUint(v.Uint())
	default:
		return &checkedOperand{v: arg}
	}
}

type checkedOperand struct {
	v any
}

func (c *checkedOperand) Format(st fmt.State, verb rune) {
	writeChecked(st, verb, c.v)
}

type checkedInt int64

func (c checkedInt) Format(st fmt.State, verb rune) {
	writeChecked(st, verb, int64(c))
}

type checkedUint uint64

func (c checkedUint) Format(st fmt.State, verb rune) {
	writeChecked(st, verb, uint64(c))
}

func writeChecked(st fmt.State, verb rune, v any) {
	mark := operandPlaceholder
	if s := fmt.Sprintf(fmt.FormatString(st, verb), v); strings.Contains(s, fmtErrorMark) {
		// %v applies to every value, so marks beyond those in the %v
		// rendering come from verbs that failed on nested elements.
		if isBadVerb(s, verb, v) || strings.Count(s, fmtErrorMark) > strings.Count(fmt.Sprintf("%v", v), fmtErrorMark) {
			mark = badOperandMark
		}
	}
	_, _ = io.WriteString(st, mark)
}

// isBadVerb reports whether s is fmt's rendering of a verb that does not
// apply to v, or of a panicking String or Error method:
// %!d(string=x), %!s(<nil>), %!v(PANIC=String method: ...).
func isBadVerb(s string, verb rune, v any) bool {
	rest, ok := strings.CutPrefix(s, fmtErrorMark+string(verb)+"(")
	if !ok {
		return false
	}
	if v == nil {
		return strings.HasPrefix(rest, "<nil>)")
	}

	return strings.HasPrefix(rest, "PANIC=") ||
		strings.HasPrefix(rest, reflect.TypeOf(v).String()+"=")
}
