package parser

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/jsdce/token"
)

// Token is a lexed token. Literal holds the source text of the token and
// Value its decoded value for identifiers, strings and templates.
type Token struct {
	Kind      token.Token
	Literal   string
	Value     string
	Number    float64
	Offset    int
	OnNewLine bool
	// Tail is set on template chunks ending with a backtick.
	Tail bool
}

type lexer struct {
	src string
	pos int
	p   *parser
}

func (l *lexer) peekByte(offset int) byte {
	if l.pos+offset < len(l.src) {
		return l.src[l.pos+offset]
	}
	return 0
}

func (l *lexer) rune() (rune, int) {
	if l.pos >= len(l.src) {
		return -1, 0
	}
	if c := l.src[l.pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(l.src[l.pos:])
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func isIdentifierStart(r rune) bool {
	return r == '$' || r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' ||
		r >= utf8.RuneSelf && unicode.IsLetter(r)
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || '0' <= r && r <= '9' ||
		r >= utf8.RuneSelf && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) ||
			unicode.Is(unicode.Pc, r) || r == '\u200c' || r == '\u200d')
}

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // Larger than any legal digit value
}

// skipSpace skips whitespace and comments and reports whether a line
// terminator was crossed.
func (l *lexer) skipSpace() (newline bool) {
	if l.pos == 0 && strings.HasPrefix(l.src, "#!") {
		for l.pos < len(l.src) {
			if r, _ := l.rune(); isLineTerminator(r) {
				break
			}
			l.pos++
		}
	}
	for l.pos < len(l.src) {
		r, size := l.rune()
		switch {
		case isLineTerminator(r):
			newline = true
			l.pos += size
		case r == ' ' || r == '\t' || r == '\v' || r == '\f' || r == '\u00a0' || r == '\ufeff' ||
			r >= utf8.RuneSelf && unicode.Is(unicode.Zs, r):
			l.pos += size
		case r == '/' && l.peekByte(1) == '/':
			for l.pos < len(l.src) {
				if r, _ := l.rune(); isLineTerminator(r) {
					break
				}
				l.pos++
			}
		case r == '/' && l.peekByte(1) == '*':
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.p.errorAt(l.pos, errUnexpectedEndOfInput)
				l.pos = len(l.src)
				return
			}
			comment := l.src[l.pos+2 : l.pos+2+end]
			if strings.ContainsAny(comment, "\n\r\u2028\u2029") {
				newline = true
			}
			l.pos += end + 4
		default:
			return
		}
	}
	return
}

// next scans the next token.
func (l *lexer) next() Token {
	newline := l.skipSpace()
	tok := Token{Offset: l.pos, OnNewLine: newline}
	if l.pos >= len(l.src) {
		tok.Kind = token.Eof
		return tok
	}

	r, size := l.rune()
	switch {
	case isIdentifierStart(r) || r == '\\':
		l.scanIdentifier(&tok)
	case r == '#' && l.pos+1 < len(l.src):
		// Private name.
		l.pos++
		l.scanIdentifier(&tok)
		tok.Kind = token.Identifier
		tok.Value = "#" + tok.Value
	case '0' <= r && r <= '9' || r == '.' && '0' <= l.peekByte(1) && l.peekByte(1) <= '9':
		l.scanNumber(&tok)
	case r == '"' || r == '\'':
		l.scanString(&tok, byte(r))
	case r == '`':
		l.pos++
		l.scanTemplate(&tok)
	default:
		tok.Kind = l.scanPunctuator()
		if tok.Kind == token.Illegal {
			l.pos += size
		}
	}
	tok.Literal = l.src[tok.Offset:l.pos]
	return tok
}

func (l *lexer) scanIdentifier(tok *Token) {
	var sb strings.Builder
	escaped := false
	for l.pos < len(l.src) {
		r, size := l.rune()
		if r == '\\' {
			if l.peekByte(1) != 'u' {
				l.p.errorAt(l.pos, "Invalid identifier escape")
				l.pos++
				continue
			}
			l.pos += 2
			cp, ok := l.scanUnicodeEscape()
			if !ok {
				l.p.errorAt(l.pos, "Invalid Unicode escape sequence")
			}
			escaped = true
			sb.WriteRune(cp)
			continue
		}
		if !isIdentifierPart(r) {
			break
		}
		sb.WriteRune(r)
		l.pos += size
	}
	tok.Value = sb.String()
	tok.Kind = token.Identifier
	if kw, ok := token.LiteralKeyword(tok.Value); ok && !escaped {
		tok.Kind = kw
	}
}

// scanUnicodeEscape decodes XXXX or {X...} after \u.
func (l *lexer) scanUnicodeEscape() (rune, bool) {
	if l.peekByte(0) == '{' {
		end := strings.IndexByte(l.src[l.pos:], '}')
		if end < 0 {
			return utf8.RuneError, false
		}
		v, err := strconv.ParseUint(l.src[l.pos+1:l.pos+end], 16, 32)
		l.pos += end + 1
		if err != nil || v > unicode.MaxRune {
			return utf8.RuneError, false
		}
		return rune(v), true
	}
	if l.pos+4 > len(l.src) {
		l.pos = len(l.src)
		return utf8.RuneError, false
	}
	v, err := strconv.ParseUint(l.src[l.pos:l.pos+4], 16, 16)
	l.pos += 4
	if err != nil {
		return utf8.RuneError, false
	}
	return rune(v), true
}

func (l *lexer) scanDigits(base int) string {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '_' || digitValue(rune(c)) < base {
			l.pos++
			continue
		}
		break
	}
	return strings.ReplaceAll(l.src[start:l.pos], "_", "")
}

func (l *lexer) scanNumber(tok *Token) {
	tok.Kind = token.Number
	if l.peekByte(0) == '0' {
		base := 0
		switch l.peekByte(1) {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			l.pos += 2
			digits := l.scanDigits(base)
			if digits == "" {
				l.p.errorAt(tok.Offset, "Invalid or unexpected token")
			}
			tok.Number = parseInteger(digits, base)
			l.checkNumberEnd(tok)
			return
		}
		// Legacy octal: 017
		if n := l.peekByte(1); '0' <= n && n <= '9' {
			end := l.pos + 1
			for end < len(l.src) && '0' <= l.src[end] && l.src[end] <= '9' {
				end++
			}
			digits := l.src[l.pos+1 : end]
			if !strings.ContainsAny(digits, "89") {
				l.pos = end
				tok.Number = parseInteger(digits, 8)
				l.checkNumberEnd(tok)
				return
			}
		}
	}

	start := l.pos
	l.scanDigits(10)
	if l.peekByte(0) == '.' {
		l.pos++
		l.scanDigits(10)
	}
	if c := l.peekByte(0); c == 'e' || c == 'E' {
		save := l.pos
		l.pos++
		if c := l.peekByte(0); c == '+' || c == '-' {
			l.pos++
		}
		if l.scanDigits(10) == "" {
			l.pos = save
		}
	}
	text := strings.ReplaceAll(l.src[start:l.pos], "_", "")
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			l.p.errorAt(tok.Offset, "Invalid number %s", text)
		}
	}
	tok.Number = n
	l.checkNumberEnd(tok)
}

func (l *lexer) checkNumberEnd(tok *Token) {
	r, _ := l.rune()
	if r == 'n' {
		l.p.errorAt(tok.Offset, "BigInt literals are not supported")
		l.pos++
		return
	}
	if isIdentifierStart(r) || '0' <= r && r <= '9' {
		l.p.errorAt(l.pos, "Invalid or unexpected token")
	}
}

func parseInteger(digits string, base int) float64 {
	var value float64
	for _, chr := range digits {
		value = value*float64(base) + float64(digitValue(chr))
	}
	if math.IsInf(value, 0) {
		return math.Inf(1)
	}
	return value
}

func (l *lexer) scanString(tok *Token, quote byte) {
	tok.Kind = token.String
	l.pos++
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			l.p.errorAt(tok.Offset, "Invalid or unexpected token")
			break
		}
		r, size := l.rune()
		if r == rune(quote) {
			l.pos++
			break
		}
		if r == '\n' || r == '\r' {
			l.p.errorAt(tok.Offset, "Invalid or unexpected token")
			break
		}
		if r == '\\' {
			l.pos++
			l.scanEscape(&sb, false)
			continue
		}
		sb.WriteRune(r)
		l.pos += size
	}
	tok.Value = sb.String()
}

// scanEscape decodes the escape sequence after a backslash into sb.
func (l *lexer) scanEscape(sb *strings.Builder, template bool) {
	r, size := l.rune()
	if r < 0 {
		return
	}
	l.pos += size
	switch r {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '\r':
		// Line continuation.
		if l.peekByte(0) == '\n' {
			l.pos++
		}
	case '\n', '\u2028', '\u2029':
	case 'x':
		if l.pos+2 <= len(l.src) {
			if v, err := strconv.ParseUint(l.src[l.pos:l.pos+2], 16, 8); err == nil {
				l.pos += 2
				sb.WriteRune(rune(v))
				return
			}
		}
		l.p.errorAt(l.pos, "Invalid hexadecimal escape sequence")
	case 'u':
		cp, ok := l.scanUnicodeEscape()
		if !ok {
			l.p.errorAt(l.pos, "Invalid Unicode escape sequence")
		}
		// Combine surrogate pairs written as two escapes.
		if 0xD800 <= cp && cp < 0xDC00 && l.peekByte(0) == '\\' && l.peekByte(1) == 'u' {
			save := l.pos
			l.pos += 2
			if lo, ok := l.scanUnicodeEscape(); ok && 0xDC00 <= lo && lo < 0xE000 {
				cp = (cp-0xD800)<<10 + (lo - 0xDC00) + 0x10000
			} else {
				l.pos = save
			}
		}
		sb.WriteRune(cp)
	default:
		if '0' <= r && r <= '7' {
			if r == '0' && !('0' <= l.peekByte(0) && l.peekByte(0) <= '9') {
				sb.WriteByte(0)
				return
			}
			if template {
				l.p.errorAt(l.pos, "Octal escape sequences are not allowed in template strings")
			}
			// Legacy octal escape, up to three digits below 256.
			v := r - '0'
			for i := 0; i < 2; i++ {
				c := l.peekByte(0)
				if c < '0' || c > '7' || v*8+rune(c-'0') > 255 {
					break
				}
				v = v*8 + rune(c-'0')
				l.pos++
			}
			sb.WriteRune(v)
			return
		}
		sb.WriteRune(r)
	}
}

// scanTemplate scans template text up to ${ or the closing backtick. The
// opening backtick or closing brace has already been consumed.
func (l *lexer) scanTemplate(tok *Token) {
	tok.Kind = token.Template
	start := l.pos
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			l.p.errorAt(tok.Offset, "Unterminated template literal")
			tok.Value = sb.String()
			tok.Number = float64(start)
			tok.Tail = true
			return
		}
		c := l.src[l.pos]
		switch {
		case c == '`':
			tok.Value = sb.String()
			tok.Tail = true
			tok.Number = float64(start)
			l.pos++
			return
		case c == '$' && l.peekByte(1) == '{':
			tok.Value = sb.String()
			tok.Number = float64(start)
			l.pos += 2
			return
		case c == '\\':
			l.pos++
			l.scanEscape(&sb, true)
		case c == '\r':
			sb.WriteByte('\n')
			l.pos++
			if l.peekByte(0) == '\n' {
				l.pos++
			}
		default:
			r, size := l.rune()
			sb.WriteRune(r)
			l.pos += size
		}
	}
}

// templateRaw returns the source text of a template chunk.
func (l *lexer) templateRaw(tok Token) string {
	start := int(tok.Number)
	end := tok.Offset + len(tok.Literal)
	if tok.Tail {
		end--
	} else {
		end -= 2
	}
	if end < start {
		return ""
	}
	return l.src[start:end]
}

// scanRegExp rescans the token at offset, a / or /=, as a regular
// expression literal.
func (l *lexer) scanRegExp(offset int) (pattern string, flags string) {
	l.pos = offset + 1
	inClass := false
	for {
		if l.pos >= len(l.src) {
			l.p.errorAt(offset, "Invalid regular expression: missing /")
			return l.src[offset+1:], ""
		}
		r, size := l.rune()
		if isLineTerminator(r) {
			l.p.errorAt(offset, "Invalid regular expression: missing /")
			return l.src[offset+1 : l.pos], ""
		}
		l.pos += size
		switch r {
		case '\\':
			if _, size := l.rune(); size > 0 {
				l.pos += size
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				pattern = l.src[offset+1 : l.pos-1]
				start := l.pos
				for l.pos < len(l.src) {
					r, size := l.rune()
					if !isIdentifierPart(r) {
						break
					}
					l.pos += size
				}
				return pattern, l.src[start:l.pos]
			}
		}
	}
}

var punctuators = []struct {
	text string
	kind token.Token
}{
	{">>>=", token.UnsignedShiftRightAssign},
	{"...", token.Ellipsis},
	{"===", token.StrictEqual},
	{"!==", token.StrictNotEqual},
	{"**=", token.ExponentAssign},
	{"<<=", token.ShiftLeftAssign},
	{">>=", token.ShiftRightAssign},
	{">>>", token.UnsignedShiftRight},
	{"&&=", token.LogicalAndAssign},
	{"||=", token.LogicalOrAssign},
	{"??=", token.CoalesceAssign},
	{"=>", token.Arrow},
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"<=", token.LessOrEqual},
	{">=", token.GreaterOrEqual},
	{"&&", token.LogicalAnd},
	{"||", token.LogicalOr},
	{"??", token.Coalesce},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"+=", token.AddAssign},
	{"-=", token.SubtractAssign},
	{"*=", token.MultiplyAssign},
	{"/=", token.QuotientAssign},
	{"%=", token.RemainderAssign},
	{"&=", token.AndAssign},
	{"|=", token.OrAssign},
	{"^=", token.ExclusiveOrAssign},
	{"**", token.Exponent},
	{"<<", token.ShiftLeft},
	{">>", token.ShiftRight},
	{"{", token.LeftBrace},
	{"}", token.RightBrace},
	{"(", token.LeftParenthesis},
	{")", token.RightParenthesis},
	{"[", token.LeftBracket},
	{"]", token.RightBracket},
	{";", token.Semicolon},
	{",", token.Comma},
	{"<", token.Less},
	{">", token.Greater},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Multiply},
	{"/", token.Slash},
	{"%", token.Remainder},
	{"&", token.And},
	{"|", token.Or},
	{"^", token.ExclusiveOr},
	{"!", token.Not},
	{"~", token.BitwiseNot},
	{":", token.Colon},
	{"=", token.Assign},
	{".", token.Period},
	{"@", token.At},
}

func (l *lexer) scanPunctuator() token.Token {
	rest := l.src[l.pos:]
	// ?. is optional chaining unless followed by a digit, as in a?.5:b.
	if strings.HasPrefix(rest, "?.") && !(len(rest) > 2 && '0' <= rest[2] && rest[2] <= '9') {
		l.pos += 2
		return token.QuestionDot
	}
	if strings.HasPrefix(rest, "??") {
		if strings.HasPrefix(rest, "??=") {
			l.pos += 3
			return token.CoalesceAssign
		}
		l.pos += 2
		return token.Coalesce
	}
	if rest[0] == '?' {
		l.pos++
		return token.QuestionMark
	}
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p.text) {
			l.pos += len(p.text)
			return p.kind
		}
	}
	return token.Illegal
}
