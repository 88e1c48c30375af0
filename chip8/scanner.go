package chip8

import (
	"fmt"
	"strconv"
	"strings"
)

/// Type for scanned tokens.
///
type tokenType uint

/// Lexical assembly tokens.
///
const (
	tokenEnd tokenType = iota
	tokenChar
	tokenLabel
	tokenRef
	tokenOperand
	tokenEffectiveAddress
	tokenV
	tokenI
	tokenB
	tokenF
	tokenK
	tokenDT
	tokenST
	tokenLit
	tokenText

	// a reference to a label that has not been declared yet
	tokenForward

	// only used when matching operands: a literal or a forward reference
	tokenAddress
)

/// A parsed, lexical token.
///
type token struct {
	typ tokenType

	// tokens can have an optional value associated with them
	val interface{}
}

/// CHIP-8 assembler token scanner.
///
type tokenScanner struct {
	bytes []byte

	// scan position
	pos int
}

/// Reads the next token from a scanner. Returns the token.
///
func (s *tokenScanner) scanToken() token {
	for len(s.bytes) > s.pos && s.bytes[s.pos] < 33 {
		s.pos++
	}

	// if at the end, return an end token
	if len(s.bytes) <= s.pos {
		return token{typ: tokenEnd, val: ""}
	}

	// get the next character
	c := s.bytes[s.pos]

	switch {
	case c == ';':
		return s.scanToEnd()
	case c == '.' && s.pos == 0:
		return s.scanLabel()
	case s.pos == 0:
		panic("expected .label")
	case c == '[':
		return s.scanIndirection()
	case c == ',':
		return s.scanOperand()
	case c == '#':
		return s.scanLit(16, "0123456789ABCDEF")
	case c == '$':
		return s.scanLit(2, ".01")
	case c == '-' || c >= '0' && c <= '9':
		return s.scanDecLit()
	case c >= 'A' && c <= 'Z':
		return s.scanIdentifier()
	case c == '"' || c == '\'':
		return s.scanString(c)
	}

	return s.scanChar()
}

/// Scan a list of comma-separated tokens.
///
func (s *tokenScanner) scanOperands() []token {
	tokens := make([]token, 0, 3)

	for t := s.scanToken(); t.typ != tokenEnd; {
		tokens = append(tokens, t)

		// get another token, are we at the end?
		if t = s.scanToken(); t.typ != tokenOperand {
			if t.typ == tokenEnd {
				break
			}

			panic("unexpected token")
		}

		// expand the operand
		t = t.val.(token)
	}

	return tokens
}

/// Scan a single character.
///
func (s *tokenScanner) scanChar() token {
	i := s.pos

	// advance the scan pos
	s.pos++

	return token{typ: tokenChar, val: s.bytes[i]}
}

/// Scan to the end of the input and return.
///
func (s *tokenScanner) scanToEnd() token {
	text := string(s.bytes[s.pos:])

	// skip to the end
	s.pos = len(s.bytes)

	return token{typ: tokenEnd, val: strings.TrimSpace(text)}
}

/// Scan a comma-separated operand token.
///
func (s *tokenScanner) scanOperand() token {
	s.pos++

	// scan the next token as the operand
	t := s.scanToken()

	// make sure there was an operand
	if t.typ == tokenEnd {
		panic("expected operand")
	}

	return token{typ: tokenOperand, val: t}
}

/// Scan a label, which is a specific type of identifier.
///
func (s *tokenScanner) scanLabel() token {
	s.pos++

	// advance and validate the first identifier character
	if s.pos < len(s.bytes) && s.bytes[s.pos] >= 'A' && s.bytes[s.pos] <= 'Z' {
		if id := s.scanIdentifier(); id.typ == tokenRef {
			return token{typ: tokenLabel, val: id.val}
		}
	}

	panic("expected label")
}

/// registers and keywords that can't be used as labels.
///
var keywords = map[string]token{
	"I":  {typ: tokenI},
	"B":  {typ: tokenB},
	"F":  {typ: tokenF},
	"K":  {typ: tokenK},
	"DT": {typ: tokenDT},
	"ST": {typ: tokenST},
}

/// mnemonics understood by the assembler. Not reserved: a label may use
/// the same name.
///
var mnemonics = map[string]bool{
	"CLS": true, "RET": true, "JP": true, "CALL": true, "SE": true,
	"SNE": true, "SKP": true, "SKNP": true, "LD": true, "OR": true,
	"AND": true, "XOR": true, "ADD": true, "SUB": true, "SUBN": true,
	"SHR": true, "SHL": true, "RND": true, "DRW": true, "BYTE": true,
	"WORD": true,
}

/// Scan an identifier: a register, a keyword, or a name. Names are only
/// mnemonics when they begin an instruction, so labels may share them.
///
func (s *tokenScanner) scanIdentifier() token {
	i := s.pos

	// advance to the first non-identifier character
	for ; s.pos < len(s.bytes); s.pos++ {
		c := s.bytes[s.pos]

		// validate identifier characters
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			break
		}
	}

	id := string(s.bytes[i:s.pos])

	// V0 - VF
	if len(id) == 2 && id[0] == 'V' {
		if n := strings.IndexByte("0123456789ABCDEF", id[1]); n >= 0 {
			return token{typ: tokenV, val: n}
		}
	}

	if t, ok := keywords[id]; ok {
		return t
	}

	return token{typ: tokenRef, val: id}
}

/// Scan [I].
///
func (s *tokenScanner) scanIndirection() token {
	s.pos++

	// only the address register can be used indirectly
	if t := s.scanToken(); t.typ != tokenI {
		panic("illegal indirection")
	}

	// the next token should close the indirection
	if c := s.scanToken(); c.typ != tokenChar || c.val.(byte) != ']' {
		panic("illegal indirection")
	}

	return token{typ: tokenEffectiveAddress}
}

/// Scan a decimal literal.
///
func (s *tokenScanner) scanDecLit() token {
	i := s.pos

	// skip a unary minus negation
	if s.bytes[i] == '-' {
		s.pos++
	}

	// find the first non-numeric character
	for ; s.pos < len(s.bytes); s.pos++ {
		if strings.IndexByte("0123456789", s.bytes[s.pos]) < 0 {
			break
		}
	}

	if n, err := strconv.ParseInt(string(s.bytes[i:s.pos]), 10, 32); err == nil {
		return token{typ: tokenLit, val: int(n)}
	}

	panic(fmt.Errorf("illegal decimal value: %s", string(s.bytes[i:s.pos])))
}

/// Scan a hexadecimal (#) or binary ($) literal. Binary literals may use '.'
/// in place of '0' so sprites can be drawn in the source.
///
func (s *tokenScanner) scanLit(base int, digits string) token {
	i := s.pos

	// find the first non-digit character
	for s.pos++; s.pos < len(s.bytes); s.pos++ {
		if strings.IndexByte(digits, s.bytes[s.pos]) < 0 {
			break
		}
	}

	v := strings.ReplaceAll(string(s.bytes[i+1:s.pos]), ".", "0")

	if n, err := strconv.ParseInt(v, base, 32); err == nil {
		return token{typ: tokenLit, val: int(n)}
	}

	panic(fmt.Errorf("illegal literal: %s", string(s.bytes[i:s.pos])))
}

/// Scan a quoted string.
///
func (s *tokenScanner) scanString(term byte) token {
	s.pos++

	// store starting position
	i := s.pos

	// find the terminating quotation
	for s.pos < len(s.bytes) && s.bytes[s.pos] != term {
		s.pos++
	}

	if s.pos == len(s.bytes) {
		panic("unterminated string")
	}

	// skip the terminator
	s.pos++

	return token{typ: tokenText, val: string(s.bytes[i : s.pos-1])}
}
