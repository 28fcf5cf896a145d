package keyfile

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenWhitespace TokenKind = iota
	TokenNewline
	TokenComment
	TokenComma
	TokenAsterisk
	TokenWord
	TokenNumber
	TokenEndOfInput
)

func (k TokenKind) String() string {
	return [...]string{"Whitespace", "Newline", "Comment", "Comma",
		"Asterisk", "Word", "Number", "EndOfInput"}[k]
}

// Token is one lexical unit of a keyfile. Text holds the exact source
// characters; Line is the 1-based line the token starts on.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}
