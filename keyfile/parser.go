package keyfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/meshtools/keyraw/mesh"
)

type section int

const (
	awaitingKeyword section = iota
	afterAsterisk
	inNode
	inElement
	inPart
)

// Parser consumes the token stream of one keyfile and populates a mesh
// database. A fresh Parser is used per file; the database may be shared
// across files, in which case id uniqueness applies to the combined input.
type Parser struct {
	tz      *Tokenizer
	db      *mesh.Database
	verbose bool
	nTokens int
}

// ParseFile parses one keyfile into db. Parsing stops at the first
// malformed card or duplicate element id; the whole run is then failed.
func ParseFile(path string, db *mesh.Database, verbose bool) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrInvalidInputPath)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, ErrUnreadableFile)
	}
	defer f.Close()
	if verbose {
		fmt.Printf("Reading from %s\n", path)
	}
	return Parse(f, db, verbose)
}

// Parse parses keyfile text from r into db.
func Parse(r io.Reader, db *mesh.Database, verbose bool) error {
	p := &Parser{tz: NewTokenizer(r), db: db, verbose: verbose}
	if err := p.run(); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("\rTotal Number of Symbols Found: %d\n", p.nTokens)
	}
	return nil
}

func (p *Parser) next() Token {
	tok := p.tz.Next()
	p.nTokens++
	if p.verbose && p.nTokens%100000 == 0 {
		fmt.Printf("\r%10d", p.nTokens)
	}
	return tok
}

// run drives the section state machine. Card readers pull tokens
// directly, so between cards the stream is always positioned at a
// token boundary outside any record.
func (p *Parser) run() error {
	state := awaitingKeyword
	for {
		tok := p.next()
		if tok.Kind == TokenEndOfInput {
			return nil
		}
		switch state {
		case awaitingKeyword:
			if tok.Kind == TokenAsterisk {
				state = afterAsterisk
			}
		case afterAsterisk:
			switch tok.Kind {
			case TokenWord:
				switch strings.ToUpper(tok.Text) {
				case "NODE":
					state = inNode
				case "ELEMENT_SOLID", "ELEMENT_SHELL", "ELEMENT_BEAM":
					state = inElement
				case "PART", "PART_INERTIA":
					state = inPart
				default:
					state = awaitingKeyword
				}
			case TokenAsterisk:
				// stay, the next word names the section
			case TokenWhitespace, TokenComment:
				// ignore
			default:
				state = awaitingKeyword
			}
		case inNode:
			switch tok.Kind {
			case TokenWhitespace, TokenNewline, TokenComment:
			case TokenAsterisk:
				state = afterAsterisk
			case TokenNumber:
				if err := p.readNode(tok); err != nil {
					return err
				}
			default:
				state = awaitingKeyword
			}
		case inElement:
			switch tok.Kind {
			case TokenWhitespace, TokenNewline, TokenComment:
			case TokenAsterisk:
				state = afterAsterisk
			case TokenNumber:
				if err := p.readElement(tok); err != nil {
					return err
				}
			default:
				state = awaitingKeyword
			}
		case inPart:
			switch tok.Kind {
			case TokenWhitespace, TokenNewline, TokenComment:
			case TokenAsterisk:
				state = afterAsterisk
			case TokenWord, TokenNumber:
				if err := p.readPart(tok); err != nil {
					return err
				}
				state = awaitingKeyword
			default:
				state = awaitingKeyword
			}
		}
	}
}

// nextField consumes one {separator, number} pair: at least one
// whitespace or comma token, then the next number.
func (p *Parser) nextField() (Token, error) {
	tok := p.next()
	if tok.Kind != TokenWhitespace && tok.Kind != TokenComma {
		return Token{}, &CardError{Line: tok.Line, Msg: "element list appears to be malformed"}
	}
	for {
		tok = p.next()
		switch tok.Kind {
		case TokenNumber:
			return tok, nil
		case TokenWhitespace, TokenComma:
		default:
			return Token{}, &CardError{Line: tok.Line, Msg: "element list appears to be malformed"}
		}
	}
}

func (p *Parser) intField(tok Token) (int, error) {
	v, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, &CardError{Line: tok.Line, Msg: fmt.Sprintf("invalid integer field %q", tok.Text)}
	}
	return v, nil
}

func (p *Parser) floatField(tok Token) (float64, error) {
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return 0, &CardError{Line: tok.Line, Msg: fmt.Sprintf("invalid numeric field %q", tok.Text)}
	}
	return v, nil
}

// readNode reads one NODE record: id, x, y, z. Extra columns (tc, rc)
// up to the end of the line are discarded.
func (p *Parser) readNode(idTok Token) error {
	id, err := p.intField(idTok)
	if err != nil {
		return err
	}
	var xyz [3]float64
	for i := range xyz {
		tok, err := p.nextField()
		if err != nil {
			return err
		}
		if xyz[i], err = p.floatField(tok); err != nil {
			return err
		}
	}
	for {
		tok := p.next()
		if tok.Kind == TokenNewline || tok.Kind == TokenEndOfInput {
			break
		}
	}
	p.db.InsertNode(mesh.Node{ID: id, X: xyz[0], Y: xyz[1], Z: xyz[2]})
	return nil
}

// readElement reads one ELEMENT record: id, part id, then exactly eight
// connectivity fields. Unused slots must be supplied as 0 by the input.
func (p *Parser) readElement(idTok Token) error {
	id, err := p.intField(idTok)
	if err != nil {
		return err
	}
	tok, err := p.nextField()
	if err != nil {
		return err
	}
	pid, err := p.intField(tok)
	if err != nil {
		return err
	}
	var conn [8]int
	for i := range conn {
		tok, err = p.nextField()
		if err != nil {
			return err
		}
		if conn[i], err = p.intField(tok); err != nil {
			return err
		}
	}
	return p.db.InsertElement(mesh.Element{ID: id, PartID: pid, Nodes: conn})
}

// readPart reads one PART record. The name is every token from the
// first word to the end of that line, concatenated verbatim; the part
// id is the next number after that, possibly on a later line.
func (p *Parser) readPart(first Token) error {
	var name string
	if first.Kind == TokenWord {
		var sb strings.Builder
		sb.WriteString(first.Text)
		for {
			tok := p.next()
			if tok.Kind == TokenNewline || tok.Kind == TokenEndOfInput {
				break
			}
			sb.WriteString(tok.Text)
		}
		name = sb.String()
		for {
			tok := p.next()
			switch tok.Kind {
			case TokenNumber:
				first = tok
			case TokenWhitespace, TokenNewline, TokenComment, TokenComma, TokenWord:
				continue
			default:
				return &CardError{Line: tok.Line, Msg: "part card is missing a part id"}
			}
			break
		}
	}
	pid, err := p.intField(first)
	if err != nil {
		return err
	}
	p.db.RecordPartName(pid, name)
	return nil
}
