package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Number represents an unsigned integer literal.
	Number
	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Asterisk represents '*'.
	Asterisk
	// Slash represents '/'.
	Slash
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Asterisk:
		return "*"
	case Slash:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return "invalid"
}
