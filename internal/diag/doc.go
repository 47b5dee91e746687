// Package diag unifies lex and parse failures behind one error type
// and renders any located failure as a caret underline against the
// exact original input line.
package diag
