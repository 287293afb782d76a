package lexer

import (
	"fmt"
	"strings"
)

// CommentStyle selects the line-comment lead.
type CommentStyle uint8

const (
	// CommentPercent: '%' до конца строки.
	CommentPercent CommentStyle = iota
	// CommentDashes: "--" до конца строки; одиночный '-' остаётся пунктуацией.
	CommentDashes
)

func (c CommentStyle) String() string {
	switch c {
	case CommentDashes:
		return "--"
	default:
		return "%"
	}
}

// ParseCommentStyle accepts the lead text as written in configuration.
func ParseCommentStyle(s string) (CommentStyle, error) {
	switch strings.TrimSpace(s) {
	case "", "%":
		return CommentPercent, nil
	case "--":
		return CommentDashes, nil
	default:
		return CommentPercent, fmt.Errorf("invalid comment lead %q (expected %% or --)", s)
	}
}

// Options configures a scan.
type Options struct {
	Comment CommentStyle
	// MaxTokens stops the scan after that many tokens; 0 means no limit.
	MaxTokens int
}
