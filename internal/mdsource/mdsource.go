// Package mdsource reads models embedded in markdown documents.
//
// Only fenced code blocks whose info string is "simple" carry model source.
// Extract keeps their bytes where they are and blanks everything else, so
// line numbers and byte offsets reported against the result point into the
// markdown file itself.
package mdsource

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Language is the info string that marks a model block.
const Language = "simple"

var gm = goldmark.New(
	goldmark.WithParser(
		goldmark.DefaultParser(),
	),
)

// Block is one model block found in a document.
type Block struct {
	// Line is the first line of the block's content.
	Line  int
	Start int
	End   int
}

// IsMarkdown reports whether path names a markdown document.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Blocks lists the model blocks of a markdown document in order.
func Blocks(src []byte) []Block {
	doc := gm.Parser().Parse(text.NewReader(src))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if !strings.EqualFold(string(fenced.Language(src)), Language) {
			return ast.WalkSkipChildren, nil
		}
		lines := fenced.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		first, last := lines.At(0), lines.At(lines.Len()-1)
		blocks = append(blocks, Block{
			Line:  1 + bytes.Count(src[:first.Start], []byte{'\n'}),
			Start: first.Start,
			End:   last.Stop,
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// Extract returns a copy of src where every byte outside a model block,
// other than line breaks, is replaced by a space.
func Extract(src []byte) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		if b == '\n' || b == '\r' {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}

	doc := gm.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if strings.EqualFold(string(fenced.Language(src)), Language) {
			lines := fenced.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				copy(out[seg.Start:seg.Stop], src[seg.Start:seg.Stop])
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return out
}
