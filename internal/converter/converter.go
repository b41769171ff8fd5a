// Package converter turns raw note markup (ENML) into sanitized HTML ready
// for rendering, persisting embedded images through an ImageStore on the way.
package converter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// ResourceFetcher loads the raw bytes of a note attachment on demand.
type ResourceFetcher = func(ctx context.Context, resourceID string) ([]byte, error)

// ImageStore persists embedded images and answers whether one is already
// stored for a post.
type ImageStore interface {
	Exists(ctx context.Context, contentHash string, postID uuid.UUID) (string, bool, error)
	Store(ctx context.Context, data []byte, contentHash, mimeType string, postID uuid.UUID, title string) (string, error)
}

// Result is the output of one conversion.
type Result struct {
	HTML    string
	Excerpt string
}

type Converter struct {
	images     ImageStore
	policy     *bluemonday.Policy
	excerptLen int
	logger     *slog.Logger
}

func New(images ImageStore, excerptLen int, logger *slog.Logger) *Converter {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("width", "height").OnElements("img")

	return &Converter{
		images:     images,
		policy:     policy,
		excerptLen: excerptLen,
		logger:     logger,
	}
}

// Convert renders a note's markup to sanitized HTML plus a plain-text
// excerpt. Conversion is deterministic for identical input and image-store
// state. Media references that cannot be resolved against the note's
// attachments are dropped; a failing resource fetch or store aborts the
// conversion so the caller can report the note as failed.
func (c *Converter) Convert(ctx context.Context, note domain.Note, postID uuid.UUID, fetch ResourceFetcher) (Result, error) {
	doc, err := html.Parse(strings.NewReader(note.RawContent))
	if err != nil {
		return Result{}, fmt.Errorf("parse note content: %w", err)
	}

	root := findElement(doc, "en-note")
	if root == nil {
		root = findElement(doc, "body")
	}
	if root == nil {
		root = doc
	}

	if err := c.rewrite(ctx, root, note, postID, fetch); err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return Result{}, fmt.Errorf("render content: %w", err)
		}
	}

	sanitized := c.policy.Sanitize(buf.String())
	return Result{
		HTML:    sanitized,
		Excerpt: Excerpt(sanitized, c.excerptLen),
	}, nil
}

// rewrite replaces note-specific elements with plain HTML equivalents:
// en-media image references become img tags backed by the image store,
// other en-media and en-crypt are removed, en-todo becomes a checkbox glyph.
func (c *Converter) rewrite(ctx context.Context, root *html.Node, note domain.Note, postID uuid.UUID, fetch ResourceFetcher) error {
	var special []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "en-media", "en-todo", "en-crypt":
				special = append(special, n)
			}
		}
	}
	walk(root)

	for _, n := range special {
		switch n.Data {
		case "en-media":
			if err := c.replaceMedia(ctx, n, note, postID, fetch); err != nil {
				return err
			}
		case "en-todo":
			replaceTodo(n)
		default:
			n.Parent.RemoveChild(n)
		}
	}
	return nil
}

func (c *Converter) replaceMedia(ctx context.Context, n *html.Node, note domain.Note, postID uuid.UUID, fetch ResourceFetcher) error {
	// The HTML parser treats self-closed unknown elements as containers,
	// so markup following the media tag ends up nested inside it.
	hoistChildren(n)

	hash := attrVal(n, "hash")
	res, ok := note.ResourceByHash(hash)
	if !ok || !strings.HasPrefix(res.MimeType, "image/") {
		c.logger.Debug("dropping unresolvable media reference",
			"note_id", note.ID,
			"hash", hash,
		)
		n.Parent.RemoveChild(n)
		return nil
	}

	imgURL, exists, err := c.images.Exists(ctx, res.ContentHash, postID)
	if err != nil {
		return fmt.Errorf("check image %s: %w", res.ContentHash, err)
	}
	if !exists {
		data, err := fetch(ctx, res.ID)
		if err != nil {
			return fmt.Errorf("fetch resource %s: %w", res.ID, err)
		}
		imgURL, err = c.images.Store(ctx, data, res.ContentHash, res.MimeType, postID, note.Title)
		if err != nil {
			return fmt.Errorf("store image %s: %w", res.ContentHash, err)
		}
	}

	attrs := []html.Attribute{{Key: "src", Val: imgURL}}
	if res.Width > 0 {
		attrs = append(attrs, html.Attribute{Key: "width", Val: strconv.Itoa(res.Width)})
	}
	if res.Height > 0 {
		attrs = append(attrs, html.Attribute{Key: "height", Val: strconv.Itoa(res.Height)})
	}

	n.Data = "img"
	n.DataAtom = atom.Img
	n.Attr = attrs
	return nil
}

func replaceTodo(n *html.Node) {
	hoistChildren(n)

	glyph := "☐ " // empty checkbox
	if attrVal(n, "checked") == "true" {
		glyph = "☑ "
	}

	n.Type = html.TextNode
	n.Data = glyph
	n.DataAtom = 0
	n.Attr = nil
}

// hoistChildren moves all children of n out, placing them directly after n
// in original order.
func hoistChildren(n *html.Node) {
	var children []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		children = append(children, child)
	}
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		n.RemoveChild(child)
		n.Parent.InsertBefore(child, n.NextSibling)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, name); found != nil {
			return found
		}
	}
	return nil
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Excerpt strips all markup from htmlStr and truncates the remaining text to
// limit runes, appending an ellipsis when it had to cut.
func Excerpt(htmlStr string, limit int) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	plain := strings.Join(strings.Fields(b.String()), " ")
	runes := []rune(plain)
	if len(runes) <= limit {
		return plain
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}
