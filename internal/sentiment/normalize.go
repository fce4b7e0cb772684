package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

var (
	mdLinkPattern   = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]+`)
)

func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1") // Keep only the text

	return urlPattern.ReplaceAllString(input, "")
}

// flattenMarkdown renders YouTube's markdown-ish formatting to HTML and
// collapses the result onto a single line.
func flattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())

	return strings.Join(strings.Fields(string(output)), " ")
}

// stripTags drops every HTML tag and returns the concatenated text nodes,
// entities unescaped. Script and style bodies are skipped.
func stripTags(input string) string {
	var sb strings.Builder
	skipDepth := 0

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			if name, _ := tokenizer.TagName(); isSkippedTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			if name, _ := tokenizer.TagName(); isSkippedTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}

// Normalize reduces raw comment text to lowercase alphanumeric words
// separated by single spaces. Markdown formatting is flattened, HTML tags and
// entities resolved, URLs removed, and every other symbol (emoji included)
// treated as a word boundary. Total and idempotent; all-noise input yields "".
func Normalize(text string) string {
	plain := stripTags(flattenMarkdown(text))
	plain = RemoveLinks(plain)
	plain = strings.ToLower(plain)
	plain = nonAlnumPattern.ReplaceAllString(plain, " ")

	return strings.Join(strings.Fields(plain), " ")
}

// Tokenize splits normalized text into words. Call it on Normalize output;
// raw text should go through Normalize first.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
