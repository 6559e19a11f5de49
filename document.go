package tableimage

import "strings"

// CombineHTMLCSS glues an HTML fragment and its stylesheet into a single
// chunk by appending the stylesheet in a <style> element. A blank stylesheet
// returns the fragment unchanged, so inline-mode output passes through.
func CombineHTMLCSS(html, css string) string {
	if strings.TrimSpace(css) == "" {
		return html
	}
	return html + "\n<style>\n" + css + "\n</style>\n"
}

// FullDocument wraps an HTML chunk in a minimal standalone document.
func FullDocument(chunk string) string {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n")
	doc.WriteString("<html>\n")
	doc.WriteString("<body>\n")
	doc.WriteString(chunk)
	doc.WriteString("\n</body>\n")
	doc.WriteString("</html>\n")
	return doc.String()
}
