package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextFromHTML(t *testing.T) {
	html := `<html>
	<head><style>.price { color: red; }</style></head>
	<body>
		<script>trackPageView();</script>
		<h1>Acme Masala Mix</h1>
		<p>MRP: ₹120</p>
		<p>Net Qty: 500g</p>
		<noscript>enable javascript</noscript>
	</body>
	</html>`

	text, err := TextFromHTML(html)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(text, "MRP: ₹120") {
		t.Error("Expected visible text to survive")
	}
	if !strings.Contains(text, "Net Qty: 500g") {
		t.Error("Expected visible text to survive")
	}
	if strings.Contains(text, "trackPageView") {
		t.Error("Expected script content to be stripped")
	}
	if strings.Contains(text, "color: red") {
		t.Error("Expected style content to be stripped")
	}
	if strings.Contains(text, "enable javascript") {
		t.Error("Expected noscript content to be stripped")
	}

	// Elements become separate lines so line-bounded patterns keep working
	if !strings.Contains(text, "₹120\n") {
		t.Error("Expected newline separation between elements")
	}
}

func TestLoadInputFile_Text(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.txt")
	if err := os.WriteFile(path, []byte("MRP: ₹99\nNet Qty: 1kg"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadInputFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "MRP: ₹99\nNet Qty: 1kg" {
		t.Errorf("Unexpected text %q", text)
	}
}

func TestLoadInputFile_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.html")
	if err := os.WriteFile(path, []byte("<html><body><p>Made in India</p><script>x()</script></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadInputFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(text, "Made in India") {
		t.Errorf("Expected extracted text, got %q", text)
	}
	if strings.Contains(text, "x()") {
		t.Error("Expected script to be stripped")
	}
}

func TestLoadInputFile_Missing(t *testing.T) {
	if _, err := LoadInputFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}
