package tempo

import "testing"

func TestStripFrontMatterYAMLTitle(t *testing.T) {
	doc := "---\ntitle: Evening Script\nspeaker: Lin\n---\n# Opening\n"
	meta, body := StripFrontMatter(doc)
	if meta.Title != "Evening Script" {
		t.Fatalf("expected title, got %q", meta.Title)
	}
	if body != "# Opening\n" {
		t.Fatalf("expected body without header, got %q", body)
	}
	if meta.Fields["speaker"] != "Lin" {
		t.Fatalf("expected speaker field, got %v", meta.Fields)
	}
}

func TestStripFrontMatterTOMLFence(t *testing.T) {
	doc := "+++\nkey = \"value\"\n+++\nbody"
	meta, body := StripFrontMatter(doc)
	if body != "body" {
		t.Fatalf("expected body, got %q", body)
	}
	if meta.Title != "" {
		t.Fatalf("expected no title for non-YAML fence, got %q", meta.Title)
	}
}

func TestStripFrontMatterIgnoresLeadingRule(t *testing.T) {
	doc := "---\n\nsome text"
	if _, body := StripFrontMatter(doc); body != doc {
		t.Fatalf("expected leading rule document untouched, got %q", body)
	}
	doc = "---\njust prose\n---\nafter"
	if _, body := StripFrontMatter(doc); body != doc {
		t.Fatalf("expected non-metadata block untouched, got %q", body)
	}
}

func TestStripFrontMatterUnclosedFence(t *testing.T) {
	doc := "---\ntitle: x\nbody continues"
	if _, body := StripFrontMatter(doc); body != doc {
		t.Fatalf("expected unclosed fence untouched, got %q", body)
	}
}

func TestStripFrontMatterNoHeader(t *testing.T) {
	doc := "# Just a heading\ntext"
	if _, body := StripFrontMatter(doc); body != doc {
		t.Fatalf("expected document untouched, got %q", body)
	}
}

func TestStripFrontMatterBOMBeforeFence(t *testing.T) {
	doc := "\ufeff---\ntitle: t\n---\nbody"
	meta, body := StripFrontMatter(doc)
	if meta.Title != "t" || body != "body" {
		t.Fatalf("expected BOM-prefixed fence recognized, got %q %q", meta.Title, body)
	}
}
