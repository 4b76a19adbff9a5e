package markdown

import (
	"bytes"
	"reflect"
	"testing"
	"time"
)

func TestSerializeRoundTripYAML(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	rec, err := BuildRecord("testdata/basic.md", "posts", data, time.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}

	out, err := Serialize(rec)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	reparsed, err := BuildRecord("testdata/basic.md", "posts", out, rec.LastModified)
	if err != nil {
		t.Fatalf("reparse serialized output: %v", err)
	}

	if reparsed.FrontMatter.Title != rec.FrontMatter.Title {
		t.Fatalf("title drifted: %q vs %q", reparsed.FrontMatter.Title, rec.FrontMatter.Title)
	}
	if !reparsed.FrontMatter.Date.Equal(rec.FrontMatter.Date) {
		t.Fatalf("date drifted: %s vs %s", reparsed.FrontMatter.Date, rec.FrontMatter.Date)
	}
	if reparsed.FrontMatter.LastMod == nil || !reparsed.FrontMatter.LastMod.Equal(*rec.FrontMatter.LastMod) {
		t.Fatalf("lastmod drifted: %#v", reparsed.FrontMatter.LastMod)
	}
	if reparsed.FrontMatter.Draft != rec.FrontMatter.Draft {
		t.Fatalf("draft drifted")
	}
	if !reflect.DeepEqual(reparsed.FrontMatter.Tags, rec.FrontMatter.Tags) {
		t.Fatalf("tags drifted: %#v vs %#v", reparsed.FrontMatter.Tags, rec.FrontMatter.Tags)
	}
	if !reflect.DeepEqual(reparsed.FrontMatter.Custom, rec.FrontMatter.Custom) {
		t.Fatalf("custom fields drifted: %#v vs %#v", reparsed.FrontMatter.Custom, rec.FrontMatter.Custom)
	}
	if !bytes.Equal(bytes.TrimSpace(reparsed.Body), bytes.TrimSpace(rec.Body)) {
		t.Fatalf("body drifted: %q vs %q", reparsed.Body, rec.Body)
	}
}

func TestSerializeIsStable(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	rec, err := BuildRecord("testdata/basic.md", "posts", data, time.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}

	first, err := Serialize(rec)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	reparsed, err := BuildRecord("testdata/basic.md", "posts", first, rec.LastModified)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	second, err := Serialize(reparsed)
	if err != nil {
		t.Fatalf("Serialize again: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("serialization is not stable:\n%q\nvs\n%q", first, second)
	}
}

func TestSerializeTOMLKeepsFormat(t *testing.T) {
	source := []byte(`+++
title = "TOML Post"
date = 2024-05-01T09:00:00Z
+++

Body text.
`)

	rec, err := BuildRecord("posts/toml-post.md", "posts", source, time.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}

	out, err := Serialize(rec)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("+++\n")) {
		t.Fatalf("expected toml delimiters, got %q", out)
	}

	reparsed, err := BuildRecord("posts/toml-post.md", "posts", out, rec.LastModified)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if reparsed.Format != FormatTOML {
		t.Fatalf("expected toml format preserved, got %q", reparsed.Format)
	}
	if !reparsed.FrontMatter.Date.Equal(rec.FrontMatter.Date) {
		t.Fatalf("date drifted: %s vs %s", reparsed.FrontMatter.Date, rec.FrontMatter.Date)
	}
}

func TestSerializeDraftOmittedWhenFalse(t *testing.T) {
	source := []byte(`---
title: Published
date: 2024-01-01
---

Content.
`)

	rec, err := BuildRecord("posts/published.md", "posts", source, time.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}

	out, err := Serialize(rec)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if bytes.Contains(out, []byte("draft")) {
		t.Fatalf("expected draft omitted from output, got %q", out)
	}
}

func TestSerializeNilRecord(t *testing.T) {
	if _, err := Serialize(nil); err == nil {
		t.Fatalf("expected error for nil record")
	}
}
