//go:build unit || integration

package seed

import (
	"os"
	"path/filepath"
	"testing"
)

const seedYAML = `
colors:
  primary: "#ea154a"
  black: "#161515"
pages:
  - name: Gallery
    active: true
  - name: Blog
    active: false
socials:
  - name: Instagram
    link: https://instagram.com/studio
    active: true
home:
  copy: Welcome to the studio.
events:
  - name: Wheel basics
    description: Four evenings at the wheel.
    start_date: 2024-05-01T18:00:00Z
    end_date: 2024-05-22T21:00:00Z
    standard_fee: 50
    early_bird_fee: 35
    promo_end_date: 2024-04-15T00:00:00Z
    pay_link: https://pay.example.com/standard
    age_restriction: 16+
    embed_code: <iframe src="https://book.example.com/1" width="600" height="400"></iframe>
posts_dir: posts
`

const postMarkdown = `---
title: Glazing notes
author: Marta
category: Technique
date: 2024-03-09
---

# Glazes

Dip twice.
`

func writeSeed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "posts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "posts", "glazing.md"), []byte(postMarkdown), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "seed.yml")
	if err := os.WriteFile(path, []byte(seedYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
