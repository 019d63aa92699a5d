/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package index

import (
	"testing"

	"github.com/tomcat2357/piilocator/model"
)

func TestBuildConcatenatesSpansWithoutExtraWhitespace(t *testing.T) {
	doc := SliceDocument{
		{
			Number: 0,
			Blocks: []Block{
				{Lines: []Line{
					{Spans: []Span{
						{Text: "田中太郎の連絡先は", Rect: model.NewRect(72, 700, 300, 716)},
						{Text: "03-1234-5678です。", Rect: model.NewRect(300, 700, 540, 716)},
					}},
				}},
			},
		},
	}

	idx := Build(doc, nil)
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	rec, _ := idx.Line(0)
	want := "田中太郎の連絡先は03-1234-5678です。"
	if rec.Text != want {
		t.Fatalf("Text = %q, want %q", rec.Text, want)
	}
	wantRect := model.NewRect(72, 700, 540, 716)
	if rec.Rect != wantRect {
		t.Fatalf("Rect = %+v, want %+v", rec.Rect, wantRect)
	}
	if rec.PageNum != 0 {
		t.Fatalf("PageNum = %d, want 0", rec.PageNum)
	}
}

func TestBuildPreservesReadingOrderAcrossBlocksAndPages(t *testing.T) {
	doc := SliceDocument{
		{Number: 0, Blocks: []Block{
			{Lines: []Line{{Spans: []Span{{Text: "first", Rect: model.NewRect(0, 0, 10, 10)}}}}},
			{Lines: []Line{{Spans: []Span{{Text: "second", Rect: model.NewRect(0, 10, 10, 20)}}}}},
		}},
		{Number: 1, Blocks: []Block{
			{Lines: []Line{{Spans: []Span{{Text: "third", Rect: model.NewRect(0, 0, 10, 10)}}}}},
		}},
	}

	idx := Build(doc, nil)
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}
	wantTexts := []string{"first", "second", "third"}
	for i, want := range wantTexts {
		rec, _ := idx.Line(i)
		if rec.Text != want {
			t.Fatalf("Line(%d).Text = %q, want %q", i, rec.Text, want)
		}
	}
}

func TestBuildDropsMalformedLines(t *testing.T) {
	doc := SliceDocument{
		{Number: 0, Blocks: []Block{
			{Lines: []Line{
				{Spans: nil},                                                 // no spans
				{Spans: []Span{{Text: "   ", Rect: model.NewRect(0, 0, 1, 1)}}}, // normalizes empty
				{Spans: []Span{{Text: "kept", Rect: model.NewRect(0, 0, 10, 10)}}},
			}},
		}},
	}

	idx := Build(doc, nil)
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (malformed/empty lines dropped)", idx.Len())
	}
	rec, _ := idx.Line(0)
	if rec.Text != "kept" {
		t.Fatalf("Text = %q, want %q", rec.Text, "kept")
	}
}

func TestBuildEmptyDocumentYieldsEmptyIndex(t *testing.T) {
	idx := Build(SliceDocument(nil), nil)
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
}
