/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "testing"

func TestRectUnion(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: -5, X1: 20, Y1: 8}
	got := a.Union(b)
	want := Rect{X0: 0, Y0: -5, X1: 20, Y1: 10}
	if got != want {
		t.Fatalf("Union = %+v, want %+v", got, want)
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: 5, X1: 20, Y1: 20}
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatalf("expected intersection")
	}
	want := Rect{X0: 5, Y0: 5, X1: 10, Y1: 10}
	if got != want {
		t.Fatalf("Intersection = %+v, want %+v", got, want)
	}

	c := Rect{X0: 100, Y0: 100, X1: 200, Y1: 200}
	if _, ok := a.Intersection(c); ok {
		t.Fatalf("expected no intersection")
	}
}

func TestRectValid(t *testing.T) {
	if !(Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}).Valid() {
		t.Fatalf("expected valid rect")
	}
	if (Rect{X0: 1, Y0: 0, X1: 0, Y1: 1}).Valid() {
		t.Fatalf("expected invalid rect (x0 > x1)")
	}
}

func TestRectContainsWithTolerance(t *testing.T) {
	outer := Rect{X0: 0, Y0: 0, X1: 100, Y1: 20}
	inner := Rect{X0: 10, Y0: 0.3, X1: 90, Y1: 19.6}
	if !inner.ContainsWithTolerance(outer, 0.5) {
		t.Fatalf("expected inner to be contained within tolerance")
	}
	tooFar := Rect{X0: -2, Y0: 0, X1: 100, Y1: 20}
	if tooFar.ContainsWithTolerance(outer, 0.5) {
		t.Fatalf("expected rect outside tolerance to fail containment")
	}
}
