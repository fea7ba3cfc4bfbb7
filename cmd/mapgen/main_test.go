package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/milk9111/overworld/tilemap"
)

func TestGenerateFillsBase(t *testing.T) {
	m, err := generate(context.Background(), options{width: 4, height: 3, fill: "2,1", timeout: time.Second})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("expected 4x3, got %dx%d", m.Width(), m.Height())
	}
	want := tilemap.Tile{Col: 2, Row: 1}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if got, _ := m.Tile(tilemap.Base, row, col); got != want {
				t.Fatalf("expected %v at (%d, %d), got %v", want, row, col, got)
			}
			if got, _ := m.Tile(tilemap.Collide, row, col); !got.IsEmpty() {
				t.Fatalf("expected empty collide at (%d, %d), got %v", row, col, got)
			}
		}
	}
}

func TestGenerateRunsScript(t *testing.T) {
	m, err := generate(context.Background(), options{width: 5, height: 5, fill: "1,0", script: "border.tengo", timeout: time.Second})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got, _ := m.Tile(tilemap.Collide, 4, 2); got.IsEmpty() {
		t.Fatalf("expected bottom wall from script")
	}
	if got, _ := m.Tile(tilemap.Collide, 2, 2); !got.IsEmpty() {
		t.Fatalf("expected open centre, got %v", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want error
	}{
		{"zero width", options{width: 0, height: 3, fill: "1,0"}, tilemap.ErrInvalidDimensions},
		{"too tall", options{width: 3, height: 256, fill: "1,0"}, tilemap.ErrDimensionOverflow},
		{"fill out of range", options{width: 3, height: 3, fill: "300,0"}, tilemap.ErrDimensionOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := generate(context.Background(), tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := generate(context.Background(), options{width: 3, height: 3, fill: "1,0", script: "no-such-script.tengo", timeout: time.Second}); err == nil {
		t.Fatalf("expected missing script to fail")
	}
}
