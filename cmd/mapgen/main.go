package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/overworld/mapscript"
	"github.com/milk9111/overworld/prefabs"
	"github.com/milk9111/overworld/tilemap"
)

type options struct {
	width   int
	height  int
	fill    string
	script  string
	out     string
	timeout time.Duration
}

// generate builds a width x height map with the base layer filled, then
// runs the optional script over it.
func generate(ctx context.Context, opts options) (*tilemap.Map, error) {
	fill, err := tilemap.ParseTile(opts.fill)
	if err != nil {
		return nil, err
	}
	m, err := tilemap.New(opts.width, opts.height, tilemap.Empty)
	if err != nil {
		return nil, err
	}
	if err := m.Fill(tilemap.Base, fill); err != nil {
		return nil, err
	}
	if opts.script == "" {
		return m, nil
	}

	src, err := prefabs.LoadScript(opts.script)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", opts.script, err)
	}
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	if err := mapscript.Run(ctx, m, src); err != nil {
		return nil, err
	}
	return m, nil
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "w", 20, "map width in tiles (1-255)")
	flag.IntVar(&opts.height, "h", 12, "map height in tiles (1-255)")
	flag.StringVar(&opts.fill, "fill", "1,0", "base layer tile as col,row")
	flag.StringVar(&opts.script, "script", "", "map script to run after filling (bundled name or path)")
	flag.StringVar(&opts.out, "o", "world.map", "output file")
	flag.DurationVar(&opts.timeout, "timeout", 5*time.Second, "script time limit")
	flag.Parse()

	m, err := generate(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Save(opts.out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d, %d bytes)", opts.out, m.Width(), m.Height(), tilemap.EncodedSize(m.Width(), m.Height()))
}
