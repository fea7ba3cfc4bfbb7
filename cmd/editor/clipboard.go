package main

import (
	"log"

	"golang.design/x/clipboard"
)

// Clipboard moves brush tiles in and out of the editor as text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (systemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// memoryClipboard is used when the system clipboard is unavailable, for
// example on a headless machine.
type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) ReadText() (string, error) {
	return c.text, nil
}

func (c *memoryClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func newClipboard() Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("system clipboard unavailable, copy/paste stays inside the editor: %v", err)
		return &memoryClipboard{}
	}
	return systemClipboard{}
}
