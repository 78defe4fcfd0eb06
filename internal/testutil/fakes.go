package testutil

import (
	"context"
)

// FakeClipboard records copied text.
type FakeClipboard struct {
	Text   string
	Copies int
	Err    error
}

// Copy implements clipboard.Writer.
func (c *FakeClipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	c.Copies++
	return nil
}

// FakeEditor returns canned content instead of launching a process.
type FakeEditor struct {
	Content string
	Err     error
	Calls   int
}

// Edit implements input.Editor.
func (e *FakeEditor) Edit(ctx context.Context, seed string) (string, error) {
	e.Calls++
	if e.Err != nil {
		return "", e.Err
	}
	return e.Content, nil
}
