package page

import "strings"

const sampleText = `# The Reading Room

Welcome to the *reading room*. This page exists so you can see your
display preferences applied to real content before committing to them.

![a quiet desk by a window](https://example.org/desk.png)

## Links and emphasis

Every [style guide](https://example.org/style) agrees on one thing:
the reader comes first. Toggle link highlighting to see where
[references](https://example.org/refs) point, or switch to the
readable layout when your eyes need a rest.`

// Sample returns the built-in preview document.
func Sample() *Document {
	doc, err := Parse(strings.NewReader(sampleText))
	if err != nil {
		// The sample is a compile-time constant; a parse failure is a bug.
		panic(err)
	}
	return doc
}
