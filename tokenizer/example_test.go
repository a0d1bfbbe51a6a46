package tokenizer

import (
	"fmt"
	"strings"
)

// Example demonstrates the pull-based consumer contract: construct a
// Tokenizer over a reader, then call Next/Current in a loop until it
// reports false.
func Example() {
	tk, err := New(strings.NewReader(`<p class="a">Hello, <b>world</b>!</p>`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer tk.Dispose()

	for tk.Next() {
		tok := tk.Current()
		switch tok.Type {
		case StartTagToken:
			fmt.Printf("start %s\n", tok.TagName)
		case EndTagToken:
			fmt.Printf("end %s\n", tok.TagName)
		case TextToken:
			fmt.Printf("text %q\n", tok.Text)
		}
	}
	if err := tk.Err(); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// start p
	// text "Hello, "
	// start b
	// text "world"
	// end b
	// text "!"
	// end p
}

// Example_foreignContent shows Foreign correcting SVG's mixed-case
// element and attribute names, which the tokenizer itself always
// lowercases.
func Example_foreignContent() {
	tk, err := New(strings.NewReader(`<svg><lineargradient gradientunits="userSpaceOnUse"></lineargradient></svg>`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer tk.Dispose()

	f := NewForeign(tk)
	for f.Next() {
		tok := f.Current()
		if tok.Type == StartTagToken && len(tok.Attributes) > 0 {
			fmt.Printf("%s %s=%q\n", tok.TagName, tok.Attributes[0].Name, tok.Attributes[0].Value)
		}
	}

	// Output:
	// linearGradient gradientUnits="userSpaceOnUse"
}
