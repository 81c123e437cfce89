package main

import (
	"fmt"
	"os"

	"github.com/boxframe/boxframe"
	"github.com/boxframe/boxframe/internal/q/termtext"
)

func main() {
	fmt.Printf("Color profile: %s\n\n", termtext.DetectColorProfile())

	plain, err := boxframe.Frame(boxframe.Options{
		Width:   30,
		Align:   boxframe.AlignCenter,
		Padding: boxframe.Pad(1),
		Title:   boxframe.Title{TopCenter: " demo "},
		Border:  boxframe.Border{Type: boxframe.GlyphSetThick},
	}, termtext.Sanitize("boxframe renders\tboxes", 4))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(plain)
	fmt.Println()

	left, err := boxframe.Success("build passed", boxframe.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	right, err := boxframe.Error("deploy failed", boxframe.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(boxframe.MergeBoxes(left, right))

	tiled, err := boxframe.Frame(boxframe.Options{
		Width: 12,
		Count: 3,
	}, "tile")
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(tiled)
}
