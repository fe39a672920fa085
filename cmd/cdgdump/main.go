package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/cdgkit/cdg/cdg"
)

const programName = "cdgdump"

// block characters used to render a frame preview at roughly half the
// terminal's usual character aspect ratio.
const blockChar = "▀"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "*** %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var ms int
	var tempo int

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.IntVar(&ms, "t", 0, "millisecond position of the frame to preview")
	flgs.IntVar(&tempo, "tempo", 100, "playback tempo, as a percentage of real time")
	if err := flgs.Parse(args); err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) != 1 {
		return fmt.Errorf("usage: %s [-t ms] [-tempo percent] file.cdg", programName)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	d := cdg.New()
	if err := d.Open(data); err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	if !d.Process() {
		return fmt.Errorf("processing %s failed", args[0])
	}
	d.SetTempo(tempo)

	label := lipgloss.NewStyle().Bold(true)
	fmt.Printf("%s %s\n", label.Render("file"), args[0])
	fmt.Printf("%s %dms\n", label.Render("duration"), d.Duration())
	fmt.Printf("%s %d\n", label.Render("frames"), d.FrameCount())
	fmt.Printf("%s %v\n", label.Render("skippable at t"), d.CanSkipAt(ms))
	fmt.Println()

	fr := d.FrameAt(ms)
	if fr == nil {
		return fmt.Errorf("no frame decoded at %dms", ms)
	}
	printFrame(fr)
	return nil
}

// printFrame renders a frame as two pixel rows per terminal line, using the
// upper-half-block trick so a 288x192 frame fits in a reasonably sized
// terminal window.
func printFrame(fr *cdg.Frame) {
	for y := 0; y < fr.Height(); y += 2 {
		var line string
		for x := 0; x < fr.Width(); x++ {
			top := fr.At(x, y)
			bottom := top
			if y+1 < fr.Height() {
				bottom = fr.At(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			line += style.Render(blockChar)
		}
		fmt.Println(line)
	}
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
