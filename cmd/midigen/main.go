package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cienicera/midi-fun-contract/config"
	"github.com/cienicera/midi-fun-contract/midi"
	"github.com/cienicera/midi-fun-contract/theory"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "phrase":
		writePhrase(os.Args[2:])
	case "dump":
		dumpPhrase(os.Args[2:])
	case "modes":
		listModes()
	default:
		fmt.Printf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("midigen - render scale phrases to standard MIDI files")
	fmt.Println()
	fmt.Println("Usage: midigen <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  phrase  - write the phrase as a .mid file (and .json with -json)")
	fmt.Println("  dump    - print the encoded file bytes and the live messages")
	fmt.Println("  modes   - list the available modes")
	fmt.Println()
	fmt.Println("Run 'midigen phrase -h' for the generator flags.")
}

// settings is a fully validated set of generator parameters, seeded
// from the saved config and overridden by flags.
type settings struct {
	modeName string
	mode     theory.Mode
	root     theory.PitchClass
	octave   int
	bars     int
	tempo    int
	channel  uint8
	velocity uint8
	arpeggio bool
	dir      string
	out      string
	withJSON bool
}

func parseSettings(command string, args []string) settings {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	mode := fs.String("mode", cfg.Phrase.Mode, "scale mode, see 'midigen modes'")
	root := fs.String("root", cfg.Phrase.Root, "root pitch class, sharp spelling")
	octave := fs.Int("octave", cfg.Phrase.Octave, "octave of the root (middle C is C4)")
	bars := fs.Int("bars", cfg.Phrase.Bars, "bars to lay out")
	tempo := fs.Int("tempo", cfg.Phrase.Tempo, "tempo in beats per minute")
	channel := fs.Int("channel", cfg.Phrase.Channel, "MIDI channel 0-15")
	velocity := fs.Int("velocity", cfg.Phrase.Velocity, "note velocity 1-127")
	arpeggio := fs.Bool("arpeggio", cfg.Phrase.Arpeggio, "walk chord tones instead of the scale")
	dir := fs.String("dir", cfg.ExportDir(), "directory written files land in")
	out := fs.String("out", "phrase.mid", "output file name")
	withJSON := fs.Bool("json", cfg.Export.JSON, "also write the JSON rendering")
	fs.Parse(args)

	s := settings{
		modeName: *mode,
		octave:   clamp(*octave, 0, 8),
		bars:     clamp(*bars, 1, 8),
		tempo:    clamp(*tempo, 20, 300),
		channel:  uint8(clamp(*channel, 0, 15)),
		velocity: uint8(clamp(*velocity, 1, 127)),
		arpeggio: *arpeggio,
		dir:      *dir,
		out:      *out,
		withJSON: *withJSON,
	}
	if _, ok := theory.Modes[s.modeName]; !ok {
		fmt.Fprintf(os.Stderr, "unknown mode %q, using %s\n", s.modeName, theory.DefaultMode)
		s.modeName = theory.DefaultMode
	}
	s.mode = theory.GetMode(s.modeName)

	rootClass, ok := theory.ParsePitchClass(*root)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown root %q, using C\n", *root)
		rootClass = theory.C
	}
	s.root = rootClass
	return s
}

// build renders the settings into an event sequence.
func build(s settings) *midi.Sequence {
	rootKey := theory.Keynum(s.root, s.octave)
	var keys []uint8
	if s.arpeggio {
		keys = theory.ArpeggioPhrase(rootKey, s.mode, s.bars)
	} else {
		keys = theory.Phrase(rootKey, s.mode, s.bars)
	}
	return midi.EvenPhrase(keys, s.channel, s.velocity, uint32(60_000_000/s.tempo), midi.TicksPerQuarter/2)
}

func writePhrase(args []string) {
	s := parseSettings("phrase", args)
	seq := build(s)

	data, err := seq.EncodeSMF()
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		log.Fatalf("mkdir %s: %v", s.dir, err)
	}

	path := filepath.Join(s.dir, s.out)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("wrote %s (%d bytes, %d events)\n", path, len(data), seq.Len())

	if s.withJSON {
		text, err := seq.EncodeJSON()
		if err != nil {
			log.Fatalf("encode json: %v", err)
		}
		jsonPath := filepath.Join(s.dir, strings.TrimSuffix(s.out, ".mid")+".json")
		if err := os.WriteFile(jsonPath, text, 0644); err != nil {
			log.Fatalf("write %s: %v", jsonPath, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", jsonPath, len(text))
	}
}

func dumpPhrase(args []string) {
	s := parseSettings("dump", args)
	seq := build(s)

	data, err := seq.EncodeSMF()
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	fmt.Printf("%s on %s%d, %d bars at %d BPM: %d bytes\n\n",
		s.mode.Name, s.root, s.octave, s.bars, s.tempo, len(data))
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Printf("%04x  % X\n", i, data[i:end])
	}

	msgs := seq.LiveMessages()
	fmt.Printf("\n%d live messages:\n", len(msgs))
	for _, msg := range msgs {
		fmt.Printf("  %-10s %s\n", fmt.Sprintf("% X", []byte(msg)), msg)
	}
}

func listModes() {
	fmt.Println("Available modes:")
	for _, name := range theory.ModeNames() {
		steps := theory.Modes[name].Steps
		parts := make([]string, len(steps))
		for i, step := range steps {
			parts[i] = fmt.Sprintf("%d", step)
		}
		fmt.Printf("  %-15s %s\n", name, strings.Join(parts, "-"))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
