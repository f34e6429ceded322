/*

geniedump is a small CLI that decodes a single Genie engine recorded-game
player block and dumps it as JSON, for inspecting a recording or a codec
change by hand.

*/
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/genieio/geniecodec/codec"
	"github.com/genieio/geniecodec/container"
	"github.com/genieio/geniecodec/genie/geniecore"
)

const (
	appName    = "geniedump"
	appVersion = "v0.1.0"
)

const (
	ExitCodeMissingArguments    = 1
	ExitCodeFailedToOpenFile    = 2
	ExitCodeFailedToReadSection = 3
	ExitCodeFailedToDecode      = 4
	ExitCodeFailedToCreateOut   = 5
)

var (
	printVersion = flag.Bool("version", false, "print version info and exit")

	version     = flag.Float64("format-version", float64(geniecore.VerDEResyncBase), "recorded game format version to decode as")
	variant     = flag.String("variant", "de", "engine variant: conquerors, hd, userpatch, de")
	playerCount = flag.Uint("players", 8, "number of player slots (Player.Relations length)")

	viaContainer = flag.Bool("container", false, "treat the input file as a whole recorded-game file and extract the Header section via the container package before decoding")
	headerOffset = flag.Int64("header-offset", 0, "byte offset of the player block within the decompressed Header section; only used with -container")

	outFile = flag.String("outfile", "", "optional output file name")
	indent  = flag.Bool("indent", true, "use indentation when formatting output")
	verbose = flag.Bool("verbose", false, "log resync/diagnostic warnings to stderr")
)

func main() {
	flag.Parse()

	if *printVersion {
		fmt.Println(appName, appVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Failed to open input file: %v\n", err)
		os.Exit(ExitCodeFailedToOpenFile)
	}

	if *viaContainer {
		data, err = extractHeaderSection(data)
		if err != nil {
			fmt.Printf("Failed to read container section: %v\n", err)
			os.Exit(ExitCodeFailedToReadSection)
		}
		if *headerOffset > int64(len(data)) {
			fmt.Printf("header-offset %d is past the decompressed Header section (%d bytes)\n", *headerOffset, len(data))
			os.Exit(ExitCodeFailedToReadSection)
		}
		data = data[*headerOffset:]
	}

	v, err := parseVariant(*variant)
	if err != nil {
		fmt.Println(err)
		os.Exit(ExitCodeMissingArguments)
	}

	ctx := codec.NewContext(float32(*version), v, uint8(*playerCount))
	if *verbose {
		ctx.Log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	r := codec.NewReader(bytes.NewReader(data))
	player, err := codec.DecodePlayerBlock(ctx, r)
	if err != nil {
		fmt.Printf("Failed to decode player block: %v\n", err)
		os.Exit(ExitCodeFailedToDecode)
	}

	destination := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateOut)
		}
		defer f.Close()
		destination = f
	}

	enc := json.NewEncoder(destination)
	if *indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(player); err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
	}
}

func extractHeaderSection(raw []byte) ([]byte, error) {
	dec := container.NewFromBytes(raw)
	defer dec.Close()

	if err := dec.NewSection(); err != nil {
		return nil, err
	}
	return dec.Section()
}

func parseVariant(s string) (geniecore.Variant, error) {
	switch s {
	case "conquerors":
		return geniecore.VariantConquerors, nil
	case "hd":
		return geniecore.VariantHereticDawn, nil
	case "userpatch":
		return geniecore.VariantUserPatch, nil
	case "de":
		return geniecore.VariantDefinitiveEdition, nil
	default:
		return 0, fmt.Errorf("unknown -variant %q (want conquerors, hd, userpatch, or de)", s)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Printf("\t%s [FLAGS] playerblock.bin\n", os.Args[0])
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
