// Command motimove8-sim is an interactive REPL over a motimove8.Store and
// FrameBuilder, for exercising the ramp engine and frame layout by hand
// without any real hardware or transport attached.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/motimove/motimove8ctl"
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "motimove8-sim: ", log.LstdFlags)

	store := motimove8.NewStore()
	fb := motimove8.NewFrameBuilder(store)

	fmt.Println("motimove8-sim: type 'help' for commands, 'quit' to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			logger.Printf("parse: %v", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if err := dispatch(store, fb, args); err != nil {
			logger.Printf("%v", err)
		}
	}
}

func dispatch(store *motimove8.Store, fb *motimove8.FrameBuilder, args []string) error {
	switch args[0] {
	case "quit", "exit":
		os.Exit(0)
	case "help":
		fmt.Println("commands: active <8 bools>, amps <8 ints>, freq <hz>, ramp-enable <bool>, pulse, start, stop, quit")
	case "active":
		bits, err := parseBools(args[1:])
		if err != nil {
			return err
		}
		store.SetActiveChannels(bits)
	case "amps":
		vals, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		store.SetMaxAmplitudes(vals)
	case "freq":
		if len(args) != 2 {
			return fmt.Errorf("usage: freq <hz>")
		}
		hz, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		store.SetStimFrequency(hz)
	case "ramp-enable":
		if len(args) != 2 {
			return fmt.Errorf("usage: ramp-enable <true|false>")
		}
		on, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		store.SetRampingEnabled(on)
	case "pulse":
		fmt.Println(hex.EncodeToString(fb.GetPulseFrame()))
	case "start":
		fmt.Println(hex.EncodeToString(fb.StartTrainFrame()))
	case "stop":
		fmt.Println(hex.EncodeToString(fb.StopTrainFrame()))
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func parseBools(fields []string) ([8]bool, error) {
	var out [8]bool
	if len(fields) != 8 {
		return out, fmt.Errorf("need 8 values, got %d", len(fields))
	}
	for i, f := range fields {
		b, err := strconv.ParseBool(f)
		if err != nil {
			return out, err
		}
		out[i] = b
	}
	return out, nil
}

func parseInts(fields []string) ([8]int, error) {
	var out [8]int
	if len(fields) != 8 {
		return out, fmt.Errorf("need 8 values, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
