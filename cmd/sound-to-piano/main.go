package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ShinyaWebDev/sound-to-piano/audio"
	"github.com/ShinyaWebDev/sound-to-piano/logging"
	"github.com/ShinyaWebDev/sound-to-piano/tuner"
)

func main() {
	windowSize := flag.Int("window", 2048, "analysis window size in samples")
	hop := flag.Int("hop", 0, "hop size in samples (default: window/2)")
	silence := flag.Float64("silence", 0.008, "RMS silence threshold")
	minFreq := flag.Float64("min-freq", 70, "lowest frequency searched (Hz)")
	maxFreq := flag.Float64("max-freq", 1000, "highest frequency searched (Hz)")
	tuning := flag.String("tuning", "none", "reference tuning to match against: guitar, piano or none")
	verbose := flag.Bool("v", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.wav>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Detects the pitch of each analysis frame in a WAV file and prints\n")
		fmt.Fprintf(os.Stderr, "one line per frame: timestamp, classification, frequency, note and cents.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := logging.NewDefaultLogger()
	if *verbose {
		log.SetLevel(logging.DebugLevel)
	}
	logging.SetGlobalLogger(log)

	if err := run(flag.Arg(0), *windowSize, *hop, *silence, *minFreq, *maxFreq, *tuning); err != nil {
		logging.Error(err, "analysis failed")
		os.Exit(1)
	}
}

func run(path string, windowSize, hop int, silence, minFreq, maxFreq float64, tuning string) error {
	clip, err := audio.ReadWAV(path)
	if err != nil {
		return err
	}

	cfg := tuner.DefaultConfig(clip.SampleRate)
	cfg.WindowSize = windowSize
	cfg.SilenceRMSThreshold = silence
	cfg.SearchMinFreq = minFreq
	cfg.SearchMaxFreq = maxFreq

	switch tuning {
	case "guitar":
		cfg.ReferenceTuning = tuner.GuitarStandard()
	case "piano":
		cfg.ReferenceTuning = tuner.PianoRange()
	case "none":
	default:
		return fmt.Errorf("unknown tuning %q (want guitar, piano or none)", tuning)
	}

	detector, err := tuner.NewDetector(cfg)
	if err != nil {
		return err
	}

	if hop <= 0 {
		hop = windowSize / 2
	}
	session, err := audio.NewFrameSession(windowSize, hop)
	if err != nil {
		return err
	}

	frames := session.Frames(clip.Samples)
	if len(frames) == 0 {
		return fmt.Errorf("clip too short for a single %d-sample frame (%d samples)",
			windowSize, len(clip.Samples))
	}

	logging.Info("analyzing clip", logging.Fields{
		"path":        path,
		"duration_s":  fmt.Sprintf("%.2f", clip.Duration()),
		"sample_rate": clip.SampleRate,
		"frames":      len(frames),
	})

	for i, frame := range frames {
		result, err := detector.Analyze(frame)
		if err != nil {
			return err
		}
		t := float64(i*hop) / float64(clip.SampleRate)
		printResult(t, result)
	}

	return nil
}

func printResult(t float64, r tuner.Result) {
	switch r.Class {
	case tuner.Detected:
		line := fmt.Sprintf("%8.3fs  %-8s  %8.2f Hz  %-4s  %+4d cents",
			t, r.Class, r.Frequency, r.NoteName, r.Cents)
		if r.Reference != nil {
			line += fmt.Sprintf("  (nearest %s %+d cents)", r.Reference.Name, r.Reference.Cents)
		}
		fmt.Println(line)
	default:
		fmt.Printf("%8.3fs  %-8s\n", t, r.Class)
	}
}
