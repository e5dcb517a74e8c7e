// Command fieldread runs a single field extraction against a cropped
// screenshot region and prints the result.
//
// It is an operator tool for tuning capture regions and preprocessing,
// not part of the library API.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/haldris/fieldread/engine/tesseract"
	"github.com/haldris/fieldread/extract"
	"github.com/haldris/fieldread/prep"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("fieldread %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		imagePath = flag.String("image", "", "path to the cropped field image (required)")
		field     = flag.String("field", "text", "field type: text, number, turn, mood, failure, failure-confidence")
		tessdata  = flag.String("tessdata", "", "tessdata directory (default: FIELDREAD_TESSDATA, then Tesseract's own lookup)")
		scale     = flag.Float64("scale", 0, "upscale factor applied before recognition (0 = no preprocessing)")
		threshold = flag.Int("threshold", 0, "binarization level 1-255 used with -scale (0 = no threshold step)")
		probe     = flag.Bool("probe", false, "report Tesseract availability and exit")
	)
	flag.Parse()

	// Values from a .env file fill in unset environment variables only.
	_ = godotenv.Load()

	logLevel := slog.LevelInfo
	if os.Getenv("FIELDREAD_LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	eng := tesseract.New(engineOptions(*tessdata)...)

	if *probe {
		info := eng.Probe()
		if !info.Available {
			fmt.Printf("tesseract: unavailable (%s)\n", info.Error)
			os.Exit(1)
		}
		fmt.Printf("tesseract: %s\n", info.Version)
		return
	}

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "missing required -image flag")
		flag.Usage()
		os.Exit(2)
	}

	img, err := loadImage(*imagePath)
	if err != nil {
		log.Error("cannot load image", "path", *imagePath, "error", err)
		os.Exit(1)
	}

	opts := []extract.Option{extract.WithLogger(log)}
	if *scale > 0 {
		steps := []prep.Step{prep.Grayscale(), prep.Upscale(*scale)}
		if *threshold > 0 {
			steps = append(steps, prep.Binarize(uint8(*threshold)))
		}
		opts = append(opts, extract.WithPreprocess(prep.Chain(steps...)))
	}
	x := extract.New(eng, opts...)

	switch *field {
	case "text":
		fmt.Println(x.ExtractText(img))
	case "number":
		fmt.Println(x.ExtractNumber(img))
	case "turn":
		fmt.Println(x.ExtractTurnNumber(img))
	case "mood":
		fmt.Println(x.ExtractMoodText(img))
	case "failure":
		fmt.Println(x.ExtractFailureText(img))
	case "failure-confidence":
		text, conf := x.ExtractFailureTextWithConfidence(img)
		fmt.Printf("%s\t%.2f\n", text, conf)
	default:
		fmt.Fprintf(os.Stderr, "unknown field type %q\n", *field)
		os.Exit(2)
	}
}

func engineOptions(tessdata string) []tesseract.Option {
	var opts []tesseract.Option
	if tessdata == "" {
		tessdata = os.Getenv("FIELDREAD_TESSDATA")
	}
	if tessdata != "" {
		opts = append(opts, tesseract.WithDataPrefix(tessdata))
	}
	return opts
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
