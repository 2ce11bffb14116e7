// Command pngtool is a thin CLI driver: it maps command-line flags onto
// open → decode → (transform)? → {write PPM | write ASCII} → close.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"imcpng.dev/internal/decoder"
	"imcpng.dev/internal/pixmap"
)

func main() {
	var (
		in       = flag.String("png", "", "PNG file to decode")
		out      = flag.String("out", "out.ppm", "output file path")
		format   = flag.String("format", "ppm", "output format: ppm | ascii")
		rotate   = flag.String("rotate", "", "rotate before output: cw | ccw")
		grayOut  = flag.Bool("grayscale", false, "convert to grayscale before output")
		bgHex    = flag.String("bg", "ffffff", "RRGGBB background for alpha compositing")
		newW     = flag.Int("width", 0, "scale to this width (0 = unchanged)")
		newH     = flag.Int("height", 0, "scale to this height (0 = unchanged)")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("pngtool: -png is required")
	}

	h, err := decoder.Open(*in)
	if err != nil {
		log.Fatalf("pngtool: open: %v", err)
	}
	defer h.Close()

	pm, err := h.Decode()
	if err != nil {
		log.Fatalf("pngtool: decode: %v", err)
	}

	if *newW > 0 || *newH > 0 {
		w, ht := *newW, *newH
		if w == 0 {
			w = pm.Width
		}
		if ht == 0 {
			ht = pm.Height
		}
		pm, err = pm.Scale(w, ht, pixmap.Nearest)
		if err != nil {
			log.Fatalf("pngtool: scale: %v", err)
		}
	}

	switch *rotate {
	case "cw":
		pm, err = pm.RotateCW()
	case "ccw":
		pm, err = pm.RotateCCW()
	case "":
		// no-op
	default:
		log.Fatalf("pngtool: unknown -rotate %q", *rotate)
	}
	if err != nil {
		log.Fatalf("pngtool: rotate: %v", err)
	}

	if *grayOut {
		pm, err = pm.ToGrayscale()
		if err != nil {
			log.Fatalf("pngtool: grayscale: %v", err)
		}
	}

	switch *format {
	case "ppm":
		bg, err := parseHexColor(*bgHex)
		if err != nil {
			log.Fatalf("pngtool: bg: %v", err)
		}
		if err := pm.ToPPM(*out, bg); err != nil {
			log.Fatalf("pngtool: to_ppm: %v", err)
		}
	case "ascii":
		if err := pm.ToASCII(*out); err != nil {
			log.Fatalf("pngtool: to_ascii: %v", err)
		}
	default:
		log.Fatalf("pngtool: unknown -format %q", *format)
	}

	fmt.Printf("pngtool: wrote %s (%dx%d, %d channels)\n", *out, pm.Width, pm.Height, pm.NChannels)
}

func parseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	if len(s) != 6 {
		return rgb, fmt.Errorf("pngtool: -bg must be RRGGBB, got %q", s)
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%06x", &v); err != nil {
		return rgb, fmt.Errorf("pngtool: -bg must be hex, got %q", s)
	}
	rgb[0] = uint8(v >> 16)
	rgb[1] = uint8(v >> 8)
	rgb[2] = uint8(v)
	return rgb, nil
}
