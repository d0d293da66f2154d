// Command qrgen renders the deep-link QR codes packed with product
// shipments. Each category code becomes a https://t.me/<bot>?start=<code>
// link encoded as a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

func main() {
	var (
		botName = flag.String("bot", "", "bot username without @ (required)")
		outDir  = flag.String("out", "qr", "output directory for PNG files")
		codes   = flag.String("codes", "bed_linen,towel,blanket", "comma-separated category codes")
		size    = flag.Int("size", 512, "image size in pixels")
	)
	flag.Parse()

	if strings.TrimSpace(*botName) == "" {
		flag.Usage()
		log.Fatal("qrgen: -bot is required")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("qrgen: create output dir: %v", err)
	}

	for _, code := range strings.Split(*codes, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		link := fmt.Sprintf("https://t.me/%s?start=%s", *botName, code)
		path := filepath.Join(*outDir, code+".png")
		if err := qrcode.WriteFile(link, qrcode.Medium, *size, path); err != nil {
			log.Fatalf("qrgen: %s: %v", code, err)
		}
		log.Printf("wrote %s -> %s", path, link)
	}
}
