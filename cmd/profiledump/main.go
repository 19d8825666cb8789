// profiledump prints everything a browser version reports: identity
// strings, resolved features, header wire order, Accept headers, upload
// MIME table, and font metrics. An overrides file lets you derive a
// custom identity from a canonical one before dumping it.
//
// Usage:
//
//	profiledump -list
//	profiledump -browser FF
//	profiledump -browser Chrome -overrides custom.yaml
//	profiledump -browser Chrome -fetch https://example.com/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Corpus-2021/htmlunit/browser"
	"github.com/Corpus-2021/htmlunit/client"
)

func main() {
	var (
		browserName = flag.String("browser", "", "canonical browser nickname to dump (see -list)")
		list        = flag.Bool("list", false, "list available browser nicknames and exit")
		overrides   = flag.String("overrides", "", "YAML file with identity overrides applied before dumping")
		showFeats   = flag.Bool("features", true, "include the resolved feature set")
		fetch       = flag.String("fetch", "", "URL to fetch with the dumped identity after printing it")
	)
	flag.Parse()

	if *list {
		for _, name := range browser.Available() {
			fmt.Println(name)
		}
		return
	}

	version := browser.Default()
	if *browserName != "" {
		v, err := browser.Lookup(*browserName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "profiledump: %v\n", err)
			fmt.Fprintf(os.Stderr, "available: %v\n", browser.Available())
			os.Exit(1)
		}
		version = v
	}

	if *overrides != "" {
		v, err := applyOverrides(version, *overrides)
		if err != nil {
			fmt.Fprintf(os.Stderr, "profiledump: %v\n", err)
			os.Exit(1)
		}
		version = v
	}

	dump(version, *showFeats)

	if *fetch != "" {
		if err := fetchURL(version, *fetch); err != nil {
			fmt.Fprintf(os.Stderr, "profiledump: fetch: %v\n", err)
			os.Exit(1)
		}
	}
}

func dump(v *browser.BrowserVersion, showFeatures bool) {
	fmt.Printf("Browser:            %s %d\n", v.Nickname(), v.Version())
	fmt.Printf("User-Agent:         %s\n", v.UserAgent())
	fmt.Printf("Application name:   %s\n", v.ApplicationName())
	fmt.Printf("Application ver:    %s\n", v.ApplicationVersion())
	if v.Vendor() != "" {
		fmt.Printf("Vendor:             %s\n", v.Vendor())
	}
	if v.BuildID() != "" {
		fmt.Printf("Build ID:           %s\n", v.BuildID())
	}
	fmt.Printf("Platform:           %s\n", v.Platform())
	fmt.Printf("Language:           %s\n", v.BrowserLanguage())
	fmt.Printf("Timezone:           %s\n", v.SystemTimezone())
	fmt.Printf("Accept-Encoding:    %s\n", v.AcceptEncoding())

	fmt.Println("\nAccept headers:")
	fmt.Printf("  document:  %s\n", v.HTMLAccept())
	fmt.Printf("  image:     %s\n", v.ImgAccept())
	fmt.Printf("  css:       %s\n", v.CSSAccept())
	fmt.Printf("  script:    %s\n", v.ScriptAccept())
	fmt.Printf("  xhr:       %s\n", v.XHRAccept())

	fmt.Println("\nHeader wire order:")
	for i, name := range v.HeaderNamesOrdered() {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}

	if plugins := v.Plugins(); len(plugins) > 0 {
		fmt.Println("\nPlugins:")
		for _, p := range plugins {
			fmt.Printf("  %s (%s, %s)\n", p.Name, p.Version, p.Filename)
		}
	}

	fmt.Println("\nFont metrics:")
	for _, size := range []string{"10px", "14px", "16px", "24px", "48px"} {
		height, err := v.FontHeight(size)
		if err != nil {
			continue
		}
		fmt.Printf("  %-5s -> %d\n", size, height)
	}
	fmt.Printf("  pixels per char: %d\n", v.PixelsPerChar())

	if showFeatures {
		features := v.Features()
		fmt.Printf("\nFeatures (%d):\n", len(features))
		for _, f := range features {
			fmt.Printf("  %s\n", f)
		}
	}
}

func fetchURL(v *browser.BrowserVersion, url string) error {
	c := client.NewClient(v, client.WithTimeout(30*time.Second))
	defer c.Close()

	resp, err := c.Get(context.Background(), url)
	if err != nil {
		return err
	}
	fmt.Printf("\nGET %s -> %d (%d bytes)\n", resp.FinalURL, resp.StatusCode, len(resp.Body))
	return nil
}
