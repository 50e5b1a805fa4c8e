package main

import (
	"flag"
	"log"
	"os"

	"github.com/danmuck/stdfkit/internal/config"
	"github.com/danmuck/stdfkit/internal/logging"
	"github.com/danmuck/stdfkit/internal/tools"
)

func main() {
	scriptPath := flag.String("script", "", "record script to encode")
	output := flag.String("output", "", "output path for the stream or template")
	configPath := flag.String("config", "", "writer config (defaults apply when empty)")
	inspect := flag.String("inspect", "", "list the records of an existing stream")
	template := flag.String("template", "", "write a template: config|script")
	force := flag.Bool("force", false, "overwrite an existing output file")
	flag.Parse()

	logging.ConfigureRuntime()

	switch {
	case *template != "":
		if *output == "" {
			log.Fatal("-output is required with -template")
		}
		if err := config.WriteTemplate(*output, *template, *force); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s template to %s", *template, *output)

	case *inspect != "":
		f, err := os.Open(*inspect)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		entries, _, err := tools.Inspect(f)
		if perr := tools.PrintEntries(os.Stdout, entries); perr != nil {
			log.Fatal(perr)
		}
		if err != nil {
			log.Fatal(err)
		}

	case *scriptPath != "":
		cfg := config.DefaultWriterConfig()
		if *configPath != "" {
			loaded, err := config.LoadWriterConfig(*configPath)
			if err != nil {
				log.Fatal(err)
			}
			cfg = loaded
		}
		logging.SetLevel(cfg.LogLevel)

		if *output == "" {
			log.Fatal("-output is required with -script")
		}
		if !*force {
			if _, err := os.Stat(*output); err == nil {
				log.Fatalf("output already exists: %s", *output)
			}
		}
		out, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		res, err := tools.Generate(cfg, *scriptPath, out)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %d records (%d bytes) to %s", res.Records, res.Bytes, *output)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
