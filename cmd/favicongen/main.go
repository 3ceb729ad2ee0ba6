package main

import (
	"fmt"
	"os"

	"github.com/codegangsta/cli"
	"github.com/ignaciobalaschsola/favicongen"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "favicongen"
	app.Usage = "A command-line tool for generating a full set of website favicons from a single image."
	app.UsageText = "favicongen [options]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "source,s",
			Usage: "`SOURCE` is the image favicons are generated from.",
			Value: favicongen.DefaultSource,
		},
		cli.StringFlag{
			Name:  "out,o",
			Usage: "`DIR` is where generated favicons are written. Created if absent.",
			Value: favicongen.DefaultOutputDir,
		},
	}
	app.Action = func(c *cli.Context) error {
		gen := favicongen.NewGenerator(
			favicongen.WithSource(c.String("source")),
			favicongen.WithOutputDir(c.String("out")),
		)
		return gen.Run()
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
