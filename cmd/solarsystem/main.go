package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"solar-system/internal/commands"
)

func main() {
	reg := commands.NewRegistry()
	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runOpts := bindOptions(runFlags)
	reg.Register("run", "open the solar system window", runFlags, func([]string) error {
		return runApp(runOpts)
	})
	bodiesFlags := flag.NewFlagSet("bodies", flag.ContinueOnError)
	bodiesOpts := bindOptions(bodiesFlags)
	reg.Register("bodies", "print the body table", bodiesFlags, func([]string) error {
		return listBodies(os.Stdout, bodiesOpts)
	})
	assetsFlags := flag.NewFlagSet("assets", flag.ContinueOnError)
	assetsOpts := bindOptions(assetsFlags)
	reg.Register("assets", "check that every texture decodes", assetsFlags, func([]string) error {
		return checkAssets(os.Stdout, assetsOpts)
	})
	reg.SetDefault("run")

	err := reg.Execute(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		reg.PrintUsage(os.Stderr)
	case commands.IsUsage(err):
		fmt.Fprintln(os.Stderr, err)
		reg.PrintUsage(os.Stderr)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
