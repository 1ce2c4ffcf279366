package main

import (
	"github.com/signadot/xlkit/dttm"
	"github.com/signadot/xlkit/overlay"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xlu").
		WithSynopsis("xlu [opts] command [opts]").
		WithDescription("xlu exposes spreadsheet helper conversions on the command line.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xluMain(cfg, cc, args)
		}).
		WithSubs(
			RGBCommand(cfg),
			IntCommand(cfg),
			DupesCommand(cfg),
			TSCommand(cfg),
			UDFCommand(cfg),
			OverlayCommand(cfg))
}

func RGBCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RGBConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("rgb").
		WithSynopsis("rgb <color-int>...").
		WithDescription("split packed color integers into red, green and blue").
		WithRun(func(cc *cli.Context, args []string) error {
			return rgbCmd(cfg, cc, args)
		})
	cfg.RGB = cmd
	return cmd
}

func IntCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IntConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("int").
		WithSynopsis("int <r> <g> <b> | int <#rrggbb>").
		WithDescription("pack a color into an integer").
		WithRun(func(cc *cli.Context, args []string) error {
			return intCmd(cfg, cc, args)
		})
	cfg.Int = cmd
	return cmd
}

func DupesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DupesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dupes").
		WithAliases("d").
		WithSynopsis("dupes [-t] [files]").
		WithDescription("print lines occurring more than once").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dupesCmd(cfg, cc, args)
		})
	cfg.Dupes = cmd
	return cmd
}

func TSCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TSConfig{MainConfig: mainCfg, Unit: dttm.Nanosecond}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "u",
			Aliases:     []string{"unit"},
			Description: "datetime unit: Y M W D h m s ms us ns ps fs as (default ns)",
			Type:        cli.NamedFuncOpt(unitFunc(&cfg.Unit), "(unit)"),
		},
	}
	cmd := cli.NewCommand("ts").
		WithSynopsis("ts [-u unit] <value>...").
		WithDescription("convert epoch relative datetime values to calendar timestamps").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tsCmd(cfg, cc, args)
		})
	cfg.TS = cmd
	return cmd
}

func UDFCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UDFConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("udf").
		WithSynopsis("udf [-n name] [-check module.bas] <defs.yaml>").
		WithDescription("generate VBA wrappers for worksheet functions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return udfCmd(cfg, cc, args)
		})
	cfg.UDF = cmd
	return cmd
}

func OverlayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OverlayConfig{MainConfig: mainCfg, Overrides: map[string]overlay.Entry[any]{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "set",
			Description: "override a key",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(setOptTypeFunc(cfg.Overrides)), "(key=val)"),
		},
		&cli.Opt{
			Name:        "del",
			Description: "delete a key",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(delOptTypeFunc(cfg.Overrides)), "(key)"),
		})
	cmd := cli.NewCommand("overlay").
		WithAliases("ov").
		WithSynopsis("overlay [-p patch.json] [-set key=val]... [-del key]... <base>").
		WithDescription("show a mapping file with overrides and deletions applied").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return overlayCmd(cfg, cc, args)
		})
	cfg.Overlay = cmd
	return cmd
}
