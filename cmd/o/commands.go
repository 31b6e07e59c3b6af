package main

import (
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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "o").
		WithSynopsis("o [opts] command [opts]").
		WithDescription("o clones, navigates, filters and merges object documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oMain(cfg, cc, args)
		}).
		WithSubs(
			CloneCommand(cfg),
			GetCommand(cfg),
			FilterCommand(cfg),
			UpsertCommand(cfg),
			ArrayCommand(cfg),
			ObjectCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg))
}

func CloneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CloneConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Clone, "clone").
		WithAliases("c", "cl").
		WithSynopsis("clone [-check] [files]").
		WithDescription("deep copy object documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cloneCmd(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get object elements from files, exiting 1 if any is absent").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -e <expr> [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter keeps the entries of mapping documents selected by an expression.

The expression sees 'key' and 'value' for each entry and the functions
getpath(path), haspath(path), kind(v) and getenv(name).  Entries for which
it is truthy are kept.

  o filter -e 'key startsWith "app."' labels.yaml
  o filter -e 'kind(value) == "Mapping"' doc.yaml`

func UpsertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UpsertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Upsert, "upsert").
		WithAliases("u", "up").
		WithSynopsis("upsert [-k key] [-s|-f] [-d] <candidate> [files]").
		WithDescription("merge a record into list documents by identity, or append it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return upsert(cfg, cc, args)
		})
}

func ArrayCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "array").
		WithAliases("a", "arr").
		WithSynopsis("array [files]").
		WithDescription("convert mapping documents to the list of their values in key order").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args, toArray)
		})
}

func ObjectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "object").
		WithAliases("obj").
		WithSynopsis("object [files]").
		WithDescription("convert list documents to mappings keyed by index").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args, toObject)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s|-f] <jsonpatch> [files]").
		WithDescription("apply an RFC 6902 JSON patch to object documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-p] a b").
		WithDescription("diff object documents, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
