package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tony-format/objops/encode"
	"github.com/tony-format/objops/format"
	"github.com/tony-format/objops/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat(override *format.Format) format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.ioFormat(cfg.InFormat)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: always with -color,
// never with -color=false, otherwise when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CloneConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='fail if a clone differs from its source'"`

	Clone *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='expression over key and value selecting the entries to keep'"`

	Filter *cli.Command
}

type UpsertConfig struct {
	*MainConfig
	Key    string `cli:"name=k aliases=key desc='identity attribute (default id)'"`
	String bool   `cli:"name=s desc='candidate arg as string'"`
	File   bool   `cli:"name=f desc='candidate arg as file'"`
	Diff   bool   `cli:"name=d desc='show a diff of each list instead of the result'"`

	Upsert *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Paths   bool `cli:"name=p desc='list differing paths instead of lines'"`

	Diff *cli.Command
}
