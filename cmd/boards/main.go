package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"plinkotone/internal/board"
	"plinkotone/internal/physics"
	"plinkotone/internal/scales"
	"plinkotone/internal/storage/sqlite"

	"github.com/caarlos0/env/v11"
)

const usage = `usage: boards [-db path] <command> [args]

commands:
  list                       list saved boards
  save <name> <preset|code>  save a preset or share code under name
  show <name>                print a saved board's code and peg summary
  delete <name>              remove a saved board
`

type settings struct {
	DB string `env:"PLINKO_BOARD_DB" envDefault:"plinko.db"`
}

func main() {
	var st settings
	if err := env.Parse(&st); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	dbPath := flag.String("db", st.DB, "sqlite file holding saved boards")
	scale := flag.String("scale", board.DefaultScale, "scale stored with boards saved from a preset")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := run(context.Background(), store, os.Stdout, *scale, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, store *sqlite.Store, out io.Writer, scale string, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return list(ctx, store, out)
	case "save":
		if len(rest) != 2 {
			return errors.New("save needs <name> <preset|code>")
		}
		return save(ctx, store, out, rest[0], rest[1], scale)
	case "show":
		if len(rest) != 1 {
			return errors.New("show needs <name>")
		}
		return show(ctx, store, out, rest[0])
	case "delete":
		if len(rest) != 1 {
			return errors.New("delete needs <name>")
		}
		if err := store.Delete(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s\n", rest[0])
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func list(ctx context.Context, store *sqlite.Store, out io.Writer) error {
	boards, err := store.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCALE\tUPDATED")
	for _, b := range boards {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Scale, b.UpdatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

// save accepts either a registered preset name or a share code.
func save(ctx context.Context, store *sqlite.Store, out io.Writer, name, src, scale string) error {
	if !scales.Known(scale) {
		return fmt.Errorf("unknown scale %q", scale)
	}
	var code string
	if descs, err := board.Generate(src); err == nil {
		code = board.Encode(descs, scale)
	} else {
		shared, err := board.Decode(src)
		if err != nil {
			return fmt.Errorf("%q is neither a preset nor a board code: %w", src, err)
		}
		code, scale = src, shared.Scale
	}
	if err := store.Save(ctx, sqlite.Board{Name: name, Code: code, Scale: scale}); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s\n", name)
	return nil
}

func show(ctx context.Context, store *sqlite.Store, out io.Writer, name string) error {
	b, err := store.Get(ctx, name)
	if err != nil {
		return err
	}
	shared, err := board.Decode(b.Code)
	if err != nil {
		return err
	}
	counts := map[physics.PegKind]int{}
	for _, d := range shared.Pegs {
		counts[d.Kind]++
	}
	fmt.Fprintf(out, "%s (%s)\n", b.Name, shared.Scale)
	fmt.Fprintf(out, "pegs: %d tone, %d bounce, %d split\n", counts[physics.PegTone], counts[physics.PegBounce], counts[physics.PegSplit])
	fmt.Fprintf(out, "code: %s\n", b.Code)
	return nil
}
