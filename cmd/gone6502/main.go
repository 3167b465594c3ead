// Command gone6502 is the front door around the cpu package: load a raw
// program image from disk and run it, step through it interactively, or
// print a disassembly listing of it. The core itself takes no CLI or
// environment input; this binary only exists to exercise it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/hejops/gone6502/cpu"
	"github.com/hejops/gone6502/internal/disasm"
	"github.com/hejops/gone6502/mem"
)

func main() {
	app := &cli.App{
		Name:  "gone6502",
		Usage: "a MOS 6502 core, as wired into the NES",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "load-addr",
				Value: cpu.PRGBase,
				Usage: "address the program image is loaded at",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a program image to completion (BRK halts it)",
				ArgsUsage: "<program-file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "trace",
						Usage: "dump the Cpu after every instruction",
					},
				},
				Action: runCommand,
			},
			{
				Name:      "debug",
				Usage:     "step through a program image in an interactive TUI",
				ArgsUsage: "<program-file>",
				Action:    debugCommand,
			},
			{
				Name:      "disasm",
				Usage:     "print a linear disassembly of a program image",
				ArgsUsage: "<program-file>",
				Action:    disasmCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadAddrFlag(c *cli.Context) uint16 {
	return uint16(c.Uint("load-addr"))
}

func readProgram(c *cli.Context) ([]byte, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.Exit("missing <program-file>", 86)
	}
	return os.ReadFile(path)
}

func runCommand(c *cli.Context) error {
	program, err := readProgram(c)
	if err != nil {
		return err
	}

	bus := mem.NewBus()
	cp := cpu.New(bus)
	cp.LoadAt(program, loadAddrFlag(c))
	cp.Reset()

	trace := c.Bool("trace")
	cp.RunWithCallback(func(cp *cpu.CPU) {
		if trace {
			fmt.Println(spew.Sdump(cp))
		}
	})

	fmt.Printf("halted at $%04X: A=%02X X=%02X Y=%02X SP=%02X P=%02X\n",
		cp.PC, cp.A, cp.X, cp.Y, cp.SP, cp.P)
	return nil
}

func debugCommand(c *cli.Context) error {
	program, err := readProgram(c)
	if err != nil {
		return err
	}
	bus := mem.NewBus()
	cp := cpu.New(bus)
	cp.Debug(program, loadAddrFlag(c))
	return nil
}

func disasmCommand(c *cli.Context) error {
	program, err := readProgram(c)
	if err != nil {
		return err
	}

	bus := mem.NewBus()
	base := loadAddrFlag(c)
	cp := cpu.New(bus)
	cp.LoadAt(program, base)

	pc := base
	end := base + uint16(len(program))
	for pc < end {
		line, length := disasm.Step(pc, bus)
		fmt.Println(line)
		pc += uint16(length)
	}
	return nil
}
