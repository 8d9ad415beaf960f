// Package monitor implements an interactive command-line inspector for
// the mos6502 core: load a memory image, reset, single-step, dump
// registers and memory, set execution breakpoints, and disassemble. It
// reports data breakpoint hits but has no command to add one.
// It is a thin host exercising cpu's programmatic surface; none of its
// logic belongs to the core itself.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/cjbaird/mos6502/cpu"
	"github.com/cjbaird/mos6502/disasm"
	"github.com/cjbaird/mos6502/memory"
)

// Monitor is a fully emulated mos6502 system: 64KiB of flat memory, a
// CPU, and an attached debugger.
type Monitor struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	mem         *memory.Flat
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	settings    *settings
	lastCmd     *cmd.Selection
	running     bool
}

// New creates a monitor with a fresh 64KiB bus and CPU, and attaches a
// debugger that reports breakpoint hits back to the monitor.
func New() *Monitor {
	m := &Monitor{settings: newSettings()}

	m.mem = memory.NewFlat()
	m.cpu = cpu.New(m.mem)
	m.cpu.AttachLogger(m)

	m.debugger = cpu.NewDebugger(m)
	m.cpu.AttachDebugger(m.debugger)

	m.cpu.Reset()
	return m
}

// UnimplementedOpcode implements cpu.Logger.
func (m *Monitor) UnimplementedOpcode(opcode byte, pc uint16) {
	m.printf("Unimplemented opcode $%02X at $%04X.\n", opcode, pc)
}

// OnBreakpoint implements cpu.BreakpointHandler.
func (m *Monitor) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	m.running = false
	m.printf("Breakpoint hit at $%04X.\n", b.Address)
}

// OnDataBreakpoint implements cpu.BreakpointHandler.
func (m *Monitor) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	m.running = false
	m.printf("Data breakpoint hit at $%04X.\n", b.Address)
}

// RunCommands reads monitor commands from r and writes results to w. When
// interactive, a prompt is displayed between commands. An empty line
// repeats the previous command.
func (m *Monitor) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	m.input = bufio.NewScanner(r)
	m.output = bufio.NewWriter(w)
	m.interactive = interactive

	if interactive {
		m.println()
		m.displayPC()
	}

	for {
		m.prompt()

		line, err := m.getLine()
		if err != nil {
			break
		}

		var sel cmd.Selection
		if line != "" {
			sel, err = commands.Lookup(line)
			switch err {
			case nil:
			case cmd.ErrNotFound:
				m.println("Command not found.")
				continue
			case cmd.ErrAmbiguous:
				m.println("Command is ambiguous.")
				continue
			default:
				m.printf("ERROR: %v.\n", err)
				continue
			}
		} else if m.lastCmd != nil {
			sel = *m.lastCmd
		}

		if sel.Command == nil {
			continue
		}
		m.lastCmd = &sel

		handler := sel.Command.Data.(func(*Monitor, cmd.Selection) error)
		if err := handler(m, sel); err != nil {
			break
		}
	}
}

func (m *Monitor) print(args ...interface{}) {
	fmt.Fprint(m.output, args...)
	m.flush()
}

func (m *Monitor) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.output, format, args...)
	m.flush()
}

func (m *Monitor) println(args ...interface{}) {
	fmt.Fprintln(m.output, args...)
	m.flush()
}

func (m *Monitor) flush() {
	m.output.Flush()
}

func (m *Monitor) getLine() (string, error) {
	if m.input.Scan() {
		return m.input.Text(), nil
	}
	if m.input.Err() != nil {
		return "", m.input.Err()
	}
	return "", io.EOF
}

func (m *Monitor) prompt() {
	if m.interactive {
		m.printf("* ")
	}
}

func (m *Monitor) displayPC() {
	line, _ := disasm.Disassemble(m.mem, m.cpu.GetPC())
	m.printf("$%04X: %s\n", m.cpu.GetPC(), line)
}

// stepSingleKey runs the single-keystroke "press space to step" loop used
// by the step command when stdin is an interactive terminal. Any key
// other than space returns control to the line-oriented prompt.
func stepSingleKey(m *Monitor) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return false
	}

	old, err := term.MakeRawInput(fd)
	if err != nil {
		return false
	}
	defer term.Restore(fd, old)

	var buf [1]byte
	for {
		if _, err := os.Stdin.Read(buf[:]); err != nil {
			return true
		}
		switch buf[0] {
		case ' ':
			m.cpu.Tick()
			m.displayPC()
		default:
			return true
		}
	}
}
