package monitor

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/cjbaird/mos6502/disasm"
)

// commands is the monitor's command tree, mirroring the shape of a
// hierarchical command dispatcher built on github.com/beevik/cmd: each
// leaf stores a (*Monitor, cmd.Selection) error handler in Data.
var commands *cmd.Tree

func init() {
	commands = buildCommands()
}

func buildCommands() *cmd.Tree {
	breakTree := cmd.NewTree("break")
	breakTree.AddCommand(cmd.Command{
		Name:        "add",
		Brief:       "Add an execution breakpoint",
		Usage:       "break add <addr>",
		Description: "Add a breakpoint that stops stepping when PC reaches the requested address.",
		Data:        (*Monitor).cmdBreakAdd,
	})
	breakTree.AddCommand(cmd.Command{
		Name:  "remove",
		Brief: "Remove an execution breakpoint",
		Usage: "break remove <addr>",
		Data:  (*Monitor).cmdBreakRemove,
	})
	breakTree.AddCommand(cmd.Command{
		Name:  "list",
		Brief: "List execution breakpoints",
		Data:  (*Monitor).cmdBreakList,
	})

	t := cmd.NewTree("monitor")
	t.AddCommand(cmd.Command{
		Name:      "help",
		Shortcuts: []string{"?"},
		Brief:     "List commands",
		Data:      (*Monitor).cmdHelp,
	})
	t.AddCommand(cmd.Command{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Reset all registers to their post-reset values and load PC from the reset vector.",
		Data:        (*Monitor).cmdReset,
	})
	t.AddCommand(cmd.Command{
		Name:        "step",
		Shortcuts:   []string{"s"},
		Brief:       "Step the CPU",
		Description: "Execute one or more instructions, displaying the disassembly at each step.",
		Usage:       "step [count]",
		Data:        (*Monitor).cmdStep,
	})
	t.AddCommand(cmd.Command{
		Name:        "regs",
		Shortcuts:   []string{"r"},
		Brief:       "Display registers",
		Description: "Display the contents of the register file and the current instruction.",
		Data:        (*Monitor).cmdRegs,
	})
	t.AddCommand(cmd.Command{
		Name:        "mem",
		Shortcuts:   []string{"m"},
		Brief:       "Dump memory",
		Description: "Dump the contents of memory starting at the requested address.",
		Usage:       "mem <addr> [length]",
		Data:        (*Monitor).cmdMem,
	})
	t.AddCommand(cmd.Command{
		Name:        "load",
		Brief:       "Load bytes into memory",
		Description: "Load a sequence of hex-encoded bytes into memory starting at the requested address.",
		Usage:       "load <addr> <hex-bytes>",
		Data:        (*Monitor).cmdLoad,
	})
	t.AddCommand(cmd.Command{
		Name:        "disasm",
		Shortcuts:   []string{"d"},
		Brief:       "Disassemble memory",
		Description: "Disassemble instructions starting at the requested address.",
		Usage:       "disasm <addr> [count]",
		Data:        (*Monitor).cmdDisasm,
	})
	t.AddCommand(cmd.Command{
		Name:      "break",
		Shortcuts: []string{"b"},
		Brief:     "Breakpoint commands",
		Subtree:   breakTree,
	})
	t.AddCommand(cmd.Command{
		Name:        "set",
		Brief:       "Change a display setting",
		Description: "Set one of the monitor's display defaults (memdumpbytes, disasmlines, steplines) by unambiguous name prefix. With no arguments, list current values.",
		Usage:       "set [name value]",
		Data:        (*Monitor).cmdSet,
	})
	t.AddCommand(cmd.Command{
		Name:      "quit",
		Shortcuts: []string{"q"},
		Brief:     "Quit the monitor",
		Data:      (*Monitor).cmdQuit,
	})
	return t
}

// parseAddr parses a hexadecimal address, with or without a leading '$'.
func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 16)
	if err != nil {
		return 0, errors.New("invalid address: " + s)
	}
	return uint16(v), nil
}

func (m *Monitor) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		for _, sub := range commands.Commands {
			m.printf("%-10s %s\n", sub.Name, sub.Brief)
		}
		return nil
	}
	sel, err := commands.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	if sel.Command.Usage != "" {
		m.printf("Syntax: %s\n", sel.Command.Usage)
	}
	if sel.Command.Description != "" {
		m.printf("%s\n", sel.Command.Description)
	}
	return nil
}

func (m *Monitor) cmdReset(c cmd.Selection) error {
	m.cpu.Reset()
	m.displayPC()
	return nil
}

func (m *Monitor) cmdStep(c cmd.Selection) error {
	count := 1
	if len(c.Args) > 0 {
		n, err := strconv.Atoi(c.Args[0])
		if err != nil {
			m.printf("%v\n", err)
			return nil
		}
		count = n
	} else if stepSingleKey(m) {
		return nil
	}

	m.running = true
	for i := 0; i < count && m.running; i++ {
		m.cpu.Tick()
		if i < m.settings.StepLines || len(c.Args) == 0 {
			m.displayPC()
		}
	}
	return nil
}

func (m *Monitor) cmdRegs(c cmd.Selection) error {
	m.printf("A=$%02X X=$%02X Y=$%02X SP=$%02X P=$%02X PC=$%04X cycles=%d\n",
		m.cpu.GetA(), m.cpu.GetX(), m.cpu.GetY(), m.cpu.GetSP(),
		byte(m.cpu.GetP()), m.cpu.GetPC(), m.cpu.GetCycles())
	m.displayPC()
	return nil
}

func (m *Monitor) cmdMem(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return m.cmdHelp(c)
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}

	length := uint16(m.settings.MemDumpBytes)
	if len(c.Args) > 1 {
		n, err := strconv.Atoi(c.Args[1])
		if err != nil {
			m.printf("%v\n", err)
			return nil
		}
		length = uint16(n)
	}

	for row := uint16(0); row < length; row += 16 {
		m.printf("$%04X:", addr+row)
		for col := uint16(0); col < 16 && row+col < length; col++ {
			m.printf(" %02X", m.mem.Read(addr+row+col))
		}
		m.println()
	}
	return nil
}

func (m *Monitor) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		return m.cmdHelp(c)
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	b, err := hex.DecodeString(c.Args[1])
	if err != nil {
		m.printf("invalid hex bytes: %v\n", err)
		return nil
	}
	m.mem.Load(addr, b)
	m.printf("Loaded %d bytes at $%04X.\n", len(b), addr)
	return nil
}

func (m *Monitor) cmdDisasm(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return m.cmdHelp(c)
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}

	lines := m.settings.DisasmLines
	if len(c.Args) > 1 {
		n, err := strconv.Atoi(c.Args[1])
		if err != nil {
			m.printf("%v\n", err)
			return nil
		}
		lines = n
	}

	for i := 0; i < lines; i++ {
		line, next := disasm.Disassemble(m.mem, addr)
		m.printf("$%04X: %s\n", addr, line)
		addr = next
	}
	return nil
}

func (m *Monitor) cmdBreakAdd(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return m.cmdHelp(c)
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	m.debugger.AddBreakpoint(addr)
	m.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (m *Monitor) cmdBreakRemove(c cmd.Selection) error {
	if len(c.Args) < 1 {
		return m.cmdHelp(c)
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	if m.debugger.GetBreakpoint(addr) == nil {
		m.printf("No breakpoint set on $%04X.\n", addr)
		return nil
	}
	m.debugger.RemoveBreakpoint(addr)
	m.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (m *Monitor) cmdBreakList(c cmd.Selection) error {
	bps := m.debugger.GetBreakpoints()
	if len(bps) == 0 {
		m.println("No breakpoints set.")
		return nil
	}
	for _, b := range bps {
		m.printf("$%04X\n", b.Address)
	}
	return nil
}

func (m *Monitor) cmdSet(c cmd.Selection) error {
	if len(c.Args) == 0 {
		m.settings.display(m.output)
		m.flush()
		return nil
	}
	if len(c.Args) < 2 {
		return m.cmdHelp(c)
	}
	if err := m.settings.set(c.Args[0], c.Args[1]); err != nil {
		m.printf("%v\n", err)
	}
	return nil
}

func (m *Monitor) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting monitor")
}
