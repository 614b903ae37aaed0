// Package dac provides shell commands for the analog output section.
package dac

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/adio"
	"github.com/robotalks/adio.go/pkg/cli/sh"
)

var (
	// SetCmd latches a value into a DAC channel register.
	SetCmd = ishell.Cmd{
		Name: "dac.set",
		Help: "CH VALUE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			ch, val, err := chValueArgs(c)
			if err != nil {
				return
			}
			reply, err := sh.Device(c).DACSet(ch, val)
			sh.PrintReply(c, reply, err)
		}),
	}

	// OutCmd writes a value straight to a DAC output.
	OutCmd = ishell.Cmd{
		Name: "dac.out",
		Help: "CH VALUE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			ch, val, err := chValueArgs(c)
			if err != nil {
				return
			}
			reply, err := sh.Device(c).DACOut(ch, val)
			sh.PrintReply(c, reply, err)
		}),
	}

	// GainCmd sets the gain range of an ADC channel.
	GainCmd = ishell.Cmd{
		Name: "dac.gain",
		Help: "CH GAIN(0-4)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("CH GAIN required"))
				return
			}
			ch, err := sh.ParseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			g, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("invalid GAIN: %v", err))
				return
			}
			reply, err := sh.Device(c).SetGain(ch, adio.Gain(g))
			sh.PrintReply(c, reply, err)
		}),
	}

	// LDACCmd drives the LDAC line.
	LDACCmd = ishell.Cmd{
		Name: "dac.ldac",
		Help: "0|1",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("LEVEL required"))
				return
			}
			level, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid LEVEL: %v", err))
				return
			}
			reply, err := sh.Device(c).SetLDAC(level)
			sh.PrintReply(c, reply, err)
		}),
	}

	// LDACMaskCmd masks LDAC control per channel.
	LDACMaskCmd = ishell.Cmd{
		Name: "dac.ldacmask",
		Help: "all|CH[,CH...]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("channel selector required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			reply, err := sh.Device(c).MaskLDACChannels(sel)
			sh.PrintReply(c, reply, err)
		}),
	}
)

func chValueArgs(c *ishell.Context) (ch int, val uint16, err error) {
	if len(c.Args) < 2 {
		err = fmt.Errorf("CH VALUE required")
		c.Err(err)
		return
	}
	if ch, err = sh.ParseChannel(c.Args[0]); err != nil {
		c.Err(err)
		return
	}
	v, err := sh.ParseUint(c.Args[1], 16)
	if err != nil {
		c.Err(err)
		return
	}
	val = uint16(v)
	return
}

func init() {
	sh.AddCmds(
		&SetCmd,
		&OutCmd,
		&GainCmd,
		&LDACCmd,
		&LDACMaskCmd,
	)
}
