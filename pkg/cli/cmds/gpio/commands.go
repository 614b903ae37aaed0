// Package gpio provides shell commands for the digital port.
package gpio

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/cli/sh"
)

var (
	// DirCmd configures pin directions.
	DirCmd = ishell.Cmd{
		Name: "gpio.dir",
		Help: "ACTIVE INPUT  (channel selectors)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("ACTIVE INPUT required"))
				return
			}
			active, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			input, err := sh.ParseSelector(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			reply, err := sh.Device(c).SetDirection(active, input)
			sh.PrintReply(c, reply, err)
		}),
	}

	// ModeCmd switches pins between plain output and PWM.
	ModeCmd = ishell.Cmd{
		Name: "gpio.mode",
		Help: "ACTIVE PWM  (channel selectors)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("ACTIVE PWM required"))
				return
			}
			active, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			pwm, err := sh.ParseSelector(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			replies, err := sh.Device(c).SetPinMode(active, pwm)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// ReadCmd reads the digital port.
	ReadCmd = ishell.Cmd{
		Name:    "gpio.read",
		Aliases: []string{"gr"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			r, err := sh.Device(c).ReadGPIO()
			if err != nil {
				c.Err(err)
				return
			}
			if r.Unknown() {
				c.Printf("? %s\n", string(r.Raw))
				return
			}
			c.Printf("%02X\n", r.Value)
		}),
	}

	// WriteCmd writes the digital port.
	WriteCmd = ishell.Cmd{
		Name:    "gpio.write",
		Aliases: []string{"gw"},
		Help:    "VALUE | high:SELECTOR",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("VALUE required"))
				return
			}
			arg := c.Args[0]
			if len(arg) > 5 && arg[:5] == "high:" {
				sel, err := sh.ParseSelector(arg[5:])
				if err != nil {
					c.Err(err)
					return
				}
				reply, err := sh.Device(c).WriteGPIOChannels(sel)
				sh.PrintReply(c, reply, err)
				return
			}
			val, err := sh.ParseUint(arg, 8)
			if err != nil {
				c.Err(err)
				return
			}
			reply, err := sh.Device(c).WriteGPIO(byte(val))
			sh.PrintReply(c, reply, err)
		}),
	}
)

func init() {
	sh.AddCmds(
		&DirCmd,
		&ModeCmd,
		&ReadCmd,
		&WriteCmd,
	)
}
