// Package pwm provides shell commands for the PWM section.
package pwm

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/cli/sh"
)

var (
	// FreqCmd sets the PWM frequency of channels.
	FreqCmd = ishell.Cmd{
		Name: "pwm.freq",
		Help: "SELECTOR HZ",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SELECTOR HZ required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			hz, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("invalid HZ: %v", err))
				return
			}
			replies, err := sh.Device(c).SetPWMFrequency(sel, hz)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// DutyCmd sets the PWM duty cycle as a ratio.
	DutyCmd = ishell.Cmd{
		Name: "pwm.duty",
		Help: "SELECTOR RATIO(0..1)",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SELECTOR RATIO required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			duty, err := strconv.ParseFloat(c.Args[1], 64)
			if err != nil {
				c.Err(fmt.Errorf("invalid RATIO: %v", err))
				return
			}
			replies, err := sh.Device(c).SetPWMDuty(sel, duty)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// DutyRawCmd sets the PWM duty cycle as a raw tick code.
	DutyRawCmd = ishell.Cmd{
		Name: "pwm.dutyraw",
		Help: "SELECTOR CODE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SELECTOR CODE required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			code, err := sh.ParseUint(c.Args[1], 16)
			if err != nil {
				c.Err(err)
				return
			}
			replies, err := sh.Device(c).SetPWMDutyRaw(sel, uint16(code))
			sh.PrintReplies(c, replies, err)
		}),
	}
)

func init() {
	sh.AddCmds(
		&FreqCmd,
		&DutyCmd,
		&DutyRawCmd,
	)
}
