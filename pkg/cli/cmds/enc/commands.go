// Package enc provides shell commands for the quadrature encoder
// section.
package enc

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/channels"
	"github.com/robotalks/adio.go/pkg/cli/sh"
)

var (
	// ModeCmd switches channels into encoder mode.
	ModeCmd = ishell.Cmd{
		Name: "enc.mode",
		Help: "SELECTOR",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			sel, err := selArg(c)
			if err != nil {
				return
			}
			replies, err := sh.Device(c).SetEncoderMode(sel)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// PresetCmd loads a 32-bit preset value.
	PresetCmd = ishell.Cmd{
		Name: "enc.preset",
		Help: "SELECTOR VALUE32",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SELECTOR VALUE required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			val, err := sh.ParseUint(c.Args[1], 32)
			if err != nil {
				c.Err(err)
				return
			}
			replies, err := sh.Device(c).EncoderPreset32(sel, uint32(val))
			sh.PrintReplies(c, replies, err)
		}),
	}

	// StatusCmd reads one encoder channel status.
	StatusCmd = ishell.Cmd{
		Name:    "enc.status",
		Aliases: []string{"es"},
		Help:    "CH",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("CH required"))
				return
			}
			ch, err := sh.ParseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			st, err := sh.Device(c).EncoderStatus(ch)
			if err != nil {
				c.Err(err)
				return
			}
			if st.Count == nil {
				c.Printf("ch%d ? %s\n", st.Channel, st.Raw)
				return
			}
			c.Printf("ch%d count=%d dir=%s ovf=%s end=%s\n",
				st.Channel, *st.Count, st.Dir, st.Overflow, st.AtEnd)
		}),
	}

	// ResetCmd resets counters to zero.
	ResetCmd = ishell.Cmd{
		Name: "enc.reset",
		Help: "SELECTOR",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			sel, err := selArg(c)
			if err != nil {
				return
			}
			replies, err := sh.Device(c).EncoderCountReset(sel)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// LoadCmd loads the preset registers into the counters.
	LoadCmd = ishell.Cmd{
		Name: "enc.load",
		Help: "SELECTOR",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			sel, err := selArg(c)
			if err != nil {
				return
			}
			replies, err := sh.Device(c).EncoderLoadPreset(sel)
			sh.PrintReplies(c, replies, err)
		}),
	}

	// InvertCmd sets counting direction inversion.
	InvertCmd = ishell.Cmd{
		Name: "enc.invert",
		Help: "SELECTOR on|off",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SELECTOR on|off required"))
				return
			}
			sel, err := sh.ParseSelector(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			var invert bool
			switch c.Args[1] {
			case "on":
				invert = true
			case "off":
			default:
				c.Err(fmt.Errorf("on|off expected, got %q", c.Args[1]))
				return
			}
			replies, err := sh.Device(c).EncoderDirInvert(sel, invert)
			sh.PrintReplies(c, replies, err)
		}),
	}
)

func selArg(c *ishell.Context) (sel channels.Selector, err error) {
	if len(c.Args) < 1 {
		err = fmt.Errorf("channel selector required")
		c.Err(err)
		return
	}
	if sel, err = sh.ParseSelector(c.Args[0]); err != nil {
		c.Err(err)
	}
	return
}

func init() {
	sh.AddCmds(
		&ModeCmd,
		&PresetCmd,
		&StatusCmd,
		&ResetCmd,
		&LoadCmd,
		&InvertCmd,
	)
}
