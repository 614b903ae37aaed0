// Package adc provides shell commands for the analog input section.
package adc

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/adio.go/pkg/adio"
	"github.com/robotalks/adio.go/pkg/cli/sh"
)

var (
	// SingleCmd reads one sample from a channel.
	SingleCmd = ishell.Cmd{
		Name:    "adc.single",
		Aliases: []string{"as"},
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
			reply, err := sh.Device(c).SingleSample(ch)
			sh.PrintReply(c, reply, err)
		}),
	}

	// ChunkSizeCmd sets the chunk size of a channel.
	ChunkSizeCmd = ishell.Cmd{
		Name: "adc.chunksize",
		Help: "CH SIZE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			ch, size, err := chArg(c, "SIZE")
			if err != nil {
				return
			}
			reply, err := sh.Device(c).SetChunkSize(ch, size)
			sh.PrintReply(c, reply, err)
		}),
	}

	// ChunkCountCmd sets the chunk count of a channel.
	ChunkCountCmd = ishell.Cmd{
		Name: "adc.chunkcount",
		Help: "CH COUNT",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			ch, count, err := chArg(c, "COUNT")
			if err != nil {
				return
			}
			reply, err := sh.Device(c).SetChunkCount(ch, count)
			sh.PrintReply(c, reply, err)
		}),
	}

	// StartCmd starts data accumulation.
	StartCmd = ishell.Cmd{
		Name: "adc.start",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			reply, err := sh.Device(c).StartAccumulation()
			sh.PrintReply(c, reply, err)
		}),
	}

	// StopCmd stops data accumulation.
	StopCmd = ishell.Cmd{
		Name: "adc.stop",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			reply, err := sh.Device(c).StopAccumulation()
			sh.PrintReply(c, reply, err)
		}),
	}

	// ChunkCmd requests a chunk stream and drains N bytes.
	ChunkCmd = ishell.Cmd{
		Name: "adc.chunk",
		Help: "CH SIZE N",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("CH SIZE N required"))
				return
			}
			ch, err := sh.ParseChannel(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			size, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("invalid SIZE: %v", err))
				return
			}
			n, err := strconv.Atoi(c.Args[2])
			if err != nil {
				c.Err(fmt.Errorf("invalid N: %v", err))
				return
			}
			data, complete, err := sh.Device(c).ReadChunk(ch, size, n)
			if err != nil {
				c.Err(err)
				return
			}
			if !complete {
				c.Printf("short read: %d of %d bytes\n", len(data), n)
			}
			c.Printf("% x\n", data)
		}),
	}

	// RateCmd computes the sampling command for a rate in ksps.
	RateCmd = ishell.Cmd{
		Name: "adc.rate",
		Help: "KSPS [low|high]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("KSPS required"))
				return
			}
			ksps, err := strconv.Atoi(c.Args[0])
			if err != nil {
				c.Err(fmt.Errorf("invalid KSPS: %v", err))
				return
			}
			target := adio.RateTargetLow
			if len(c.Args) > 1 && c.Args[1] == "high" {
				target = adio.RateTargetHigh
			}
			cmd, err := adio.SamplingCommand(ksps, target)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(cmd)
		},
	}
)

func chArg(c *ishell.Context, name string) (ch, val int, err error) {
	if len(c.Args) < 2 {
		err = fmt.Errorf("CH %s required", name)
		c.Err(err)
		return
	}
	if ch, err = sh.ParseChannel(c.Args[0]); err != nil {
		c.Err(err)
		return
	}
	if val, err = strconv.Atoi(c.Args[1]); err != nil {
		err = fmt.Errorf("invalid %s: %v", name, err)
		c.Err(err)
	}
	return
}

func init() {
	sh.AddCmds(
		&SingleCmd,
		&ChunkSizeCmd,
		&ChunkCountCmd,
		&StartCmd,
		&StopCmd,
		&ChunkCmd,
		&RateCmd,
	)
}
